// Package export renders force-displacement plots to SVG artifacts: the
// per-round digitizer snapshots and the final comparison image.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/okast/isoperf/internal/envelope"
	"github.com/okast/isoperf/internal/record"
)

// ErrDegenerateOrbit indicates an orbit with too few points to trace a path.
var ErrDegenerateOrbit = errors.New("export: degenerate orbit")

var loopColors = []string{"#00ff00", "#ff8800", "#00aaff", "#ff44aa"}

// LoopSVG renders the recorded series as a polyline with any number of
// envelope cycles overlaid as closed polygons. The first cycle is drawn
// solid, later ones dashed (the refined cycle leads by convention).
func LoopSVG(series record.Series, cycles []*envelope.Cycle, width, height int) string {
	dMin, dMax, fMin, fMax := bounds(series, cycles)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	project := func(d, f float64) (float64, float64) {
		x := (d - dMin) / (dMax - dMin) * float64(width)
		y := float64(height) - (f-fMin)/(fMax-fMin)*float64(height)
		return x, y
	}

	// zero axes
	if dMin < 0 && dMax > 0 {
		x, _ := project(0, fMin)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#333333" stroke-width="1"/>
`, x, x, height))
	}
	if fMin < 0 && fMax > 0 {
		_, y := project(dMin, 0)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#333333" stroke-width="1"/>
`, y, width, y))
	}

	if len(series) > 1 {
		sb.WriteString(`<path fill="none" stroke="#3a6ea5" stroke-width="1" d="M`)
		for i, p := range series {
			x, y := project(p.Displacement, p.Force)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for ci, c := range cycles {
		if c == nil {
			continue
		}
		color := loopColors[ci%len(loopColors)]
		dash := ""
		if ci > 0 {
			dash = ` stroke-dasharray="6,4"`
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2"%s d="M`, color, dash))
		for i, v := range c.Closed() {
			x, y := project(v.Displacement, v.Force)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
		for _, v := range c.Closed()[:envelope.Picks] {
			x, y := project(v.Displacement, v.Force)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"/>
`, x, y, color))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// OrbitSVG renders a displacement-orbit path (two horizontal components).
// Fewer than two points cannot trace a path and return ErrDegenerateOrbit.
func OrbitSVG(points []struct{ X, Y float64 }, width, height int) (string, error) {
	if len(points) < 2 {
		return "", fmt.Errorf("%w: %d points", ErrDegenerateOrbit, len(points))
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	minX, maxX = pad(minX, maxX)
	minY, maxY = pad(minY, maxY)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="#00ff00" stroke-width="1.5" d="M`,
		width, height, width, height))
	for i, p := range points {
		x := (p.X - minX) / (maxX - minX) * float64(width)
		y := float64(height) - (p.Y-minY)/(maxY-minY)*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n</svg>")
	return sb.String(), nil
}

// WriteFile writes an SVG document, creating the parent directory.
func WriteFile(path, svg string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func bounds(series record.Series, cycles []*envelope.Cycle) (dMin, dMax, fMin, fMax float64) {
	dMin, dMax, fMin, fMax = series.Bounds()
	for _, c := range cycles {
		if c == nil {
			continue
		}
		for _, v := range c.Closed() {
			if v.Displacement < dMin {
				dMin = v.Displacement
			}
			if v.Displacement > dMax {
				dMax = v.Displacement
			}
			if v.Force < fMin {
				fMin = v.Force
			}
			if v.Force > fMax {
				fMax = v.Force
			}
		}
	}
	dMin, dMax = pad(dMin, dMax)
	fMin, fMax = pad(fMin, fMax)
	return dMin, dMax, fMin, fMax
}

func pad(lo, hi float64) (float64, float64) {
	r := hi - lo
	if r == 0 {
		r = 1
	}
	return lo - r*0.1, hi + r*0.1
}
