package record

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Unit conventions for recorded histories: displacement arrives in
// millimeters with the gauge sign convention and is stored negated in
// meters; force arrives in kN and passes through unchanged.
const (
	DispScale = -0.001
)

// Domain errors for record loading.
var (
	// ErrMalformedRecord indicates a row with the wrong column count or a
	// non-numeric field.
	ErrMalformedRecord = errors.New("record: malformed record")

	// ErrEmptyRecord indicates a file with no data rows.
	ErrEmptyRecord = errors.New("record: empty record")
)

// Sample is one recorded time step of a force-displacement history.
// Displacement in meters, force in kN.
type Sample struct {
	Displacement float64
	Force        float64
}

// Series is a temporally ordered sample sequence. Order is preserved from
// the record; it defines loop traversal direction for plotting.
type Series []Sample

// Load reads a two-column whitespace-delimited record [displacement_mm,
// force_kN], one row per time sample, no header. The displacement column is
// negated and scaled to meters.
func Load(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	defer f.Close()

	series := make(Series, 0, 1024)
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d has %d columns, want 2", ErrMalformedRecord, line, len(fields))
		}
		d, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d displacement %q", ErrMalformedRecord, line, fields[0])
		}
		q, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d force %q", ErrMalformedRecord, line, fields[1])
		}
		series = append(series, Sample{
			Displacement: d * DispScale,
			Force:        q,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("record: read %s: %w", path, err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyRecord, path)
	}
	return series, nil
}

// Displacements returns the displacement column.
func (s Series) Displacements() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v.Displacement
	}
	return out
}

// Forces returns the force column.
func (s Series) Forces() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v.Force
	}
	return out
}

// Bounds returns the min/max of both columns.
func (s Series) Bounds() (dMin, dMax, fMin, fMax float64) {
	if len(s) == 0 {
		return 0, 1, 0, 1
	}
	dMin, dMax = s[0].Displacement, s[0].Displacement
	fMin, fMax = s[0].Force, s[0].Force
	for _, v := range s[1:] {
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
	return dMin, dMax, fMin, fMax
}
