// Package analysis holds the non-interactive transforms of the toolkit:
// displacement-orbit comparison, peak displacement statistics, design-curve
// generation, and spectral checks of recorded histories.
package analysis

import (
	"errors"
	"math"

	"github.com/okast/isoperf/internal/record"
)

var ErrLengthMismatch = errors.New("analysis: component records differ in length")

// OrbitPoint is one planar displacement sample of the isolated mass.
type OrbitPoint struct {
	X, Y float64
}

// OrbitResult pairs two horizontal displacement components into a planar
// orbit and its peak radial excursion.
type OrbitResult struct {
	Points     []OrbitPoint
	PeakRadius float64
	PeakIndex  int
}

// Orbit pairs the displacement columns of two simultaneously recorded
// horizontal components, sample by sample.
func Orbit(x, y record.Series) (*OrbitResult, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	res := &OrbitResult{Points: make([]OrbitPoint, len(x))}
	for i := range x {
		p := OrbitPoint{X: x[i].Displacement, Y: y[i].Displacement}
		res.Points[i] = p
		r := math.Hypot(p.X, p.Y)
		if r > res.PeakRadius {
			res.PeakRadius = r
			res.PeakIndex = i
		}
	}
	return res, nil
}
