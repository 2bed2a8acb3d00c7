package analysis

import "math"

// CurveParams describes an isolator design curve: spectral displacement
// demand over a range of effective periods for a set of equivalent damping
// levels.
type CurveParams struct {
	// Sd1 is the 1-second spectral displacement at 5% damping, in meters.
	Sd1 float64
	// PeriodMin/PeriodMax bound the effective period sweep, seconds.
	PeriodMin, PeriodMax float64
	// Steps is the number of curve points per damping level.
	Steps int
	// DampingLevels in percent (e.g. 5, 10, 20, 30).
	DampingLevels []float64
}

// DesignPoint is one point of a design curve.
type DesignPoint struct {
	Period       float64
	Displacement float64
	Stiffness    float64 // required k_eff per unit mass, kN/m per tonne
}

// DesignCurve generates one curve per damping level. Displacement demand
// scales linearly with period from the 1-second value and is reduced by the
// damping factor sqrt(10/(5+xi)); required stiffness per unit mass follows
// from k = m (2π/T)².
func DesignCurve(p CurveParams) map[float64][]DesignPoint {
	if p.Steps < 2 {
		p.Steps = 2
	}
	curves := make(map[float64][]DesignPoint, len(p.DampingLevels))
	for _, xi := range p.DampingLevels {
		b := DampingReduction(xi)
		pts := make([]DesignPoint, 0, p.Steps)
		for i := 0; i < p.Steps; i++ {
			t := p.PeriodMin + (p.PeriodMax-p.PeriodMin)*float64(i)/float64(p.Steps-1)
			w := 2 * math.Pi / t
			pts = append(pts, DesignPoint{
				Period:       t,
				Displacement: p.Sd1 * t * b,
				Stiffness:    w * w, // per tonne: kN/m = t · (rad/s)²
			})
		}
		curves[xi] = pts
	}
	return curves
}

// DampingReduction is the spectral reduction factor sqrt(10/(5+xi)) for a
// damping ratio xi in percent, floored at 0.55.
func DampingReduction(xi float64) float64 {
	if xi < 0 {
		xi = 0
	}
	b := math.Sqrt(10 / (5 + xi))
	if b < 0.55 {
		b = 0.55
	}
	return b
}
