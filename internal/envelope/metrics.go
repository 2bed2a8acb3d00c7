package envelope

import "math"

// Metrics holds the engineering results derived from one refined cycle.
// EffectiveStiffness in kN/m, DissipatedEnergy in kN·m, EquivalentDamping in
// percent rounded to one decimal.
type Metrics struct {
	EffectiveStiffness float64 `json:"effective_stiffness"`
	DissipatedEnergy   float64 `json:"dissipated_energy"`
	EquivalentDamping  float64 `json:"equivalent_damping"`
}

// EffectiveStiffness computes the secant stiffness between the 1st and 3rd
// selected vertices: (|F1|+|F3|) / (|D1|+|D3|). Which vertices sit at the
// extremes is determined by pick order, not by an extremum search.
func EffectiveStiffness(c *Cycle) (float64, error) {
	d1, d3 := c.Vertex(0).Displacement, c.Vertex(2).Displacement
	f1, f3 := c.Vertex(0).Force, c.Vertex(2).Force

	den := math.Abs(d1) + math.Abs(d3)
	if den == 0 {
		return 0, ErrDegenerateCycle
	}
	return (math.Abs(f1) + math.Abs(f3)) / den, nil
}

// DissipatedEnergy computes the polygon area of the 4 selected vertices via
// the shoelace formula; the closure vertex is not reused in the sum. The
// absolute value makes it invariant to starting vertex and winding. A
// self-intersecting pick order silently yields a meaningless value.
func DissipatedEnergy(c *Cycle) float64 {
	var sum float64
	for i := 0; i < Picks; i++ {
		a, b := c.Vertex(i), c.Vertex((i+1)%Picks)
		sum += a.Displacement*b.Force - a.Force*b.Displacement
	}
	return math.Abs(sum) / 2
}

// EquivalentDamping computes the equivalent viscous damping ratio in
// percent, rounded to one decimal (half away from zero):
// (1/π)·E / (kEff·(D1²+D3²)) · 100.
func EquivalentDamping(c *Cycle, kEff, energy float64) float64 {
	d1, d3 := c.Vertex(0).Displacement, c.Vertex(2).Displacement
	xi := energy / (math.Pi * kEff * (d1*d1 + d3*d3)) * 100
	return math.Round(xi*10) / 10
}

// Characterize derives all three metrics from a refined cycle. Stiffness is
// computed first so a degenerate cycle fails before any damping math runs.
func Characterize(c *Cycle) (Metrics, error) {
	kEff, err := EffectiveStiffness(c)
	if err != nil {
		return Metrics{}, err
	}
	energy := DissipatedEnergy(c)
	return Metrics{
		EffectiveStiffness: kEff,
		DissipatedEnergy:   energy,
		EquivalentDamping:  EquivalentDamping(c, kEff, energy),
	}, nil
}
