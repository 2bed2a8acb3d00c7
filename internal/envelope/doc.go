// Package envelope computes engineering metrics from an idealized
// quadrilateral hysteresis loop.
//
// A [Cycle] holds exactly four operator-selected vertices in clockwise pick
// order, closed by re-appending the first vertex. Three pure functions
// derive the metrics:
//
//   - [EffectiveStiffness]: secant stiffness between the 1st and 3rd picks
//   - [DissipatedEnergy]: shoelace polygon area of the four picks
//   - [EquivalentDamping]: equivalent viscous damping ratio, percent
//
// # Pick Order
//
// Which vertices sit at the displacement extremes is positional: the 1st
// and 3rd picks play that role because the operator picked clockwise from
// an extreme, not because the package searches for extrema. Inconsistent
// pick order is not detected; a self-intersecting quadrilateral silently
// yields a meaningless area.
//
// All functions are deterministic and stateless: repeated calls on the same
// cycle return bit-identical results.
package envelope
