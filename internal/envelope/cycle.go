package envelope

import (
	"errors"
	"fmt"

	"github.com/okast/isoperf/internal/record"
)

// Picks is the number of operator vertices in an idealized quadrilateral
// hysteresis envelope.
const Picks = 4

// Domain errors for envelope characterization.
var (
	// ErrIncompleteSelection indicates the operator produced fewer vertices
	// than a closed envelope requires.
	ErrIncompleteSelection = errors.New("envelope: incomplete selection")

	// ErrDegenerateCycle indicates vertices that are geometrically unusable
	// (zero displacement at both extremes).
	ErrDegenerateCycle = errors.New("envelope: degenerate cycle")
)

// Cycle is one closed quadrilateral hysteresis loop: exactly 4 operator
// vertices in clockwise pick order, closed by re-appending the first vertex.
// The closing point is derived, never picked.
type Cycle struct {
	vertices [Picks + 1]record.Sample
}

// NewCycle builds a closed cycle from exactly 4 picks, in pick order.
func NewCycle(picks []record.Sample) (*Cycle, error) {
	if len(picks) != Picks {
		return nil, fmt.Errorf("%w: got %d of %d vertices", ErrIncompleteSelection, len(picks), Picks)
	}
	var c Cycle
	copy(c.vertices[:Picks], picks)
	c.vertices[Picks] = picks[0]
	return &c, nil
}

// Vertex returns the i-th selected vertex, 0-based over the 4 picks.
func (c *Cycle) Vertex(i int) record.Sample {
	return c.vertices[i]
}

// Closed returns the 5-point closed vertex sequence for plotting.
func (c *Cycle) Closed() []record.Sample {
	out := make([]record.Sample, Picks+1)
	copy(out, c.vertices[:])
	return out
}
