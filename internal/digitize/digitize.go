// Package digitize turns the visual force-displacement envelope into exact
// numeric vertices through two rounds of operator picks: a coarse
// approximation, then a refinement against the first round shown as a
// dashed overlay. Only the refined cycle survives to the geometry stage.
package digitize

import (
	"context"
	"fmt"

	"github.com/okast/isoperf/internal/envelope"
	"github.com/okast/isoperf/internal/record"
)

// PointSource yields exactly count coordinate picks from the operator,
// blocking until satisfied or aborted. Production backs this with the TUI
// picker; tests with a scripted sequence. An aborted interaction returns an
// error and no partial pick set.
type PointSource interface {
	Pick(ctx context.Context, series record.Series, overlay *envelope.Cycle, count int) ([]record.Sample, error)
}

// Snapshotter persists a plot snapshot of the state presented to the
// operator in one round. Owned by the report layer, not by the digitizer.
type Snapshotter interface {
	Snapshot(round int, series record.Series, cycles ...*envelope.Cycle) error
}

// Digitizer runs the two-round envelope digitization.
type Digitizer struct {
	source PointSource
	snaps  Snapshotter
}

func New(source PointSource, snaps Snapshotter) *Digitizer {
	return &Digitizer{source: source, snaps: snaps}
}

// Result carries both cycles out of a digitization. Metrics derive from
// Refined exclusively; Initial exists for the comparison plot only.
type Result struct {
	Initial *envelope.Cycle
	Refined *envelope.Cycle
}

// Cycles returns the cycles for the comparison plot, refined first.
func (r *Result) Cycles() []*envelope.Cycle {
	return []*envelope.Cycle{r.Refined, r.Initial}
}

// Run executes round 1 (raw series), then round 2 with the round-1 cycle as
// a dashed reference. Each round blocks on operator input; there is no
// timeout.
func (d *Digitizer) Run(ctx context.Context, series record.Series) (*Result, error) {
	initial, err := d.round(ctx, 1, series, nil)
	if err != nil {
		return nil, err
	}
	refined, err := d.round(ctx, 2, series, initial)
	if err != nil {
		return nil, err
	}
	return &Result{Initial: initial, Refined: refined}, nil
}

// round snapshots the plot state presented to the operator (raw series in
// round 1, series plus the dashed round-1 cycle in round 2), then blocks on
// the pick interaction and closes the picks into a cycle.
func (d *Digitizer) round(ctx context.Context, n int, series record.Series, overlay *envelope.Cycle) (*envelope.Cycle, error) {
	if d.snaps != nil {
		var shown []*envelope.Cycle
		if overlay != nil {
			shown = append(shown, overlay)
		}
		if err := d.snaps.Snapshot(n, series, shown...); err != nil {
			return nil, fmt.Errorf("digitize round %d snapshot: %w", n, err)
		}
	}
	picks, err := d.source.Pick(ctx, series, overlay, envelope.Picks)
	if err != nil {
		return nil, fmt.Errorf("digitize round %d: %w", n, err)
	}
	cycle, err := envelope.NewCycle(picks)
	if err != nil {
		return nil, fmt.Errorf("digitize round %d: %w", n, err)
	}
	return cycle, nil
}
