package digitize

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/okast/isoperf/internal/envelope"
	"github.com/okast/isoperf/internal/record"
)

var loopPicks = []record.Sample{
	{Displacement: 0.1, Force: 500},
	{Displacement: 0.06, Force: -300},
	{Displacement: -0.1, Force: -500},
	{Displacement: -0.06, Force: 300},
}

// scriptedSource replays fixed pick sets, one per round.
type scriptedSource struct {
	rounds   [][]record.Sample
	overlays []*envelope.Cycle
	calls    int
	err      error
}

func (s *scriptedSource) Pick(ctx context.Context, series record.Series, overlay *envelope.Cycle, count int) ([]record.Sample, error) {
	s.overlays = append(s.overlays, overlay)
	if s.err != nil {
		return nil, s.err
	}
	picks := s.rounds[s.calls]
	s.calls++
	return picks, nil
}

type recordingSnapshotter struct {
	rounds [][]*envelope.Cycle
}

func (r *recordingSnapshotter) Snapshot(round int, series record.Series, cycles ...*envelope.Cycle) error {
	r.rounds = append(r.rounds, cycles)
	return nil
}

func testSeries() record.Series {
	return record.Series{{Displacement: 0.1, Force: 500}, {Displacement: -0.1, Force: -500}}
}

func TestRunTwoRounds(t *testing.T) {
	src := &scriptedSource{rounds: [][]record.Sample{loopPicks, loopPicks}}
	snaps := &recordingSnapshotter{}

	d := New(src, snaps)
	result, err := d.Run(context.Background(), testSeries())
	if err != nil {
		t.Fatal(err)
	}
	if result.Refined == nil || result.Initial == nil {
		t.Fatal("expected both cycles")
	}
	if src.calls != 2 {
		t.Errorf("expected 2 pick rounds, got %d", src.calls)
	}

	// round 1 presents the raw series, round 2 the round-1 cycle
	if src.overlays[0] != nil {
		t.Error("round 1 must have no overlay")
	}
	if src.overlays[1] != result.Initial {
		t.Error("round 2 overlay must be the round-1 cycle")
	}
}

func TestRunSnapshotsPlotState(t *testing.T) {
	src := &scriptedSource{rounds: [][]record.Sample{loopPicks, loopPicks}}
	snaps := &recordingSnapshotter{}

	d := New(src, snaps)
	result, err := d.Run(context.Background(), testSeries())
	if err != nil {
		t.Fatal(err)
	}

	if len(snaps.rounds) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps.rounds))
	}
	if len(snaps.rounds[0]) != 0 {
		t.Error("round 1 snapshot must show the raw series only")
	}
	if len(snaps.rounds[1]) != 1 || snaps.rounds[1][0] != result.Initial {
		t.Error("round 2 snapshot must show the round-1 overlay")
	}
}

func TestRunAbortedSelection(t *testing.T) {
	abort := fmt.Errorf("%w: operator aborted with 3 of 4 picks", envelope.ErrIncompleteSelection)
	src := &scriptedSource{err: abort}

	d := New(src, nil)
	result, err := d.Run(context.Background(), testSeries())
	if !errors.Is(err, envelope.ErrIncompleteSelection) {
		t.Fatalf("expected ErrIncompleteSelection, got %v", err)
	}
	if result != nil {
		t.Error("no partial result may survive an abort")
	}
}

func TestRunShortPickSet(t *testing.T) {
	src := &scriptedSource{rounds: [][]record.Sample{loopPicks[:3]}}

	d := New(src, nil)
	if _, err := d.Run(context.Background(), testSeries()); !errors.Is(err, envelope.ErrIncompleteSelection) {
		t.Fatalf("expected ErrIncompleteSelection for 3 picks, got %v", err)
	}
}

func TestRunWithoutSnapshotter(t *testing.T) {
	src := &scriptedSource{rounds: [][]record.Sample{loopPicks, loopPicks}}
	d := New(src, nil)
	if _, err := d.Run(context.Background(), testSeries()); err != nil {
		t.Fatal(err)
	}
}
