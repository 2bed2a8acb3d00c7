package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okast/isoperf/internal/envelope"
	"github.com/okast/isoperf/internal/record"
)

func testCycle(t *testing.T) *envelope.Cycle {
	t.Helper()
	c, err := envelope.NewCycle([]record.Sample{
		{Displacement: 0.1, Force: 500},
		{Displacement: 0.06, Force: -300},
		{Displacement: -0.1, Force: -500},
		{Displacement: -0.06, Force: 300},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestWriteMetrics(t *testing.T) {
	var sb strings.Builder
	m := envelope.Metrics{
		EffectiveStiffness: 5000,
		DissipatedEnergy:   120,
		EquivalentDamping:  38.2,
	}
	if err := WriteMetrics(&sb, m); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, "5000.00 kN/m") {
		t.Errorf("missing stiffness line: %q", out)
	}
	if !strings.Contains(out, "38.2 %") {
		t.Errorf("damping must print one decimal: %q", out)
	}
	if !strings.Contains(out, "120.0000 kN·m") {
		t.Errorf("missing energy line: %q", out)
	}
}

func TestSnapshotterWritesRoundFiles(t *testing.T) {
	dir := t.TempDir()
	s := &SVGSnapshotter{Dir: dir}
	series := record.Series{{Displacement: -0.1, Force: -500}, {Displacement: 0.1, Force: 500}}

	if err := s.Snapshot(1, series); err != nil {
		t.Fatal(err)
	}
	if err := s.Snapshot(2, series, testCycle(t)); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"digitize_round1.svg", "digitize_round2.svg"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !strings.Contains(string(data), "<svg") {
			t.Errorf("%s is not an svg", name)
		}
	}
}

func TestRenderComparison(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmp.svg")
	series := record.Series{{Displacement: -0.1, Force: -500}, {Displacement: 0.1, Force: 500}}
	if err := RenderComparison(series, []*envelope.Cycle{testCycle(t), testCycle(t)}, path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
