// Package report is the sink for digitization results: formatted metric
// lines for the console and SVG plot artifacts on disk.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/okast/isoperf/internal/envelope"
	"github.com/okast/isoperf/internal/export"
	"github.com/okast/isoperf/internal/record"
)

const (
	imageWidth  = 800
	imageHeight = 600
)

// WriteMetrics writes the scalar results as formatted text.
func WriteMetrics(w io.Writer, m envelope.Metrics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "effective stiffness\t%.2f kN/m\n", m.EffectiveStiffness)
	fmt.Fprintf(tw, "dissipated energy\t%.4f kN·m\n", m.DissipatedEnergy)
	fmt.Fprintf(tw, "equivalent damping\t%.1f %%\n", m.EquivalentDamping)
	return tw.Flush()
}

// RenderComparison writes the final comparison image: raw series with the
// refined (and optionally initial) cycle overlaid.
func RenderComparison(series record.Series, cycles []*envelope.Cycle, path string) error {
	return export.WriteFile(path, export.LoopSVG(series, cycles, imageWidth, imageHeight))
}

// SVGSnapshotter persists one plot snapshot per digitization round under
// the output directory. Implements digitize.Snapshotter.
type SVGSnapshotter struct {
	Dir string
}

func (s *SVGSnapshotter) Snapshot(round int, series record.Series, cycles ...*envelope.Cycle) error {
	path := filepath.Join(s.Dir, fmt.Sprintf("digitize_round%d.svg", round))
	return export.WriteFile(path, export.LoopSVG(series, cycles, imageWidth, imageHeight))
}
