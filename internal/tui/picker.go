// Package tui is the operator-facing adapter for envelope digitization: a
// bubbletea program that plots the force-displacement series on a braille
// canvas and walks an index-snapped cursor along the sample sequence, so
// every pick is an actual recorded sample.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/okast/isoperf/internal/envelope"
	"github.com/okast/isoperf/internal/record"
	"github.com/okast/isoperf/internal/viz"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Picker implements digitize.PointSource with an interactive terminal plot.
type Picker struct {
	Width, Height int
	Round         int
}

func NewPicker() *Picker {
	return &Picker{Width: defaultWidth, Height: defaultHeight}
}

// Pick blocks until the operator has picked exactly count samples, or
// aborted. The convention is clockwise picking starting from an extreme
// point; it is advisory and not enforced.
func (p *Picker) Pick(ctx context.Context, series record.Series, overlay *envelope.Cycle, count int) ([]record.Sample, error) {
	p.Round++
	m := newPickerModel(series, overlay, count, p.Width, p.Height, p.Round)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	fm := final.(pickerModel)
	if len(fm.picks) < count {
		return nil, fmt.Errorf("%w: operator aborted with %d of %d picks",
			envelope.ErrIncompleteSelection, len(fm.picks), count)
	}
	picks := make([]record.Sample, count)
	for i, idx := range fm.picks {
		picks[i] = series[idx]
	}
	return picks, nil
}

type pickerModel struct {
	series  record.Series
	overlay *envelope.Cycle
	count   int
	round   int

	cursor int
	picks  []int
	done   bool

	canvas        *viz.Canvas
	frame         viz.Frame
	width, height int
}

func newPickerModel(series record.Series, overlay *envelope.Cycle, count, w, h, round int) pickerModel {
	dMin, dMax, fMin, fMax := series.Bounds()
	return pickerModel{
		series:  series,
		overlay: overlay,
		count:   count,
		round:   round,
		cursor:  0,
		picks:   make([]int, 0, count),
		canvas:  viz.NewCanvas(w, h),
		frame:   viz.NewFrame(dMin, dMax, fMin, fMax, w, h),
		width:   w,
		height:  h,
	}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.cursor = m.move(-1)
	case "right", "l":
		m.cursor = m.move(1)
	case "[", "pgup":
		m.cursor = m.move(-25)
	case "]", "pgdown":
		m.cursor = m.move(25)
	case "u", "backspace":
		if len(m.picks) > 0 {
			m.picks = m.picks[:len(m.picks)-1]
		}
	case "enter", " ":
		if len(m.picks) < m.count {
			m.picks = append(m.picks, m.cursor)
		}
		if len(m.picks) == m.count {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) move(step int) int {
	c := m.cursor + step
	if c < 0 {
		c = 0
	}
	if c >= len(m.series) {
		c = len(m.series) - 1
	}
	return c
}

// View renders the series, the dashed overlay cycle, the picked vertices,
// and the cursor, next to a stats panel.
func (m pickerModel) View() string {
	m.canvas.Clear()
	viz.PlotSeries(m.canvas, m.frame, m.series.Displacements(), m.series.Forces())

	if m.overlay != nil {
		closed := m.overlay.Closed()
		disp := make([]float64, len(closed))
		force := make([]float64, len(closed))
		for i, v := range closed {
			disp[i] = v.Displacement
			force[i] = v.Force
		}
		viz.PlotLoop(m.canvas, m.frame, disp, force, true)
	}

	for _, idx := range m.picks {
		s := m.series[idx]
		x, y := m.frame.Map(s.Displacement, s.Force)
		m.canvas.Marker(x, y, 1)
	}

	cur := m.series[m.cursor]
	cx, cy := m.frame.Map(cur.Displacement, cur.Force)
	m.canvas.Marker(cx, cy, 2)

	var s strings.Builder
	title := fmt.Sprintf("ENVELOPE DIGITIZER — ROUND %d", m.round)
	s.WriteString(viz.HeaderStyle.Render(title) + "\n")
	if m.overlay != nil {
		s.WriteString(viz.WarnStyle.Render("dashed: round 1 approximation") + "\n")
	}
	s.WriteString("\n")
	s.WriteString(viz.LabelStyle.Render("Sample") + viz.ValueStyle.Render(fmt.Sprintf("%d / %d", m.cursor, len(m.series)-1)) + "\n")
	s.WriteString(viz.LabelStyle.Render("Displacement") + viz.ValueStyle.Render(fmt.Sprintf("%.4f m", cur.Displacement)) + "\n")
	s.WriteString(viz.LabelStyle.Render("Force") + viz.ValueStyle.Render(fmt.Sprintf("%.2f kN", cur.Force)) + "\n\n")
	s.WriteString(viz.LabelStyle.Render("Picks") + viz.PickStyle.Render(fmt.Sprintf("%d / %d", len(m.picks), m.count)) + "\n")
	for i, idx := range m.picks {
		v := m.series[idx]
		s.WriteString(viz.ValueStyle.Render(fmt.Sprintf("  %d: %.4f m, %.2f kN", i+1, v.Displacement, v.Force)) + "\n")
	}
	s.WriteString(viz.HelpStyle.Render("\npick clockwise from an extreme\n←/→ move  [ ] jump  enter pick\nu undo  q abort"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		viz.CanvasStyle.Render(m.canvas.String()),
		s.String(),
	)
}
