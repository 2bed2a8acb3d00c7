package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/okast/isoperf/internal/record"
)

func testSeries(n int) record.Series {
	s := make(record.Series, n)
	for i := range s {
		s[i] = record.Sample{Displacement: float64(i) * 0.01, Force: float64(i)}
	}
	return s
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestCursorClamped(t *testing.T) {
	m := newPickerModel(testSeries(10), nil, 4, 40, 12, 1)

	next, _ := m.Update(key("left"))
	m = next.(pickerModel)
	if m.cursor != 0 {
		t.Errorf("cursor must clamp at 0, got %d", m.cursor)
	}

	for i := 0; i < 50; i++ {
		next, _ = m.Update(key("]"))
		m = next.(pickerModel)
	}
	if m.cursor != 9 {
		t.Errorf("cursor must clamp at last sample, got %d", m.cursor)
	}
}

func TestPickAndUndo(t *testing.T) {
	m := newPickerModel(testSeries(10), nil, 4, 40, 12, 1)

	next, _ := m.Update(key("enter"))
	m = next.(pickerModel)
	next, _ = m.Update(key("right"))
	m = next.(pickerModel)
	next, _ = m.Update(key("enter"))
	m = next.(pickerModel)
	if len(m.picks) != 2 {
		t.Fatalf("expected 2 picks, got %d", len(m.picks))
	}

	next, _ = m.Update(key("u"))
	m = next.(pickerModel)
	if len(m.picks) != 1 || m.picks[0] != 0 {
		t.Errorf("undo should drop the last pick: %v", m.picks)
	}
}

func TestQuitAfterFinalPick(t *testing.T) {
	m := newPickerModel(testSeries(10), nil, 2, 40, 12, 1)

	next, _ := m.Update(key("enter"))
	m = next.(pickerModel)
	next, cmd := m.Update(key("enter"))
	m = next.(pickerModel)

	if !m.done {
		t.Error("model must be done after final pick")
	}
	if cmd == nil {
		t.Error("final pick must quit the program")
	}
}

func TestAbortLeavesPicksShort(t *testing.T) {
	m := newPickerModel(testSeries(10), nil, 4, 40, 12, 1)
	next, _ := m.Update(key("enter"))
	m = next.(pickerModel)
	next, cmd := m.Update(key("q"))
	m = next.(pickerModel)

	if cmd == nil {
		t.Fatal("abort must quit")
	}
	if m.done || len(m.picks) >= 4 {
		t.Errorf("abort must leave an incomplete pick set: done=%v picks=%v", m.done, m.picks)
	}
}

func TestViewShowsRoundAndPicks(t *testing.T) {
	m := newPickerModel(testSeries(10), nil, 4, 40, 12, 2)
	next, _ := m.Update(key("enter"))
	m = next.(pickerModel)

	view := m.View()
	if !strings.Contains(view, "ROUND 2") {
		t.Error("view must name the round")
	}
	if !strings.Contains(view, "1 / 4") {
		t.Error("view must count picks")
	}
}
