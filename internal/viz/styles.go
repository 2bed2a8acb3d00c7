package viz

import "github.com/charmbracelet/lipgloss"

// Shared style palette for the picker and CLI output.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	CanvasStyle = lipgloss.NewStyle().Padding(1, 2)
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	PickStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	HelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)
