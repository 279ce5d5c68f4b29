package cmd

import (
	"charm.land/lipgloss/v2"
)

// Output styles shared by the table-printing commands.
var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	styleWarn = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))

	styleOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#22C55E"))

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	styleUrgent = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F43F5E"))
)
