// Package theme holds the lipgloss styles for terminal output: student
// model previews, persona sheets, and cycle summaries.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, muted and readable on dark terminals
var (
	Primary = lipgloss.Color("#8B5CF6") // Violet
	Accent  = lipgloss.Color("#14B8A6") // Teal
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgCard  = lipgloss.Color("#1E293B") // Dark Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)
)

// Verdict states
var (
	Accepted = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Rejected = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
