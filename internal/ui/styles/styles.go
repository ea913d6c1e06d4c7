// Package styles holds the shared color tokens and semantic styles for
// the kiosk UI.
package styles

import "github.com/charmbracelet/lipgloss"

// Color tokens. ApplyTheme overrides these from config before any view
// renders, so packages can reference them at render time.
var (
	HighlightColor = lipgloss.Color("#7D56F4")
	SubtleColor    = lipgloss.Color("#6C6C6C")
	ErrorColor     = lipgloss.Color("#EF4444")
	SuccessColor   = lipgloss.Color("#10B981")
)

// Semantic styles shared across components.
var (
	Subtle = lipgloss.NewStyle().Foreground(SubtleColor)

	Badge = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(SubtleColor)

	BadgeActive = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(HighlightColor)

	SeatFree = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(SuccessColor)

	SeatReserved = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ErrorColor).
			Strikethrough(true)

	PaneTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(HighlightColor)

	StatusBar = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// ApplyTheme overrides the color tokens from config. Empty values keep
// the defaults. Must run before the first render.
func ApplyTheme(highlight, subtle, errColor, success string) {
	if highlight != "" {
		HighlightColor = lipgloss.Color(highlight)
	}
	if subtle != "" {
		SubtleColor = lipgloss.Color(subtle)
	}
	if errColor != "" {
		ErrorColor = lipgloss.Color(errColor)
	}
	if success != "" {
		SuccessColor = lipgloss.Color(success)
	}
	rebuild()
}

// rebuild refreshes the semantic styles after a token change.
func rebuild() {
	Subtle = Subtle.Foreground(SubtleColor)
	Badge = Badge.Foreground(SubtleColor)
	BadgeActive = BadgeActive.Foreground(HighlightColor)
	SeatFree = SeatFree.Foreground(SuccessColor)
	SeatReserved = SeatReserved.Foreground(ErrorColor)
	PaneTitle = PaneTitle.Foreground(HighlightColor)
	StatusBar = StatusBar.Foreground(SubtleColor)
}
