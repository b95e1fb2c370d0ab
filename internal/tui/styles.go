package tui

import "github.com/charmbracelet/lipgloss"

// Neon palette
var (
	ColorCyan   = lipgloss.Color("#00F5D4")
	ColorPink   = lipgloss.Color("#F15BB5")
	ColorYellow = lipgloss.Color("#FEE440")
	ColorMuted  = lipgloss.Color("#6C6F93")
	ColorBorder = lipgloss.Color("#3F4451")
)

var (
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 3)

	ActiveFrameStyle = FrameStyle.
				BorderForeground(ColorCyan)

	PhaseStyle = lipgloss.NewStyle().
			Foreground(ColorPink).
			Bold(true)

	ClockStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DotOnStyle  = lipgloss.NewStyle().Foreground(ColorCyan)
	DotOffStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(ColorPink).
			Bold(true).
			MarginTop(1)

	TaskStyle     = lipgloss.NewStyle()
	TaskDoneStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true)
	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)
