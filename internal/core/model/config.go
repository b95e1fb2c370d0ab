package model

import "time"

const (
	// LongBreakMinutes is the fixed length of the long break.
	LongBreakMinutes = 30
	// MaxSessions is the number of focus sessions before a long break.
	MaxSessions = 4

	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 15

	minMinutes = 1
)

// Phase identifies which interval the timer is counting down.
type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Title returns the label shown above the clock.
func (phase Phase) Title() string {
	switch phase {
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Focus Session"
	}
}

// IsBreak reports whether the phase is a short or long break.
func (phase Phase) IsBreak() bool {
	return phase == PhaseShortBreak || phase == PhaseLongBreak
}

// TimerConfig contains the user-adjustable interval lengths.
type TimerConfig struct {
	FocusMinutes int
	BreakMinutes int
}

// DefaultTimerConfig returns the 25/15 configuration.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		FocusMinutes: DefaultFocusMinutes,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// Normalized returns a copy with both values clamped to at least one minute.
func (config TimerConfig) Normalized() TimerConfig {
	config.FocusMinutes = ClampMinutes(config.FocusMinutes)
	config.BreakMinutes = ClampMinutes(config.BreakMinutes)
	return config
}

// PhaseSeconds returns the full length of phase under this config.
func (config TimerConfig) PhaseSeconds(phase Phase) int {
	switch phase {
	case PhaseShortBreak:
		return ClampMinutes(config.BreakMinutes) * 60
	case PhaseLongBreak:
		return LongBreakMinutes * 60
	default:
		return ClampMinutes(config.FocusMinutes) * 60
	}
}

// PhaseDuration is PhaseSeconds as a time.Duration.
func (config TimerConfig) PhaseDuration(phase Phase) time.Duration {
	return time.Duration(config.PhaseSeconds(phase)) * time.Second
}

// ClampMinutes enforces the one-minute floor.
func ClampMinutes(minutes int) int {
	if minutes < minMinutes {
		return minMinutes
	}
	return minutes
}
