package preferences

import (
	"neonfocus/internal/core/model"
)

// Sound options for the completion signal.
const (
	SoundNone = "none"
	SoundBell = "bell"
)

// FocusPresets are the focus lengths offered by the timer window.
var FocusPresets = []int{15, 25, 45, 60}

// BreakPresets are the short break lengths offered by the timer window.
var BreakPresets = []int{5, 10, 15, 20}

// Settings defines editable user preferences.
type Settings struct {
	FocusMinutes  int
	BreakMinutes  int
	Notifications bool
	Sound         string
	Tasks         []string
}

// DefaultSettings returns default settings for NeonFocus.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:  model.DefaultFocusMinutes,
		BreakMinutes:  model.DefaultBreakMinutes,
		Notifications: true,
		Sound:         SoundNone,
	}
}

// TimerConfig converts settings to the controller configuration.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		FocusMinutes: settings.FocusMinutes,
		BreakMinutes: settings.BreakMinutes,
	}.Normalized()
}

// ValidSound reports whether sound names a supported option.
func ValidSound(sound string) bool {
	return sound == SoundNone || sound == SoundBell
}
