package animation

import "time"

// DefaultConfig returns a slow neon breathing pulse.
func DefaultConfig() Config {
	return Config{
		StepDuration: Range{
			Min: 60 * time.Millisecond,
			Max: 90 * time.Millisecond,
		},
		Steps:        12,
		MinIntensity: 0.25,
		MaxIntensity: 1,
		HoldAtPeak:   400 * time.Millisecond,
	}
}
