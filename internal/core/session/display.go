package session

import (
	"fmt"
	"math"
)

// RingRadius is the radius of the progress ring drawn by the desktop window.
const RingRadius = 120

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Progress returns (total-remaining)/total clamped to [0,1].
func Progress(totalSeconds, remainingSeconds int) float64 {
	if totalSeconds <= 0 {
		return 1
	}
	progress := float64(totalSeconds-remainingSeconds) / float64(totalSeconds)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// RingOffset returns the stroke offset of a ring with the given radius: circumference * (1 - progress).
func RingOffset(radius, progress float64) float64 {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	circumference := 2 * math.Pi * radius
	return circumference * (1 - progress)
}

// SessionDots lights dot i when i < index.
func SessionDots(index, maxSessions int) []bool {
	if maxSessions <= 0 {
		return nil
	}
	dots := make([]bool, maxSessions)
	for i := range dots {
		dots[i] = i < index
	}
	return dots
}
