package session

import (
	"time"

	"neonfocus/internal/core/model"
)

// EventType defines the type of controller event.
type EventType string

const (
	// EventDisplay carries a new remaining time and progress fraction.
	EventDisplay EventType = "display"
	// EventPhaseChange is sent after a completion moved the timer into a new phase.
	EventPhaseChange EventType = "phase_change"
	// EventRunState is sent when the timer starts, pauses or resets.
	EventRunState EventType = "run_state"
	// EventSessionComplete is the one-shot notification for a finished phase.
	EventSessionComplete EventType = "session_complete"
	// EventConfig is sent after focus or break minutes changed.
	EventConfig EventType = "config"
)

// Status is the run dimension of the state machine.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// Snapshot is an immutable copy of the controller state.
type Snapshot struct {
	Phase            model.Phase
	RemainingSeconds int
	TotalSeconds     int
	Running          bool
	Paused           bool
	SessionIndex     int
	CompletedFocus   int
	Config           model.TimerConfig
}

// Status reports whether the timer is idle, running or paused.
func (snapshot Snapshot) Status() Status {
	switch {
	case snapshot.Running:
		return StatusRunning
	case snapshot.Paused:
		return StatusPaused
	default:
		return StatusIdle
	}
}

// Progress returns the elapsed fraction of the current phase in [0,1].
func (snapshot Snapshot) Progress() float64 {
	return Progress(snapshot.TotalSeconds, snapshot.RemainingSeconds)
}

// Clock returns the remaining time as MM:SS.
func (snapshot Snapshot) Clock() string {
	return FormatClock(snapshot.RemainingSeconds)
}

// StartLabel returns the caption for the start button.
func (snapshot Snapshot) StartLabel() string {
	if snapshot.Paused {
		return "Resume"
	}
	switch snapshot.Phase {
	case model.PhaseShortBreak:
		return "Start Break"
	case model.PhaseLongBreak:
		return "Start Long Break"
	default:
		return "Start Focus"
	}
}

// Dots returns the lit state of each session dot.
func (snapshot Snapshot) Dots() []bool {
	return SessionDots(snapshot.SessionIndex, model.MaxSessions)
}

// Event represents a controller update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	// Completed is the phase that just finished; set on EventSessionComplete and EventPhaseChange.
	Completed model.Phase
	Message   string
	At        time.Time
}
