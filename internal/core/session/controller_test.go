package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neonfocus/internal/core/model"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (notifier *recordingNotifier) Notify(title, body string) {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.messages = append(notifier.messages, title+": "+body)
}

func (notifier *recordingNotifier) all() []string {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return append([]string(nil), notifier.messages...)
}

func newTestController(focus, brk int) (*Controller, *ManualTicker) {
	ticker := NewManualTicker()
	return New(model.TimerConfig{FocusMinutes: focus, BreakMinutes: brk}, ticker), ticker
}

// runPhase starts the controller and ticks until the current phase completes.
func runPhase(t *testing.T, controller *Controller, ticker *ManualTicker) {
	t.Helper()
	remaining := controller.Snapshot().RemainingSeconds
	controller.Start()
	fired := ticker.FireN(remaining + 10)
	require.Equal(t, remaining, fired, "phase should complete after exactly its remaining ticks")
}

func drain(ch <-chan Event) []Event {
	var events []Event
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return events
			}
			events = append(events, event)
		default:
			return events
		}
	}
}

func TestNewControllerInitialState(t *testing.T) {
	controller, ticker := newTestController(25, 15)

	snapshot := controller.Snapshot()
	assert.Equal(t, model.PhaseFocus, snapshot.Phase)
	assert.Equal(t, 1500, snapshot.RemainingSeconds)
	assert.Equal(t, 1500, snapshot.TotalSeconds)
	assert.Equal(t, 1, snapshot.SessionIndex)
	assert.Equal(t, 0, snapshot.CompletedFocus)
	assert.Equal(t, StatusIdle, snapshot.Status())
	assert.Equal(t, "25:00", snapshot.Clock())
	assert.Equal(t, "Start Focus", snapshot.StartLabel())
	assert.False(t, ticker.Armed())
}

func TestNewControllerClampsConfig(t *testing.T) {
	controller, _ := newTestController(0, -2)

	assert.Equal(t, model.TimerConfig{FocusMinutes: 1, BreakMinutes: 1}, controller.Config())
	assert.Equal(t, 60, controller.Snapshot().RemainingSeconds)
}

func TestStartIsIdempotent(t *testing.T) {
	controller, ticker := newTestController(25, 15)

	controller.Start()
	controller.Start()

	assert.Equal(t, 1, ticker.ArmCount())
	assert.True(t, ticker.Armed())
	assert.Equal(t, StatusRunning, controller.Snapshot().Status())
}

func TestPauseWhenIdleIsNoop(t *testing.T) {
	controller, ticker := newTestController(25, 15)
	events := controller.Subscribe(10)

	controller.Pause()

	assert.Equal(t, StatusIdle, controller.Snapshot().Status())
	assert.False(t, ticker.Armed())
	assert.Empty(t, drain(events))
}

func TestTickWhileNotRunningIsNoop(t *testing.T) {
	controller, _ := newTestController(25, 15)

	controller.Tick()

	assert.Equal(t, 1500, controller.Snapshot().RemainingSeconds)
}

func TestTickDecrements(t *testing.T) {
	controller, ticker := newTestController(25, 15)

	controller.Start()
	ticker.FireN(3)
	controller.Tick()

	assert.Equal(t, 1496, controller.Snapshot().RemainingSeconds)
}

func TestNTicksProduceExactlyOneTransition(t *testing.T) {
	for _, minutes := range []int{1, 2, 5} {
		controller, ticker := newTestController(minutes, 1)
		events := controller.Subscribe(minutes*60 + 10)

		n := controller.Snapshot().RemainingSeconds
		controller.Start()
		fired := ticker.FireN(n + 5)

		assert.Equal(t, n, fired)
		transitions := 0
		for _, event := range drain(events) {
			if event.Type == EventPhaseChange {
				transitions++
			}
			assert.GreaterOrEqual(t, event.Snapshot.RemainingSeconds, 0)
		}
		assert.Equal(t, 1, transitions, "focus of %d minutes", minutes)
		assert.False(t, ticker.Armed())
		assert.False(t, controller.Snapshot().Running)
	}
}

func TestFocusCompletionExample(t *testing.T) {
	controller, ticker := newTestController(25, 15)

	controller.Start()
	fired := ticker.FireN(1500)

	snapshot := controller.Snapshot()
	assert.Equal(t, 1500, fired)
	assert.Equal(t, model.PhaseShortBreak, snapshot.Phase)
	assert.Equal(t, 900, snapshot.RemainingSeconds)
	assert.Equal(t, 1, snapshot.CompletedFocus)
	assert.Equal(t, StatusIdle, snapshot.Status())
	assert.Equal(t, "Start Break", snapshot.StartLabel())
}

func TestProgressAtBoundaries(t *testing.T) {
	controller, ticker := newTestController(1, 1)
	events := controller.Subscribe(200)

	assert.Equal(t, 0.0, controller.Snapshot().Progress())

	controller.Start()
	ticker.FireN(60)

	var lastDisplay Event
	previous := -1.0
	for _, event := range drain(events) {
		if event.Type != EventDisplay {
			continue
		}
		progress := event.Snapshot.Progress()
		assert.GreaterOrEqual(t, progress, previous)
		previous = progress
		lastDisplay = event
	}
	assert.Equal(t, 0, lastDisplay.Snapshot.RemainingSeconds)
	assert.Equal(t, 1.0, lastDisplay.Snapshot.Progress())

	// After the transition the new phase starts from zero progress.
	assert.Equal(t, 0.0, controller.Snapshot().Progress())
}

func TestLongBreakAfterMaxSessions(t *testing.T) {
	controller, ticker := newTestController(1, 1)

	var phases []model.Phase
	for i := 0; i < 2*model.MaxSessions; i++ {
		runPhase(t, controller, ticker)
		phases = append(phases, controller.Snapshot().Phase)
	}

	assert.Equal(t, []model.Phase{
		model.PhaseShortBreak, model.PhaseFocus,
		model.PhaseShortBreak, model.PhaseFocus,
		model.PhaseShortBreak, model.PhaseFocus,
		model.PhaseLongBreak, model.PhaseFocus,
	}, phases)

	snapshot := controller.Snapshot()
	assert.Equal(t, model.MaxSessions, snapshot.CompletedFocus)
	assert.Equal(t, 1, snapshot.SessionIndex)
}

func TestLongBreakResetsSessionIndex(t *testing.T) {
	controller, ticker := newTestController(1, 1)

	for i := 0; i < 2*model.MaxSessions-1; i++ {
		runPhase(t, controller, ticker)
	}

	snapshot := controller.Snapshot()
	require.Equal(t, model.PhaseLongBreak, snapshot.Phase)
	assert.Equal(t, 0, snapshot.SessionIndex)
	assert.Equal(t, model.LongBreakMinutes*60, snapshot.RemainingSeconds)
	assert.Equal(t, "Start Long Break", snapshot.StartLabel())
	assert.Equal(t, []bool{false, false, false, false}, snapshot.Dots())

	runPhase(t, controller, ticker)
	snapshot = controller.Snapshot()
	assert.Equal(t, model.PhaseFocus, snapshot.Phase)
	assert.Equal(t, 1, snapshot.SessionIndex)
	assert.Equal(t, []bool{true, false, false, false}, snapshot.Dots())
}

func TestPauseResumeKeepsRemaining(t *testing.T) {
	controller, ticker := newTestController(25, 15)

	controller.Start()
	ticker.FireN(42)
	controller.Pause()

	paused := controller.Snapshot()
	assert.Equal(t, StatusPaused, paused.Status())
	assert.Equal(t, "Resume", paused.StartLabel())
	assert.False(t, ticker.Armed())
	assert.False(t, ticker.Fire())

	controller.Start()
	resumed := controller.Snapshot()
	assert.Equal(t, paused.RemainingSeconds, resumed.RemainingSeconds)
	assert.Equal(t, 1500-42, resumed.RemainingSeconds)

	ticker.Fire()
	assert.Equal(t, 1500-43, controller.Snapshot().RemainingSeconds)
}

func TestResetDuringShortBreak(t *testing.T) {
	controller, ticker := newTestController(25, 15)
	runPhase(t, controller, ticker)

	controller.Start()
	ticker.FireN(100)
	controller.Reset()

	snapshot := controller.Snapshot()
	assert.Equal(t, model.PhaseShortBreak, snapshot.Phase)
	assert.Equal(t, 900, snapshot.RemainingSeconds)
	assert.Equal(t, 1, snapshot.CompletedFocus)
	assert.Equal(t, StatusIdle, snapshot.Status())
	assert.False(t, ticker.Armed())
}

func TestResetUsesLiveConfig(t *testing.T) {
	controller, ticker := newTestController(25, 15)

	controller.Start()
	ticker.FireN(10)
	controller.SetFocusMinutes(40)
	assert.Equal(t, 1490, controller.Snapshot().RemainingSeconds, "running phase keeps its duration")

	controller.Reset()
	assert.Equal(t, 2400, controller.Snapshot().RemainingSeconds)
}

func TestSetFocusMinutesDuringBreakIsDeferred(t *testing.T) {
	controller, ticker := newTestController(25, 15)
	runPhase(t, controller, ticker)

	controller.SetFocusMinutes(10)
	assert.Equal(t, 900, controller.Snapshot().RemainingSeconds)

	runPhase(t, controller, ticker)
	snapshot := controller.Snapshot()
	assert.Equal(t, model.PhaseFocus, snapshot.Phase)
	assert.Equal(t, 600, snapshot.RemainingSeconds)
}

func TestSetFocusMinutesWhileIdleAppliesImmediately(t *testing.T) {
	controller, _ := newTestController(25, 15)

	controller.SetFocusMinutes(45)

	snapshot := controller.Snapshot()
	assert.Equal(t, 2700, snapshot.RemainingSeconds)
	assert.Equal(t, 2700, snapshot.TotalSeconds)
}

func TestSetFocusMinutesWhilePausedAppliesImmediately(t *testing.T) {
	controller, ticker := newTestController(25, 15)
	controller.Start()
	ticker.FireN(30)
	controller.Pause()

	controller.SetFocusMinutes(15)

	assert.Equal(t, 900, controller.Snapshot().RemainingSeconds)
}

func TestSetBreakMinutesDuringShortBreak(t *testing.T) {
	controller, ticker := newTestController(1, 15)
	runPhase(t, controller, ticker)

	controller.SetBreakMinutes(5)

	assert.Equal(t, 300, controller.Snapshot().RemainingSeconds)
}

func TestSetBreakMinutesDoesNotTouchLongBreak(t *testing.T) {
	controller, ticker := newTestController(1, 1)
	for i := 0; i < 2*model.MaxSessions-1; i++ {
		runPhase(t, controller, ticker)
	}
	require.Equal(t, model.PhaseLongBreak, controller.Snapshot().Phase)

	controller.SetBreakMinutes(20)

	assert.Equal(t, model.LongBreakMinutes*60, controller.Snapshot().RemainingSeconds)
	assert.Equal(t, 20, controller.Config().BreakMinutes)
}

func TestSetMinutesClampsToOne(t *testing.T) {
	controller, _ := newTestController(25, 15)

	controller.SetFocusMinutes(0)
	controller.SetBreakMinutes(-7)

	assert.Equal(t, model.TimerConfig{FocusMinutes: 1, BreakMinutes: 1}, controller.Config())
	assert.Equal(t, 60, controller.Snapshot().RemainingSeconds)
}

func TestNotifierMessages(t *testing.T) {
	controller, ticker := newTestController(1, 1)
	notifier := &recordingNotifier{}
	controller.SetNotifier(notifier)

	runPhase(t, controller, ticker)
	runPhase(t, controller, ticker)

	assert.Equal(t, []string{
		"NeonFocus Timer: Great work! Time for a break!",
		"NeonFocus Timer: Break time is over! Ready to focus?",
	}, notifier.all())
}

func TestSessionCompleteEventPrecedesPhaseChange(t *testing.T) {
	controller, ticker := newTestController(1, 1)
	events := controller.Subscribe(100)

	runPhase(t, controller, ticker)

	var kinds []EventType
	for _, event := range drain(events) {
		if event.Type == EventSessionComplete || event.Type == EventPhaseChange {
			kinds = append(kinds, event.Type)
			assert.Equal(t, model.PhaseFocus, event.Completed)
		}
		if event.Type == EventSessionComplete {
			assert.Equal(t, "Great work! Time for a break!", event.Message)
		}
	}
	assert.Equal(t, []EventType{EventSessionComplete, EventPhaseChange}, kinds)
}

func TestStaleArmingIsIgnored(t *testing.T) {
	controller, ticker := newTestController(25, 15)

	controller.Start()
	ticker.mu.Lock()
	stale := ticker.fn
	ticker.mu.Unlock()

	controller.Pause()
	controller.Start()
	stale()

	assert.Equal(t, 1500, controller.Snapshot().RemainingSeconds)
	ticker.Fire()
	assert.Equal(t, 1499, controller.Snapshot().RemainingSeconds)
}

func TestCloseClosesSubscribers(t *testing.T) {
	controller, ticker := newTestController(25, 15)
	events := controller.Subscribe(1)
	controller.Start()

	controller.Close()
	controller.Close()

	_, open := <-events
	assert.False(t, open)
	assert.False(t, ticker.Armed())

	controller.Start()
	assert.False(t, controller.Snapshot().Running)

	late := controller.Subscribe(1)
	_, open = <-late
	assert.False(t, open)
}

func TestControllerWithIntervalTicker(t *testing.T) {
	controller := New(model.TimerConfig{FocusMinutes: 1, BreakMinutes: 1}, NewIntervalTicker(time.Millisecond))
	defer controller.Close()
	notifier := &recordingNotifier{}
	controller.SetNotifier(notifier)

	controller.Start()

	require.Eventually(t, func() bool {
		return controller.Snapshot().Phase == model.PhaseShortBreak
	}, 5*time.Second, 5*time.Millisecond)

	snapshot := controller.Snapshot()
	assert.False(t, snapshot.Running)
	assert.Equal(t, 60, snapshot.RemainingSeconds)
	assert.Len(t, notifier.all(), 1)
}
