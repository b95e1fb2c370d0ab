package session

import (
	"sync"
	"time"

	"neonfocus/internal/core/model"
	"neonfocus/internal/debug"
)

const (
	// NotificationTitle is the title of every completion notification.
	NotificationTitle = "NeonFocus Timer"

	focusCompleteMessage = "Great work! Time for a break!"
	breakCompleteMessage = "Break time is over! Ready to focus?"
)

// Notifier receives one-shot completion notifications.
type Notifier interface {
	Notify(title, body string)
}

// Controller is a state machine that owns the countdown and the session cycle.
type Controller struct {
	mu         sync.Mutex
	config     model.TimerConfig
	ticker     TickSource
	notifier   Notifier
	events     []chan Event
	generation uint64
	closed     bool
	now        func() time.Time

	phase          model.Phase
	remaining      int
	total          int
	running        bool
	paused         bool
	sessionIndex   int
	completedFocus int
}

// New creates a Controller in the idle focus phase.
// A nil ticker defaults to a one-second IntervalTicker.
func New(config model.TimerConfig, ticker TickSource) *Controller {
	if ticker == nil {
		ticker = NewIntervalTicker(time.Second)
	}
	controller := &Controller{
		config:       config.Normalized(),
		ticker:       ticker,
		now:          time.Now,
		phase:        model.PhaseFocus,
		sessionIndex: 1,
	}
	controller.enterPhaseLocked(model.PhaseFocus)
	return controller
}

// SetNotifier injects the completion notifier.
func (controller *Controller) SetNotifier(notifier Notifier) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.notifier = notifier
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	if controller.closed {
		close(ch)
	} else {
		controller.events = append(controller.events, ch)
	}
	controller.mu.Unlock()
	return ch
}

// Close stops ticking and closes observers.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.disarmLocked()
	controller.running = false
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns the current state.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.snapshotLocked()
}

// Config returns the live timer configuration.
func (controller *Controller) Config() model.TimerConfig {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.config
}

// Start begins the countdown. It is a no-op while already running.
func (controller *Controller) Start() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.running || controller.closed {
		return
	}
	controller.running = true
	controller.paused = false
	controller.generation++
	generation := controller.generation
	controller.ticker.Arm(func() {
		controller.tickArmed(generation)
	})
	debug.Logf("session: start phase=%s remaining=%d", controller.phase, controller.remaining)
	controller.emitLocked(EventRunState, "", "")
}

// Pause freezes the countdown. It is a no-op unless running.
func (controller *Controller) Pause() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if !controller.running {
		return
	}
	controller.running = false
	controller.paused = true
	controller.disarmLocked()
	debug.Logf("session: pause phase=%s remaining=%d", controller.phase, controller.remaining)
	controller.emitLocked(EventRunState, "", "")
}

// Reset stops the countdown and restores the full duration of the current phase.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.running = false
	controller.paused = false
	controller.disarmLocked()
	controller.total = controller.config.PhaseSeconds(controller.phase)
	controller.remaining = controller.total
	debug.Logf("session: reset phase=%s remaining=%d", controller.phase, controller.remaining)
	controller.emitLocked(EventRunState, "", "")
}

// Tick advances the countdown by one second. It is a no-op unless running.
func (controller *Controller) Tick() {
	controller.mu.Lock()
	if !controller.running {
		controller.mu.Unlock()
		return
	}
	completion := controller.tickLocked()
	notifier := controller.notifier
	controller.mu.Unlock()

	controller.deliver(notifier, completion)
}

// SetFocusMinutes updates the focus length, clamped to at least one minute.
func (controller *Controller) SetFocusMinutes(minutes int) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.config.FocusMinutes = model.ClampMinutes(minutes)
	controller.applyLiveConfigLocked(model.PhaseFocus)
}

// SetBreakMinutes updates the short break length, clamped to at least one minute.
func (controller *Controller) SetBreakMinutes(minutes int) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.config.BreakMinutes = model.ClampMinutes(minutes)
	controller.applyLiveConfigLocked(model.PhaseShortBreak)
}

func (controller *Controller) tickArmed(generation uint64) {
	controller.mu.Lock()
	if !controller.running || generation != controller.generation {
		controller.mu.Unlock()
		return
	}
	completion := controller.tickLocked()
	notifier := controller.notifier
	controller.mu.Unlock()

	controller.deliver(notifier, completion)
}

// tickLocked returns the completion message when the tick finished the phase.
func (controller *Controller) tickLocked() string {
	if controller.remaining > 0 {
		controller.remaining--
	}
	controller.emitLocked(EventDisplay, "", "")
	if controller.remaining > 0 {
		return ""
	}
	return controller.completeSessionLocked()
}

func (controller *Controller) completeSessionLocked() string {
	controller.running = false
	controller.paused = false
	controller.disarmLocked()

	completed := controller.phase
	message := breakCompleteMessage
	if completed == model.PhaseFocus {
		message = focusCompleteMessage
	}
	controller.emitLocked(EventSessionComplete, completed, message)

	if completed == model.PhaseFocus {
		controller.completedFocus++
		if controller.sessionIndex < model.MaxSessions {
			controller.enterPhaseLocked(model.PhaseShortBreak)
		} else {
			controller.enterPhaseLocked(model.PhaseLongBreak)
			controller.sessionIndex = 0
		}
	} else {
		controller.sessionIndex++
		controller.enterPhaseLocked(model.PhaseFocus)
	}

	debug.Logf("session: completed %s, now %s (index=%d completed=%d)",
		completed, controller.phase, controller.sessionIndex, controller.completedFocus)
	controller.emitLocked(EventPhaseChange, completed, "")
	return message
}

func (controller *Controller) enterPhaseLocked(phase model.Phase) {
	controller.phase = phase
	controller.total = controller.config.PhaseSeconds(phase)
	controller.remaining = controller.total
}

func (controller *Controller) applyLiveConfigLocked(phase model.Phase) {
	if controller.phase == phase && !controller.running {
		controller.total = controller.config.PhaseSeconds(phase)
		controller.remaining = controller.total
	}
	controller.emitLocked(EventConfig, "", "")
}

func (controller *Controller) disarmLocked() {
	controller.generation++
	controller.ticker.Disarm()
}

func (controller *Controller) deliver(notifier Notifier, message string) {
	if message == "" || notifier == nil {
		return
	}
	notifier.Notify(NotificationTitle, message)
}

func (controller *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:            controller.phase,
		RemainingSeconds: controller.remaining,
		TotalSeconds:     controller.total,
		Running:          controller.running,
		Paused:           controller.paused,
		SessionIndex:     controller.sessionIndex,
		CompletedFocus:   controller.completedFocus,
		Config:           controller.config,
	}
}

func (controller *Controller) emitLocked(eventType EventType, completed model.Phase, message string) {
	event := Event{
		Type:      eventType,
		Snapshot:  controller.snapshotLocked(),
		Completed: completed,
		Message:   message,
		At:        controller.now(),
	}
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
