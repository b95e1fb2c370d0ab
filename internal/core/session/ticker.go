package session

import (
	"sync"
	"time"
)

// TickSource is a cancellable repeating timer.
// Arm replaces any live arming; Disarm must not block.
type TickSource interface {
	Arm(fn func())
	Disarm()
}

// IntervalTicker fires on its own goroutine every Interval while armed.
type IntervalTicker struct {
	mu       sync.Mutex
	interval time.Duration
	stopCh   chan struct{}
}

// NewIntervalTicker creates a tick source. Non-positive intervals default to one second.
func NewIntervalTicker(interval time.Duration) *IntervalTicker {
	if interval <= 0 {
		interval = time.Second
	}
	return &IntervalTicker{interval: interval}
}

// Arm starts delivering ticks to fn.
func (ticker *IntervalTicker) Arm(fn func()) {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.disarmLocked()
	stopCh := make(chan struct{})
	ticker.stopCh = stopCh
	go ticker.run(stopCh, fn)
}

// Disarm stops the current arming, if any.
func (ticker *IntervalTicker) Disarm() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.disarmLocked()
}

// Armed reports whether a tick goroutine is live.
func (ticker *IntervalTicker) Armed() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.stopCh != nil
}

func (ticker *IntervalTicker) disarmLocked() {
	if ticker.stopCh == nil {
		return
	}
	close(ticker.stopCh)
	ticker.stopCh = nil
}

func (ticker *IntervalTicker) run(stopCh <-chan struct{}, fn func()) {
	timeTicker := time.NewTicker(ticker.interval)
	defer timeTicker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-timeTicker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			fn()
		}
	}
}

// ManualTicker is a TickSource fired explicitly with Fire.
type ManualTicker struct {
	mu       sync.Mutex
	fn       func()
	armCount int
}

// NewManualTicker creates an unarmed manual tick source.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

// Arm stores fn as the live arming.
func (ticker *ManualTicker) Arm(fn func()) {
	ticker.mu.Lock()
	ticker.fn = fn
	ticker.armCount++
	ticker.mu.Unlock()
}

// Disarm drops the live arming.
func (ticker *ManualTicker) Disarm() {
	ticker.mu.Lock()
	ticker.fn = nil
	ticker.mu.Unlock()
}

// Armed reports whether Fire would deliver a tick.
func (ticker *ManualTicker) Armed() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.fn != nil
}

// ArmCount returns how many times Arm was called.
func (ticker *ManualTicker) ArmCount() int {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.armCount
}

// Fire delivers one tick and reports whether the ticker was armed.
func (ticker *ManualTicker) Fire() bool {
	ticker.mu.Lock()
	fn := ticker.fn
	ticker.mu.Unlock()
	if fn == nil {
		return false
	}
	fn()
	return true
}

// FireN delivers up to n ticks, stopping early once the ticker is disarmed.
// It returns the number of ticks delivered.
func (ticker *ManualTicker) FireN(n int) int {
	fired := 0
	for fired < n && ticker.Fire() {
		fired++
	}
	return fired
}
