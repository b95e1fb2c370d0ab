// Package notify delivers best-effort completion notifications.
package notify

import (
	"io"
	"sync"

	"fyne.io/fyne/v2"
)

// Notifier delivers a notification. Delivery is best effort and never fails.
type Notifier interface {
	Notify(title, body string)
}

// Func adapts a function to Notifier.
type Func func(title, body string)

// Notify calls fn.
func (fn Func) Notify(title, body string) {
	if fn != nil {
		fn(title, body)
	}
}

// Gate forwards notifications only while permission is granted.
type Gate struct {
	mu      sync.RWMutex
	next    Notifier
	allowed bool
}

// NewGate wraps next with an initial permission state.
func NewGate(next Notifier, allowed bool) *Gate {
	return &Gate{next: next, allowed: allowed}
}

// SetAllowed grants or revokes permission.
func (gate *Gate) SetAllowed(allowed bool) {
	gate.mu.Lock()
	gate.allowed = allowed
	gate.mu.Unlock()
}

// Allowed reports the current permission.
func (gate *Gate) Allowed() bool {
	gate.mu.RLock()
	defer gate.mu.RUnlock()
	return gate.allowed
}

// Notify forwards to the wrapped notifier when allowed. Denied permission is a silent no-op.
func (gate *Gate) Notify(title, body string) {
	gate.mu.RLock()
	next, allowed := gate.next, gate.allowed
	gate.mu.RUnlock()
	if !allowed || next == nil {
		return
	}
	next.Notify(title, body)
}

// Multi fans a notification out to every non-nil notifier.
type Multi []Notifier

// Notify delivers to each notifier in order.
func (multi Multi) Notify(title, body string) {
	for _, notifier := range multi {
		if notifier != nil {
			notifier.Notify(title, body)
		}
	}
}

// Bell rings the terminal bell.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
}

// NewBell creates a Bell writing to out.
func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

// Notify writes a BEL character; write errors are ignored.
func (bell *Bell) Notify(string, string) {
	bell.mu.Lock()
	defer bell.mu.Unlock()
	if bell.out == nil {
		return
	}
	_, _ = bell.out.Write([]byte("\a"))
}

// Desktop sends OS notifications through a fyne app.
type Desktop struct {
	app fyne.App
}

// NewDesktop creates a desktop notifier.
func NewDesktop(app fyne.App) *Desktop {
	return &Desktop{app: app}
}

// Notify posts a system notification.
func (desktop *Desktop) Notify(title, body string) {
	if desktop == nil || desktop.app == nil {
		return
	}
	desktop.app.SendNotification(fyne.NewNotification(title, body))
}
