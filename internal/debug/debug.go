// Package debug provides debug logging utilities.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	enabled = os.Getenv("NEONFOCUS_DEBUG") == "1"
	out     io.Writer = os.Stderr
)

// Logf writes a debug message to stderr if NEONFOCUS_DEBUG=1
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[DEBUG %s] %s\n", timestamp, msg)
}

// Enabled returns true if debug logging is enabled
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetOutput redirects debug output and returns a function restoring the previous writer.
// The terminal UI uses it to keep debug lines off the alternate screen.
func SetOutput(w io.Writer) func() {
	mu.Lock()
	previous := out
	out = w
	mu.Unlock()
	return func() {
		mu.Lock()
		out = previous
		mu.Unlock()
	}
}

// Enable forces debug logging on or off, overriding NEONFOCUS_DEBUG.
func Enable(value bool) {
	mu.Lock()
	enabled = value
	mu.Unlock()
}
