package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalTickerFiresUntilDisarmed(t *testing.T) {
	ticker := NewIntervalTicker(time.Millisecond)
	var count atomic.Int32

	ticker.Arm(func() { count.Add(1) })
	require.True(t, ticker.Armed())
	require.Eventually(t, func() bool { return count.Load() >= 3 }, 2*time.Second, time.Millisecond)

	ticker.Disarm()
	assert.False(t, ticker.Armed())

	// Allow an in-flight tick to land, then ensure the count stays put.
	time.Sleep(10 * time.Millisecond)
	settled := count.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, count.Load())
}

func TestIntervalTickerRearmReplacesPrevious(t *testing.T) {
	ticker := NewIntervalTicker(time.Millisecond)
	defer ticker.Disarm()
	var first, second atomic.Int32

	ticker.Arm(func() { first.Add(1) })
	require.Eventually(t, func() bool { return first.Load() >= 1 }, 2*time.Second, time.Millisecond)
	ticker.Arm(func() { second.Add(1) })

	time.Sleep(10 * time.Millisecond)
	settled := first.Load()
	require.Eventually(t, func() bool { return second.Load() >= 3 }, 2*time.Second, time.Millisecond)
	assert.Equal(t, settled, first.Load())
}

func TestIntervalTickerDisarmFromCallback(t *testing.T) {
	ticker := NewIntervalTicker(time.Millisecond)
	done := make(chan struct{})
	var once atomic.Bool

	ticker.Arm(func() {
		ticker.Disarm()
		if once.CompareAndSwap(false, true) {
			close(done)
		}
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback never ran")
	}
	assert.False(t, ticker.Armed())
}

func TestIntervalTickerDefaultInterval(t *testing.T) {
	ticker := NewIntervalTicker(0)
	assert.Equal(t, time.Second, ticker.interval)
}

func TestManualTicker(t *testing.T) {
	ticker := NewManualTicker()
	assert.False(t, ticker.Fire())

	calls := 0
	ticker.Arm(func() {
		calls++
		if calls == 3 {
			ticker.Disarm()
		}
	})

	assert.Equal(t, 3, ticker.FireN(10))
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, ticker.ArmCount())
	assert.False(t, ticker.Armed())
}
