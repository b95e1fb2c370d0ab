package animation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intensityRecorder struct {
	mu     sync.Mutex
	values []float64
}

func (recorder *intensityRecorder) record(value float64) {
	recorder.mu.Lock()
	recorder.values = append(recorder.values, value)
	recorder.mu.Unlock()
}

func (recorder *intensityRecorder) snapshot() []float64 {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]float64(nil), recorder.values...)
}

func fastConfig() Config {
	return Config{
		StepDuration: Range{Min: time.Millisecond, Max: time.Millisecond},
		Steps:        4,
		MinIntensity: 0,
		MaxIntensity: 1,
	}
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	fixed := Range{Min: time.Second, Max: time.Second}
	assert.Equal(t, time.Second, fixed.Random(rng))

	span := Range{Min: 10 * time.Millisecond, Max: 20 * time.Millisecond}
	for i := 0; i < 100; i++ {
		value := span.Random(rng)
		assert.GreaterOrEqual(t, value, span.Min)
		assert.Less(t, value, span.Max)
	}
}

func TestPulseRampsWithinBounds(t *testing.T) {
	recorder := &intensityRecorder{}
	engine := New(fastConfig(), recorder.record)

	engine.StartPulse(context.Background())
	require.Eventually(t, func() bool { return len(recorder.snapshot()) >= 10 }, 2*time.Second, time.Millisecond)
	engine.Stop()

	values := recorder.snapshot()
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, values[:5])
	for _, value := range values {
		assert.GreaterOrEqual(t, value, 0.0)
		assert.LessOrEqual(t, value, 1.0)
	}
	assert.False(t, engine.Running())
}

func TestStopHaltsUpdates(t *testing.T) {
	recorder := &intensityRecorder{}
	engine := New(fastConfig(), recorder.record)

	engine.StartPulse(context.Background())
	require.Eventually(t, func() bool { return len(recorder.snapshot()) >= 2 }, 2*time.Second, time.Millisecond)
	engine.Stop()

	time.Sleep(10 * time.Millisecond)
	settled := len(recorder.snapshot())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, len(recorder.snapshot()))
}

func TestParentContextCancelStopsPulse(t *testing.T) {
	recorder := &intensityRecorder{}
	engine := New(fastConfig(), recorder.record)
	ctx, cancel := context.WithCancel(context.Background())

	engine.StartPulse(ctx)
	require.Eventually(t, func() bool { return len(recorder.snapshot()) >= 1 }, 2*time.Second, time.Millisecond)
	cancel()

	time.Sleep(10 * time.Millisecond)
	settled := len(recorder.snapshot())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, len(recorder.snapshot()))
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	engine := New(config, nil)

	assert.Equal(t, config.MinIntensity, engine.Rest())
	assert.Less(t, config.MinIntensity, config.MaxIntensity)
	assert.Positive(t, config.Steps)
}
