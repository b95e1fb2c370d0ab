package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains pulse timing values.
type Config struct {
	StepDuration Range
	Steps        int
	MinIntensity float64
	MaxIntensity float64
	HoldAtPeak   time.Duration
}

// Engine drives the glow pulse shown while the timer runs.
type Engine struct {
	mu     sync.Mutex
	config Config
	update func(intensity float64)
	cancel context.CancelFunc
	rng    *rand.Rand
}

// New creates a new animation engine. update receives intensities in [MinIntensity, MaxIntensity].
func New(config Config, update func(intensity float64)) *Engine {
	if config.Steps <= 0 {
		config.Steps = 1
	}
	return &Engine{
		config: config,
		update: update,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartPulse starts breathing the glow until ctx is done or Stop is called.
func (engine *Engine) StartPulse(ctx context.Context) {
	engine.start(ctx, engine.runPulse)
}

// Stop halts the running animation and leaves the glow at MinIntensity.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// Running reports whether a pulse is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

// Rest is the intensity shown while the timer is idle.
func (engine *Engine) Rest() float64 {
	return engine.config.MinIntensity
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func (engine *Engine) runPulse(ctx context.Context) {
	for {
		for step := 0; step <= engine.config.Steps; step++ {
			if !engine.emit(ctx, engine.intensityAt(step)) {
				return
			}
			if !sleepWithContext(ctx, engine.stepDuration()) {
				return
			}
		}
		if !sleepWithContext(ctx, engine.config.HoldAtPeak) {
			return
		}
		for step := engine.config.Steps - 1; step > 0; step-- {
			if !engine.emit(ctx, engine.intensityAt(step)) {
				return
			}
			if !sleepWithContext(ctx, engine.stepDuration()) {
				return
			}
		}
	}
}

func (engine *Engine) intensityAt(step int) float64 {
	span := engine.config.MaxIntensity - engine.config.MinIntensity
	return engine.config.MinIntensity + span*float64(step)/float64(engine.config.Steps)
}

func (engine *Engine) stepDuration() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.config.StepDuration.Random(engine.rng)
}

func (engine *Engine) emit(ctx context.Context, intensity float64) bool {
	if ctx.Err() != nil {
		return false
	}
	if engine.update != nil {
		engine.update(intensity)
	}
	return true
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	if duration <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
