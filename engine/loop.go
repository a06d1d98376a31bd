package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// MaxTickDelta caps the wall-clock delta fed into a tick. Without the
// clamp a long stall (debugger, suspended terminal) integrates into one
// huge dt and entities tunnel arbitrarily far.
const MaxTickDelta = 64 * time.Millisecond

// DefaultTickInterval is the self-scheduling cadence of Start.
const DefaultTickInterval = 16 * time.Millisecond

// Loop drives the world's system pipeline from wall-clock time.
// The host may call Tick directly on its own schedule; Start/Stop is a
// convenience wrapper around a ticker. Stop halts further scheduling
// only - an in-flight tick always runs to completion.
type Loop struct {
	world    *World
	clock    Clock
	interval time.Duration

	lastTick time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewLoop creates a loop over the given world. A nil clock falls back
// to the monotonic system clock.
func NewLoop(world *World, clock Clock, interval time.Duration) *Loop {
	if clock == nil {
		clock = NewTimeProvider()
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Loop{
		world:    world,
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Tick runs one full pipeline pass with the given delta. Deltas above
// MaxTickDelta are clamped to bound integration error after a stall.
func (l *Loop) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxTickDelta {
		dt = MaxTickDelta
	}
	l.world.Update(dt)
}

// Step computes the wall-clock delta since the previous Step (or Start)
// and runs one tick with it.
func (l *Loop) Step() {
	now := l.clock.Now()
	if l.lastTick.IsZero() {
		l.lastTick = now
	}
	dt := now.Sub(l.lastTick)
	l.lastTick = now
	l.Tick(dt)
}

// Start begins self-scheduled ticking on a background ticker.
// Returns false if the loop is already running. A stopped loop may be
// started again.
func (l *Loop) Start() bool {
	if !l.running.CompareAndSwap(false, true) {
		return false
	}

	// Fresh stop plumbing per run, otherwise a restart after Stop
	// inherits a closed channel and the ticker goroutine exits at once
	l.stopChan = make(chan struct{})
	l.stopOnce = sync.Once{}

	l.lastTick = l.clock.Now()
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		for {
			select {
			case <-l.stopChan:
				return
			case <-ticker.C:
				l.Step()
			}
		}
	}()
	return true
}

// Stop halts the ticker goroutine and waits for any in-flight tick to
// finish. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	l.wg.Wait()
	l.running.Store(false)
}
