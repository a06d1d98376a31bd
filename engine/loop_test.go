package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

// recordingSystem captures the deltas the pipeline runs with.
type recordingSystem struct {
	dts []time.Duration
}

func (r *recordingSystem) Update(w *World, dt time.Duration) {
	r.dts = append(r.dts, dt)
}

func (r *recordingSystem) Priority() int { return 0 }

// TestTickClampsDelta verifies a stalled frame's delta is clamped to
// MaxTickDelta before integration.
func TestTickClampsDelta(t *testing.T) {
	w := NewWorld()
	rec := &recordingSystem{}
	w.AddSystem(rec)

	loop := NewLoop(w, nil, 0)
	loop.Tick(500 * time.Millisecond)

	if len(rec.dts) != 1 {
		t.Fatalf("Expected 1 tick, got %d", len(rec.dts))
	}
	if rec.dts[0] != MaxTickDelta {
		t.Errorf("Expected clamped dt %v, got %v", MaxTickDelta, rec.dts[0])
	}

	loop.Tick(-time.Second)
	if rec.dts[1] != 0 {
		t.Errorf("Expected negative dt clamped to 0, got %v", rec.dts[1])
	}

	loop.Tick(10 * time.Millisecond)
	if rec.dts[2] != 10*time.Millisecond {
		t.Errorf("Expected dt passed through, got %v", rec.dts[2])
	}
}

// TestStepUsesWallClockDelta verifies Step feeds the elapsed time from
// the clock into the tick, with the clamp applied.
func TestStepUsesWallClockDelta(t *testing.T) {
	w := NewWorld()
	rec := &recordingSystem{}
	w.AddSystem(rec)

	clock := NewMockTimeProvider(time.Unix(0, 0))
	loop := NewLoop(w, clock, 0)

	loop.Step() // First step establishes the baseline, dt 0
	clock.Advance(16 * time.Millisecond)
	loop.Step()
	clock.Advance(3 * time.Second) // Stall
	loop.Step()

	if len(rec.dts) != 3 {
		t.Fatalf("Expected 3 ticks, got %d", len(rec.dts))
	}
	if rec.dts[0] != 0 {
		t.Errorf("Expected baseline dt 0, got %v", rec.dts[0])
	}
	if rec.dts[1] != 16*time.Millisecond {
		t.Errorf("Expected dt 16ms, got %v", rec.dts[1])
	}
	if rec.dts[2] != MaxTickDelta {
		t.Errorf("Expected stall clamped to %v, got %v", MaxTickDelta, rec.dts[2])
	}
}

// TestSystemOrder verifies systems run by ascending priority
// regardless of registration order.
func TestSystemOrder(t *testing.T) {
	w := NewWorld()

	var order []int
	mk := func(p int) System { return &orderedSystem{prio: p, order: &order} }
	w.AddSystem(mk(30))
	w.AddSystem(mk(10))
	w.AddSystem(mk(20))

	w.Update(time.Millisecond)

	want := []int{10, 20, 30}
	if len(order) != len(want) {
		t.Fatalf("Expected %d system runs, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected priority %d at slot %d, got %d", want[i], i, order[i])
		}
	}
}

type orderedSystem struct {
	prio  int
	order *[]int
}

func (s *orderedSystem) Update(w *World, dt time.Duration) {
	*s.order = append(*s.order, s.prio)
}

func (s *orderedSystem) Priority() int { return s.prio }

// TestLoopStartStop verifies the convenience wrapper starts once and
// stops cleanly.
func TestLoopStartStop(t *testing.T) {
	w := NewWorld()
	loop := NewLoop(w, nil, time.Millisecond)

	if !loop.Start() {
		t.Fatal("Expected first Start to succeed")
	}
	if loop.Start() {
		t.Error("Expected second Start to report already running")
	}

	time.Sleep(5 * time.Millisecond)
	loop.Stop()
	loop.Stop() // Safe to repeat
}

// countingSystem tallies ticks; atomic because the ticker goroutine
// writes while the test reads.
type countingSystem struct {
	ticks atomic.Int64
}

func (s *countingSystem) Update(w *World, dt time.Duration) { s.ticks.Add(1) }

func (s *countingSystem) Priority() int { return 0 }

// TestLoopRestart verifies a stopped loop can be started again and
// keeps ticking on the new run.
func TestLoopRestart(t *testing.T) {
	w := NewWorld()
	sys := &countingSystem{}
	w.AddSystem(sys)
	loop := NewLoop(w, nil, time.Millisecond)

	if !loop.Start() {
		t.Fatal("Expected first Start to succeed")
	}
	time.Sleep(5 * time.Millisecond)
	loop.Stop()

	before := sys.ticks.Load()
	if !loop.Start() {
		t.Fatal("Expected restart after Stop to succeed")
	}
	deadline := time.Now().Add(time.Second)
	for sys.ticks.Load() == before && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	loop.Stop()

	if sys.ticks.Load() == before {
		t.Error("Expected the restarted loop to keep ticking")
	}
}
