package engine

import (
	"time"
)

// System is a per-tick function over the world. Systems run strictly
// sequentially in priority order; writes from an earlier system are
// visible to every later system within the same tick.
type System interface {
	Update(w *World, dt time.Duration)
	Priority() int // Lower values run first
}

// AddSystem adds a system to the world and sorts by priority.
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in execution order.
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems once, in order. The update mutex guarantees
// a tick is never re-entered before the previous one finishes.
func (w *World) Update(dt time.Duration) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(w, dt)
	}
}
