package system

import (
	"time"

	"gridfire/engine"
)

// CullSystem ages bullets and destroys them when their flight time is
// spent. Runs last so a bullet spawned this tick still gets its full
// lifetime.
type CullSystem struct{}

// NewCullSystem creates the cull system.
func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

func (s *CullSystem) Priority() int { return PriorityCull }

func (s *CullSystem) Update(w *engine.World, dt time.Duration) {
	sec := dt.Seconds()
	bullets := w.Bullets.All()

	for _, e := range bullets {
		b, ok := w.Bullets.Get(e)
		if !ok {
			continue
		}
		b.Life -= sec
		if b.Life <= 0 {
			w.DestroyEntity(e)
			continue
		}
		// Entity is alive or Get would have missed; Add cannot fail
		_ = w.Bullets.Add(e, b)
	}
}
