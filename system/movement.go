package system

import (
	"time"

	"gridfire/engine"
)

// MovementSystem integrates velocity into position for every entity
// with {Position, Velocity}. No wall-collision response is performed;
// entities can pass through walls.
type MovementSystem struct{}

// NewMovementSystem creates the movement system.
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Priority() int { return PriorityMovement }

func (s *MovementSystem) Update(w *engine.World, dt time.Duration) {
	sec := dt.Seconds()
	entities := w.Query().
		With(w.Positions).
		With(w.Velocities).
		Execute()

	for _, e := range entities {
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		vel, ok := w.Velocities.Get(e)
		if !ok {
			continue
		}
		pos.X += vel.VX * sec
		pos.Y += vel.VY * sec
		// Id comes from a live query this tick, so Add cannot fail
		_ = w.Positions.Add(e, pos)
	}
}
