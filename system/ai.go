package system

import (
	"math"
	"time"

	"gridfire/engine"
	"gridfire/vmath"
)

// AI tuning defaults, in grid units and units per second.
const (
	DefaultAggroRadius = 150.0
	DefaultPatrolSpeed = 1.5
	DefaultChaseSpeed  = 2.5
)

// AISystem drives every {Position, Enemy} entity with a two-state
// patrol/chase machine. The state is derived fresh each tick from the
// distance to the nearest player; there is no stored state and no
// hysteresis band, so behavior can flap right at the aggro boundary.
type AISystem struct {
	AggroRadius float64
	PatrolSpeed float64
	ChaseSpeed  float64
}

// NewAISystem creates the AI system with default tuning.
func NewAISystem() *AISystem {
	return &AISystem{
		AggroRadius: DefaultAggroRadius,
		PatrolSpeed: DefaultPatrolSpeed,
		ChaseSpeed:  DefaultChaseSpeed,
	}
}

func (s *AISystem) Priority() int { return PriorityAI }

func (s *AISystem) Update(w *engine.World, dt time.Duration) {
	sec := dt.Seconds()

	players := w.Query().
		With(w.Positions).
		With(w.Players).
		Execute()
	playerPos := make([]vmath.Vec2F, 0, len(players))
	for _, p := range players {
		if pos, ok := w.Positions.Get(p); ok {
			playerPos = append(playerPos, vmath.Vec2F{X: pos.X, Y: pos.Y})
		}
	}

	enemies := w.Query().
		With(w.Positions).
		With(w.Enemies).
		Execute()

	for _, e := range enemies {
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		enemy, ok := w.Enemies.Get(e)
		if !ok {
			continue
		}

		// Nearest player this tick
		nearest := vmath.Vec2F{}
		nearestDistSq := math.Inf(1)
		for _, pp := range playerPos {
			d := vmath.V2FDistSq(vmath.Vec2F{X: pos.X, Y: pos.Y}, pp)
			if d < nearestDistSq {
				nearestDistSq = d
				nearest = pp
			}
		}

		if nearestDistSq <= s.AggroRadius*s.AggroRadius {
			// Chase: move toward the nearest player, direction
			// normalized by current distance
			dist := math.Sqrt(nearestDistSq)
			if dist > 0 {
				pos.X += (nearest.X - pos.X) / dist * s.ChaseSpeed * sec
				pos.Y += (nearest.Y - pos.Y) / dist * s.ChaseSpeed * sec
			}
		} else {
			// Patrol: constant-speed horizontal oscillation that
			// reverses exactly at the patrol bounds
			dir := enemy.Dir
			if dir == 0 {
				dir = 1
			}
			pos.X += dir * s.PatrolSpeed * sec
			if pos.X <= enemy.PatrolMin {
				pos.X = enemy.PatrolMin
				dir = 1
			} else if pos.X >= enemy.PatrolMax {
				pos.X = enemy.PatrolMax
				dir = -1
			}
			if dir != enemy.Dir {
				enemy.Dir = dir
				_ = w.Enemies.Add(e, enemy)
			}
		}

		// Id comes from a live query this tick, so Add cannot fail
		_ = w.Positions.Add(e, pos)
	}
}
