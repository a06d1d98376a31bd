package system

import (
	"time"

	"gridfire/core"
	"gridfire/engine"
	"gridfire/input"
	"gridfire/raycast"
	"gridfire/vmath"
)

// DefaultWeaponRange bounds the hit-scan ray in grid units.
const DefaultWeaponRange = 64.0

// SoundPlayer receives weapon audio cues. Implementations must be safe
// to call from the tick goroutine; a nil player disables audio.
type SoundPlayer interface {
	PlayFire()
	PlayImpact()
}

// ShootingSystem resolves hit-scan fire. When the polled shoot flag is
// set it is cleared immediately (debounce: one shot per press even
// across held ticks), then a single ray is cast from the first
// {Position, Player} entity along its camera forward against every
// enemy target. The struck entity is destroyed; walls occlude targets
// behind them.
type ShootingSystem struct {
	Input       *input.State
	Grid        *raycast.Grid
	HitRadiusSq float64
	Range       float64
	Sounds      SoundPlayer
}

// NewShootingSystem creates the shooting system over the shared input
// state and level grid.
func NewShootingSystem(in *input.State, grid *raycast.Grid) *ShootingSystem {
	return &ShootingSystem{
		Input:       in,
		Grid:        grid,
		HitRadiusSq: raycast.DefaultHitRadiusSq,
		Range:       DefaultWeaponRange,
	}
}

func (s *ShootingSystem) Priority() int { return PriorityShooting }

func (s *ShootingSystem) Update(w *engine.World, dt time.Duration) {
	if s.Input == nil || !s.Input.Shoot {
		return
	}
	// Consume the trigger before resolving so a held flag can never
	// fire again next tick
	s.Input.Shoot = false

	shooter, aim, ok := s.findShooter(w)
	if !ok {
		return
	}

	if s.Sounds != nil {
		s.Sounds.PlayFire()
	}

	targets := s.collectTargets(w, shooter)
	origin, _ := w.Positions.Get(shooter)
	ray := raycast.Ray{
		Origin:      vmath.Vec2F{X: origin.X, Y: origin.Y},
		Dir:         aim,
		MaxDistance: s.Range,
	}

	hit, found := raycast.CastHitScan(s.Grid, ray, targets, s.HitRadiusSq)
	if found && hit.Entity != core.NoEntity {
		w.DestroyEntity(hit.Entity)
		if s.Sounds != nil {
			s.Sounds.PlayImpact()
		}
	}
}

// findShooter returns the first player entity with a position, and its
// aim direction from the attached camera.
func (s *ShootingSystem) findShooter(w *engine.World) (core.Entity, vmath.Vec2F, bool) {
	players := w.Query().
		With(w.Positions).
		With(w.Players).
		Execute()
	for _, p := range players {
		cam, ok := w.Cameras.Get(p)
		if !ok {
			continue
		}
		return p, cam.Dir, true
	}
	return core.NoEntity, vmath.Vec2F{}, false
}

// collectTargets gathers every enemy-marked entity with a position,
// excluding the shooter itself.
func (s *ShootingSystem) collectTargets(w *engine.World, shooter core.Entity) []raycast.Target {
	enemies := w.Query().
		With(w.Positions).
		With(w.Enemies).
		Execute()
	targets := make([]raycast.Target, 0, len(enemies))
	for _, e := range enemies {
		if e == shooter {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		targets = append(targets, raycast.Target{
			Entity: e,
			Pos:    vmath.Vec2F{X: pos.X, Y: pos.Y},
		})
	}
	return targets
}
