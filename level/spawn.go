package level

import (
	"math"

	"gridfire/component"
	"gridfire/core"
	"gridfire/engine"
	"gridfire/vmath"
)

// Default camera field of view, radians.
const DefaultFOV = math.Pi / 3

// Patrol half-width around an enemy spawn, world units.
const patrolHalfWidth = 1.5

// SpawnPlayer creates a player entity at (x, y) facing dir.
func SpawnPlayer(w *engine.World, x, y float64, dir vmath.Vec2F) (core.Entity, error) {
	e := w.CreateEntity()
	if err := w.Positions.Add(e, component.PositionComponent{X: x, Y: y}); err != nil {
		return core.NoEntity, err
	}
	if err := w.Velocities.Add(e, component.VelocityComponent{}); err != nil {
		return core.NoEntity, err
	}
	if err := w.Players.Add(e, component.PlayerComponent{}); err != nil {
		return core.NoEntity, err
	}
	if err := w.Cameras.Add(e, component.CameraComponent{
		Dir: vmath.V2FNormalize(dir),
		FOV: DefaultFOV,
	}); err != nil {
		return core.NoEntity, err
	}
	if err := w.Renderables.Add(e, component.RenderableComponent{Sprite: '@', Shade: 255}); err != nil {
		return core.NoEntity, err
	}
	return e, nil
}

// SpawnEnemy creates an enemy entity at (x, y) patrolling a short
// horizontal sweep around its spawn cell.
func SpawnEnemy(w *engine.World, x, y float64) (core.Entity, error) {
	e := w.CreateEntity()
	if err := w.Positions.Add(e, component.PositionComponent{X: x, Y: y}); err != nil {
		return core.NoEntity, err
	}
	if err := w.Enemies.Add(e, component.EnemyComponent{
		PatrolMin: x - patrolHalfWidth,
		PatrolMax: x + patrolHalfWidth,
		Dir:       1,
	}); err != nil {
		return core.NoEntity, err
	}
	if err := w.Renderables.Add(e, component.RenderableComponent{Sprite: 'E', Shade: 200}); err != nil {
		return core.NoEntity, err
	}
	return e, nil
}

// Populate spawns every placement into the world. The player faces
// +X unless the map dictates otherwise later.
func Populate(w *engine.World, placements []Placement) error {
	for _, p := range placements {
		var err error
		switch p.Kind {
		case PlacementPlayer:
			_, err = SpawnPlayer(w, p.X, p.Y, vmath.Vec2F{X: 1, Y: 0})
		case PlacementEnemy:
			_, err = SpawnEnemy(w, p.X, p.Y)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
