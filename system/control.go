package system

import (
	"time"

	"gridfire/component"
	"gridfire/engine"
	"gridfire/input"
	"gridfire/vmath"
)

// Control tuning defaults.
const (
	DefaultMoveSpeed   = 3.0   // grid units per second
	DefaultTurnPerUnit = 0.045 // radians per mouse delta unit
)

// ControlSystem translates the polled input snapshot into player
// velocity and camera yaw. Runs before movement so this tick's intent
// is integrated this tick.
type ControlSystem struct {
	Input       *input.State
	MoveSpeed   float64
	TurnPerUnit float64
}

// NewControlSystem creates the control system over the shared input state.
func NewControlSystem(in *input.State) *ControlSystem {
	return &ControlSystem{
		Input:       in,
		MoveSpeed:   DefaultMoveSpeed,
		TurnPerUnit: DefaultTurnPerUnit,
	}
}

func (s *ControlSystem) Priority() int { return PriorityControl }

func (s *ControlSystem) Update(w *engine.World, dt time.Duration) {
	if s.Input == nil {
		return
	}

	players := w.Query().
		With(w.Positions).
		With(w.Players).
		Execute()

	for _, p := range players {
		cam, hasCam := w.Cameras.Get(p)
		if hasCam && s.Input.MouseDeltaX != 0 {
			cam.Dir = vmath.V2FNormalize(
				vmath.V2FRotate(cam.Dir, s.Input.MouseDeltaX*s.TurnPerUnit))
			_ = w.Cameras.Add(p, cam)
		}

		forward := vmath.Vec2F{X: 1, Y: 0}
		if hasCam {
			forward = cam.Dir
		}
		// Strafe axis is forward rotated a quarter turn
		right := vmath.Vec2F{X: -forward.Y, Y: forward.X}

		var move vmath.Vec2F
		if s.Input.Up {
			move = vmath.V2FAdd(move, forward)
		}
		if s.Input.Down {
			move = vmath.V2FSub(move, forward)
		}
		if s.Input.Right {
			move = vmath.V2FAdd(move, right)
		}
		if s.Input.Left {
			move = vmath.V2FSub(move, right)
		}

		move = vmath.V2FScale(vmath.V2FNormalize(move), s.MoveSpeed)
		// Id comes from a live query this tick, so Add cannot fail
		_ = w.Velocities.Add(p, component.VelocityComponent{VX: move.X, VY: move.Y})
	}

	// Mouse deltas are per-tick quantities; consume them once applied
	s.Input.MouseDeltaX = 0
	s.Input.MouseDeltaY = 0
}
