package raycast

import (
	"gridfire/core"
	"gridfire/vmath"
)

// Axis identifies which grid axis a DDA step crossed.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Ray is a transient cast request. Dir need not be pre-normalized; the
// caster normalizes it. A non-positive MaxDistance means unbounded.
// Rays are never persisted.
type Ray struct {
	Origin      vmath.Vec2F
	Dir         vmath.Vec2F
	MaxDistance float64
}

// Hit describes a terminated ray. Entity is NoEntity for geometry hits.
// Boundary marks a ray that left the grid, which counts as hitting the
// boundary wall and is a normal terminal condition, not an error.
// PerpDist is the perpendicular wall distance used for projection; it
// is clamped to a small epsilon so callers never see zero, negative or
// non-finite values.
type Hit struct {
	Entity   core.Entity
	Point    vmath.Vec2F
	PerpDist float64
	Axis     Axis
	Boundary bool
}
