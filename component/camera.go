package component

import (
	"gridfire/vmath"
)

// CameraComponent is a first-person viewpoint attached to an entity.
// Dir is the unit forward vector; FOV is the horizontal field of view
// in radians.
type CameraComponent struct {
	Dir vmath.Vec2F
	FOV float64
}
