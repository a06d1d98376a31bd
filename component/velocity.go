package component

// VelocityComponent is a linear velocity in grid units per second.
// Integrated by the movement system each tick.
type VelocityComponent struct {
	VX, VY float64
}
