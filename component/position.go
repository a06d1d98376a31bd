package component

// PositionComponent is a world-space position in grid units.
// One grid cell spans one unit on each axis.
type PositionComponent struct {
	X, Y float64
}
