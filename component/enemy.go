package component

// EnemyComponent marks an entity as a hostile AI target.
// PatrolMin and PatrolMax bound the horizontal patrol sweep in world X.
// Dir is the current patrol heading, +1 or -1; it flips at the bounds.
type EnemyComponent struct {
	PatrolMin float64
	PatrolMax float64
	Dir       float64
}
