package component

// BulletComponent marks a travelling projectile entity.
// Speed is grid units per second; Life is the remaining flight time in
// seconds before the cull pass destroys the entity. Hit-scan weapons do
// not spawn bullets; this covers projectile-style weapons that ride the
// ordinary movement path.
type BulletComponent struct {
	Speed float64
	Life  float64
}
