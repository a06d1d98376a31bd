package system

// Pipeline priorities. The Movement → AI → Shooting order is a
// contract, not a convenience: AI must see this tick's positions to
// avoid a one-frame aggro lag, and Shooting must see this tick's
// motion from both before resolving a shot.
const (
	PriorityControl  = 10
	PriorityMovement = 20
	PriorityAI       = 30
	PriorityShooting = 40
	PriorityCull     = 50
)
