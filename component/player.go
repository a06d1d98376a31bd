package component

// PlayerComponent marks an entity as player-controlled.
// Carries no data; presence alone expresses the capability.
type PlayerComponent struct{}
