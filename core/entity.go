package core

// Entity is a unique identifier for an entity.
// Zero is never allocated and doubles as "no entity".
type Entity uint64

// NoEntity is the zero Entity, used where an entity reference is optional.
const NoEntity Entity = 0
