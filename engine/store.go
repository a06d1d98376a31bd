package engine

import (
	"sync"

	"gridfire/core"
)

// Store is a generic container for a specific component type T.
// Uses the sparse set pattern: a map for O(1) lookup plus an entity
// slice for cache-friendly iteration.
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity

	// alive is injected by the owning World at registration so that
	// Add can reject entities outside the world's lifecycle.
	alive func(core.Entity) bool
}

// NewStore creates a new component store for type T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Add inserts or updates a component for an entity. Re-adding the same
// component type overwrites the previous value; that is not an error.
// Returns UnknownEntityError if the entity was never created or has
// been destroyed.
func (s *Store[T]) Add(e core.Entity, val T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.alive != nil && !s.alive(e) {
		return &UnknownEntityError{Entity: e}
	}

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
	return nil
}

// Get retrieves a component for an entity. Absence is a normal state,
// not an error.
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes a component from an entity. Removing an absent
// component is a no-op.
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; exists {
		delete(s.components, e)
		for i, entity := range s.entities {
			if entity == e {
				// Swap with last element and truncate
				s.entities[i] = s.entities[len(s.entities)-1]
				s.entities = s.entities[:len(s.entities)-1]
				break
			}
		}
	}
}

// Has checks if an entity has this component.
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns all entities with this component type. The order is
// insertion order with swap-remove holes; it is stable between calls
// as long as the store is not mutated.
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of entities with this component.
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = make([]core.Entity, 0, 64)
}
