package engine

import (
	"sync"

	"gridfire/component"
	"gridfire/core"
)

// World contains all entities and their components using typed stores.
// It is an explicit, owned value: multiple worlds coexist freely and
// there is no package-level instance.
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	// Component stores (public for direct system access)
	Positions   *Store[component.PositionComponent]
	Velocities  *Store[component.VelocityComponent]
	Renderables *Store[component.RenderableComponent]
	Players     *Store[component.PlayerComponent]
	Enemies     *Store[component.EnemyComponent]
	Cameras     *Store[component.CameraComponent]
	Bullets     *Store[component.BulletComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all component stores initialized.
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Positions:    NewStore[component.PositionComponent](),
		Velocities:   NewStore[component.VelocityComponent](),
		Renderables:  NewStore[component.RenderableComponent](),
		Players:      NewStore[component.PlayerComponent](),
		Enemies:      NewStore[component.EnemyComponent](),
		Cameras:      NewStore[component.CameraComponent](),
		Bullets:      NewStore[component.BulletComponent](),
	}

	w.allStores = []AnyStore{
		w.Positions,
		w.Velocities,
		w.Renderables,
		w.Players,
		w.Enemies,
		w.Cameras,
		w.Bullets,
	}

	// Wire the liveness guard into every store so Add rejects ids
	// outside the world's lifecycle
	w.Positions.alive = w.Alive
	w.Velocities.alive = w.Alive
	w.Renderables.alive = w.Alive
	w.Players.alive = w.Alive
	w.Enemies.alive = w.Alive
	w.Cameras.alive = w.Alive
	w.Bullets.alive = w.Alive

	return w
}

// CreateEntity reserves a new entity ID. The entity starts with no
// components. IDs are not reused within a process run.
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Alive reports whether an entity has been created and not destroyed.
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes an entity from every store and the liveness
// set. Idempotent: destroying an unknown or already-destroyed entity
// is a no-op. After it returns the id is absent from every store and
// never appears in query results again.
func (w *World) DestroyEntity(e core.Entity) {
	w.mu.Lock()
	delete(w.alive, e)
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// Clear removes all entities, components and registered systems.
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	w.systems = nil
	w.mu.Unlock()

	for _, store := range w.allStores {
		store.Clear()
	}
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.alive)
}
