package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gridfire/component"
	"gridfire/core"
)

// Snapshot is a JSON-serializable copy of all entities and their
// components. A thin convenience for save/restore and debugging; the
// engine's hard surface has no durable persistence.
type Snapshot struct {
	NextEntityID core.Entity      `json:"next_entity_id"`
	Entities     []EntitySnapshot `json:"entities"`
}

// EntitySnapshot holds one entity's components. Absent components are
// nil and omitted from the wire form.
type EntitySnapshot struct {
	ID         core.Entity                    `json:"id"`
	Position   *component.PositionComponent   `json:"position,omitempty"`
	Velocity   *component.VelocityComponent   `json:"velocity,omitempty"`
	Renderable *component.RenderableComponent `json:"renderable,omitempty"`
	Player     *component.PlayerComponent     `json:"player,omitempty"`
	Enemy      *component.EnemyComponent      `json:"enemy,omitempty"`
	Camera     *component.CameraComponent     `json:"camera,omitempty"`
	Bullet     *component.BulletComponent     `json:"bullet,omitempty"`
}

// Snapshot captures the current world state. Entities are ordered by id
// so repeated snapshots of the same state encode identically.
func (w *World) Snapshot() *Snapshot {
	w.mu.RLock()
	ids := make([]core.Entity, 0, len(w.alive))
	for e := range w.alive {
		ids = append(ids, e)
	}
	next := w.nextEntityID
	w.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	snap := &Snapshot{
		NextEntityID: next,
		Entities:     make([]EntitySnapshot, 0, len(ids)),
	}
	for _, e := range ids {
		es := EntitySnapshot{ID: e}
		if v, ok := w.Positions.Get(e); ok {
			es.Position = &v
		}
		if v, ok := w.Velocities.Get(e); ok {
			es.Velocity = &v
		}
		if v, ok := w.Renderables.Get(e); ok {
			es.Renderable = &v
		}
		if v, ok := w.Players.Get(e); ok {
			es.Player = &v
		}
		if v, ok := w.Enemies.Get(e); ok {
			es.Enemy = &v
		}
		if v, ok := w.Cameras.Get(e); ok {
			es.Camera = &v
		}
		if v, ok := w.Bullets.Get(e); ok {
			es.Bullet = &v
		}
		snap.Entities = append(snap.Entities, es)
	}
	return snap
}

// Restore replaces the world's entities and components with the
// snapshot's. Registered systems are left untouched.
func (w *World) Restore(snap *Snapshot) error {
	for _, store := range w.allStores {
		store.Clear()
	}

	w.mu.Lock()
	w.alive = make(map[core.Entity]struct{}, len(snap.Entities))
	var maxID core.Entity
	for _, es := range snap.Entities {
		w.alive[es.ID] = struct{}{}
		if es.ID > maxID {
			maxID = es.ID
		}
	}
	// The counter must clear every restored id, even when the snapshot
	// carries a stale NextEntityID; a stale value would hand out an id
	// that is already alive and already owns components
	w.nextEntityID = snap.NextEntityID
	if w.nextEntityID <= maxID {
		w.nextEntityID = maxID + 1
	}
	if w.nextEntityID < 1 {
		w.nextEntityID = 1
	}
	w.mu.Unlock()

	for _, es := range snap.Entities {
		if es.Position != nil {
			if err := w.Positions.Add(es.ID, *es.Position); err != nil {
				return fmt.Errorf("restore entity %d: %w", es.ID, err)
			}
		}
		if es.Velocity != nil {
			if err := w.Velocities.Add(es.ID, *es.Velocity); err != nil {
				return fmt.Errorf("restore entity %d: %w", es.ID, err)
			}
		}
		if es.Renderable != nil {
			if err := w.Renderables.Add(es.ID, *es.Renderable); err != nil {
				return fmt.Errorf("restore entity %d: %w", es.ID, err)
			}
		}
		if es.Player != nil {
			if err := w.Players.Add(es.ID, *es.Player); err != nil {
				return fmt.Errorf("restore entity %d: %w", es.ID, err)
			}
		}
		if es.Enemy != nil {
			if err := w.Enemies.Add(es.ID, *es.Enemy); err != nil {
				return fmt.Errorf("restore entity %d: %w", es.ID, err)
			}
		}
		if es.Camera != nil {
			if err := w.Cameras.Add(es.ID, *es.Camera); err != nil {
				return fmt.Errorf("restore entity %d: %w", es.ID, err)
			}
		}
		if es.Bullet != nil {
			if err := w.Bullets.Add(es.ID, *es.Bullet); err != nil {
				return fmt.Errorf("restore entity %d: %w", es.ID, err)
			}
		}
	}
	return nil
}

// EncodeSnapshot writes the world as indented JSON.
func EncodeSnapshot(w *World, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(w.Snapshot())
}

// DecodeSnapshot reads a JSON snapshot and restores it into the world.
func DecodeSnapshot(w *World, in io.Reader) error {
	var snap Snapshot
	if err := json.NewDecoder(in).Decode(&snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	return w.Restore(&snap)
}
