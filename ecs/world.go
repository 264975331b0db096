package ecs

import (
	"fmt"

	"github.com/milk9111/boneyard/ecs/component"
)

// TickMillis is the length of one fixed simulation tick.
const TickMillis = 1000.0 / 60.0

// World owns entities, components, events and the simulation clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	frames   uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities lists live entities in creation-slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

// Update runs the scheduler once, advances the clock and clears events.
func (w *World) Update(s *Scheduler) {
	if w == nil {
		return
	}
	if s != nil {
		s.Update(w)
	}
	w.frames++
	w.events.flush()
}

// Now is the simulation time in milliseconds.
func (w *World) Now() float64 {
	if w == nil {
		return 0
	}
	return float64(w.frames) * TickMillis
}

// Frames is the number of completed ticks.
func (w *World) Frames() uint64 {
	if w == nil {
		return 0
	}
	return w.frames
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns entities that have every given component, ordered by the
// first kind's storage.
func (w *World) Query(kinds ...interface{ ID() component.ComponentID }) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	base := w.stores[kinds[0].ID()]
	if base.Len() == 0 {
		return nil
	}
	out := make([]Entity, 0, base.Len())
outer:
	for _, e := range base.Entities() {
		for _, k := range kinds[1:] {
			if !w.stores[k.ID()].Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

func (w *World) store(id component.ComponentID) *SparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) set(e Entity, id component.ComponentID, v any) error {
	if w == nil {
		return fmt.Errorf("ecs: nil world")
	}
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(id).Set(e, v)
	return nil
}
