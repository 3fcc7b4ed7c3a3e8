package ecs

import (
	"time"

	"github.com/milk9111/wanderers/ecs/component"
)

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// Clock is the time of the tick currently being processed.
type Clock struct {
	Now     time.Time
	Elapsed time.Duration
}

// World owns entities, component stores and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	clock    Clock
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: map[component.ComponentID]*SparseSet{}}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes all components of e and marks it dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities in creation order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.entities()
}

// SetClock records the time of the tick about to run.
func (w *World) SetClock(now time.Time, elapsed time.Duration) {
	if w == nil {
		return
	}
	w.clock = Clock{Now: now, Elapsed: elapsed}
}

// Clock returns the time of the current tick.
func (w *World) Clock() Clock {
	if w == nil {
		return Clock{}
	}
	return w.clock
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = map[component.ComponentID]*SparseSet{}
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
