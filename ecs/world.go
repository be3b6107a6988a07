package ecs

import "github.com/milk9111/swordduel/ecs/component"

// World owns entities, component storage, the queues systems use to talk to
// each other and the timers that drive off-tick tasks.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet

	contacts EventQueue[component.Contact]
	commands EventQueue[component.Command]
	timers   Timers

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its id.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
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

// Query returns the live entities that have every listed component.
func (w *World) Query(kinds ...KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.stores[k.ID()]
		if s == nil || s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	smallest := 0
	for i, s := range sets {
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	out := make([]Entity, 0, sets[smallest].Len())
	for _, e := range sets[smallest].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for i, s := range sets {
			if i != smallest && !s.Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity holding the component.
func (w *World) First(kind KindID) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Contacts returns the queue of contact-begin events from the last step.
func (w *World) Contacts() *EventQueue[component.Contact] {
	if w == nil {
		return nil
	}
	return &w.contacts
}

// Commands returns the queue of deferred body writes.
func (w *World) Commands() *EventQueue[component.Command] {
	if w == nil {
		return nil
	}
	return &w.commands
}

// Timers returns the world's cooperative scheduler.
func (w *World) Timers() *Timers {
	if w == nil {
		return nil
	}
	return &w.timers
}

// SetPhysicsWorld attaches a physics world and routes its contacts into
// this world's contact queue.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
	if pw != nil {
		pw.contacts = &w.contacts
	}
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
