package ecs

import "fmt"

// Entity packs a slot id in the low 32 bits and the slot's generation in the
// high 32 bits. Destroying an entity bumps the generation, so stale handles
// held by components (segment owners, joint ends) stop resolving.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID { return entityID(uint32(e)) }

func (e Entity) generation() generation { return generation(uint64(e) >> entityIDBits) }

// Valid reports whether e could name an entity. It does not check liveness.
func (e Entity) Valid() bool { return e.id() != 0 }

// Index returns the slot id without its generation. Two handles with the same
// index were never alive at the same time.
func (e Entity) Index() uint32 { return uint32(e.id()) }

func (e Entity) String() string {
	if g := e.generation(); g != 0 {
		return fmt.Sprintf("%d.%d", e.id(), g)
	}
	return fmt.Sprintf("%d", e.id())
}
