package ecs

import "fmt"

// Entity packs a slot index in the low half and the slot's generation in the
// high half. Destroying an entity bumps the generation, so old handles to a
// reused slot stop resolving. The zero Entity never resolves.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID { return entityID(e) }

func (e Entity) generation() generation { return generation(e >> 32) }

// String prints the handle as index:generation.
func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.id(), e.generation())
}
