package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ID keys a component store in the world. Zero is never handed out.
type ID uint32

var lastID atomic.Uint32

// Kind is the typed key for one component store. The name only shows up in
// errors and debug output.
type Kind[T any] struct {
	id   ID
	name string
}

func (k Kind[T]) ID() ID { return k.id }

func (k Kind[T]) Valid() bool { return k.id != 0 }

func (k Kind[T]) String() string {
	if k.name == "" {
		return "component"
	}
	return k.name
}

// Handle is what component files export; systems pass Handle.Kind() to the
// ecs helpers.
type Handle[T any] struct {
	kind Kind[T]
}

// NewComponent registers a new store key labelled name.
func NewComponent[T any](name string) Handle[T] {
	return Handle[T]{kind: Kind[T]{id: ID(lastID.Add(1)), name: name}}
}

func (h Handle[T]) Kind() Kind[T] { return h.kind }
