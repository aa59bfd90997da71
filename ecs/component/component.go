package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrNilWorld             = errors.New("ecs: world is nil")
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var nextComponentID atomic.Uint32

// Key is anything that names a component storage. Every ComponentHandle is a Key.
type Key interface {
	ID() ComponentID
}

// ComponentHandle is the typed name of a component storage.
type ComponentHandle[T any] struct {
	id ComponentID
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (h ComponentHandle[T]) ID() ComponentID {
	return h.id
}

func (h ComponentHandle[T]) Valid() bool {
	return h.id != 0
}
