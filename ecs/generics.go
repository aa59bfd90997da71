package ecs

import "github.com/milk9111/mistwood/ecs/component"

// Add attaches (or replaces) a component value on e. The world keeps its own
// copy; use Get to obtain a pointer for in-place updates.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	if w == nil {
		return component.ErrNilWorld
	}
	if !handle.Valid() {
		return component.ErrInvalidComponentKind
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	v := value
	w.store(handle.ID()).Set(e.id(), &v)
	return nil
}

// Remove detaches a component. It reports whether anything was removed.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.lookup(handle.ID()).Remove(e.id())
}

// Has reports whether e carries the component.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.lookup(handle.ID()).Has(e.id())
}

// Get returns a pointer to the stored component value.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	value, ok := w.lookup(handle.ID()).Get(e.id()).(*T)
	if !ok {
		return nil, false
	}
	return value, true
}

// ForEach visits every entity carrying the component. The visit order is
// ascending entity id and the callback may destroy entities.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	for _, e := range w.Query(handle) {
		if v, ok := Get(w, e, handle); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits every entity carrying both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ha, hb) {
		a, ok := Get(w, e, ha)
		if !ok {
			continue
		}
		b, ok := Get(w, e, hb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}
