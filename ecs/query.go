package ecs

import (
	"slices"

	"github.com/milk9111/mistwood/ecs/component"
)

// Query returns the live entities that carry every given component, sorted by
// entity id. The slice is freshly allocated, so callers can create or destroy
// entities while ranging over it.
func (w *World) Query(keys ...component.Key) []Entity {
	if w == nil || len(keys) == 0 {
		return nil
	}

	sets := make([]*SparseSet, 0, len(keys))
	for _, k := range keys {
		set := w.lookup(k.ID())
		if set.Len() == 0 {
			return nil
		}
		sets = append(sets, set)
	}

	// iterate smallest set
	smallest := 0
	for i, set := range sets {
		if set.Len() < sets[smallest].Len() {
			smallest = i
		}
	}

	ids := make([]entityID, 0, sets[smallest].Len())
	for _, id := range sets[smallest].denseIDs {
		match := true
		for i, set := range sets {
			if i != smallest && !set.Has(id) {
				match = false
				break
			}
		}
		if match {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.entities.handle(id))
	}
	return out
}

// First returns the lowest-id entity carrying the component.
func (w *World) First(key component.Key) (Entity, bool) {
	ents := w.Query(key)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
