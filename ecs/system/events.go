package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

func emitSound(w *ecs.World, cue string) {
	w.Events().Push(ecs.Event{Kind: ecs.EventSound, Data: cue})
}

// player returns the first entity carrying both the player tag and state.
func player(w *ecs.World) (ecs.Entity, *component.Player, *component.Transform, bool) {
	e, ok := w.First(component.PlayerTagComponent)
	if !ok {
		return 0, nil, nil, false
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent)
	if !ok {
		return 0, nil, nil, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return 0, nil, nil, false
	}
	return e, p, t, true
}
