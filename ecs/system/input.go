package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/platform"
)

// InputSystem copies the snapshot polled at the top of the tick into every
// Input component.
type InputSystem struct {
	snapshot platform.Input
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Set stores the snapshot the next Update applies.
func (i *InputSystem) Set(in platform.Input) {
	i.snapshot = in
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		input.Left = i.snapshot.Left
		input.Right = i.snapshot.Right
		input.Jump = i.snapshot.Jump
		input.Dash = i.snapshot.Dash
	})
}
