package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem { return &ScrollSystem{} }

func (s *ScrollSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.ScrollComponent, component.TransformComponent, func(_ ecs.Entity, sc *component.Scroll, t *component.Transform) {
		t.Y += sc.Speed
		if t.Y >= sc.Limit {
			t.Y = sc.Reset
		}
	})
}
