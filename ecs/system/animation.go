package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

// AnimationSystem advances the selected cycle of every animated sprite.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent, component.SpriteComponent, func(_ ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		cycle := anim.Active()
		if cycle == nil {
			return
		}
		sprite.Image = cycle.Next()
	})
}
