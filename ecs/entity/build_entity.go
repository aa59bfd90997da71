package entity

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/prefabs"
)

// newSprite creates an entity drawn at (x, y) on the given layer.
func newSprite(w *ecs.World, image string, x, y float64, layer int) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{Image: image}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: layer}); err != nil {
		return 0, err
	}
	return e, nil
}

// newCollidable creates a world sprite that also joins the collidable set.
func newCollidable(w *ecs.World, image string, x, y float64, tag component.Tag, width, height float64) (ecs.Entity, error) {
	e, err := newSprite(w, image, x, y, component.LayerWorld)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ColliderComponent, component.Collider{Tag: tag, Width: width, Height: height}); err != nil {
		return 0, err
	}
	return e, nil
}

func cycleFromSpec(spec prefabs.AnimationSpec) *component.AnimationCycle {
	return component.NewAnimationCycle(spec.Path, spec.Frames, spec.Hold)
}
