package entity

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

// NewImage places a plain picture on the screen.
func NewImage(w *ecs.World, image string, x, y float64) (ecs.Entity, error) {
	return newSprite(w, image, x, y, component.LayerWorld)
}

// NewScrollingImage places a background strip that drifts down and wraps.
func NewScrollingImage(w *ecs.World, image string, y float64, scroll component.Scroll) (ecs.Entity, error) {
	e, err := newSprite(w, image, 0, y, component.LayerBackground)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ScrollComponent, scroll); err != nil {
		return 0, err
	}
	return e, nil
}

// NewButton places a clickable picture.
func NewButton(w *ecs.World, image string, x, y float64, action component.ButtonAction, width, height float64) (ecs.Entity, error) {
	e, err := newSprite(w, image, x, y, component.LayerWorld)
	if err != nil {
		return 0, err
	}
	err = ecs.Add(w, e, component.ButtonComponent, component.Button{Action: action, Width: width, Height: height})
	if err != nil {
		return 0, err
	}
	return e, nil
}

// ButtonAt returns the action of the first button under (x, y).
func ButtonAt(w *ecs.World, x, y float64) component.ButtonAction {
	action := component.ButtonNone
	ecs.ForEach2(w, component.ButtonComponent, component.TransformComponent, func(_ ecs.Entity, b *component.Button, t *component.Transform) {
		if action == component.ButtonNone && b.Contains(*t, x, y) {
			action = b.Action
		}
	})
	return action
}
