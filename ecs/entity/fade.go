package entity

import (
	"image/color"

	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/prefabs"
)

// NewFade creates the scene's overlay, already fading in from spec.Alpha.
func NewFade(w *ecs.World, spec prefabs.FadeSpec) (ecs.Entity, error) {
	e := w.CreateEntity()
	err := ecs.Add(w, e, component.FadeComponent, component.Fade{
		Alpha:  spec.Alpha,
		Step:   spec.Step,
		Color:  color.RGBA{R: spec.Color[0], G: spec.Color[1], B: spec.Color[2], A: 255},
		Active: true,
	})
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: component.LayerOverlay}); err != nil {
		return 0, err
	}
	return e, nil
}
