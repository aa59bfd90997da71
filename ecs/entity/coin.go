package entity

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/prefabs"
)

func NewCoin(w *ecs.World, spec prefabs.CoinSpec, x, y float64) (ecs.Entity, error) {
	cycle := cycleFromSpec(spec.Animation)
	e, err := newCollidable(w, cycle.Image(), x, y, component.TagCoin, spec.Collider.Width, spec.Collider.Height)
	if err != nil {
		return 0, err
	}
	err = ecs.Add(w, e, component.AnimationComponent, component.Animation{
		Cycles:  map[component.AnimState]*component.AnimationCycle{component.AnimIdle: cycle},
		Current: component.AnimIdle,
	})
	if err != nil {
		return 0, err
	}
	return e, nil
}
