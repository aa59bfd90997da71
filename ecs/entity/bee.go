package entity

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/prefabs"
)

// NewBee spawns a patrolling obstacle that walks from x to x+PatrolSpan and
// back, resting at each end.
func NewBee(w *ecs.World, spec prefabs.BeeSpec, x, y float64) (ecs.Entity, error) {
	e, err := newCollidable(w, spec.RestFrame, x, y, component.TagObstacle, spec.Collider.Width, spec.Collider.Height)
	if err != nil {
		return 0, err
	}

	start, end := x, x+spec.PatrolSpan
	if end < start {
		start, end = end, start
	}
	err = ecs.Add(w, e, component.PatrolComponent, component.Patrol{
		StartX:     start,
		EndX:       end,
		TargetX:    end,
		Speed:      spec.Speed,
		State:      component.PatrolMoving,
		RestFrames: spec.RestFrames,
		AnimFrames: spec.AnimFrames,
		WalkFrames: append([]string(nil), spec.WalkFrames...),
		RestFrame:  spec.RestFrame,
	})
	if err != nil {
		return 0, err
	}
	return e, nil
}
