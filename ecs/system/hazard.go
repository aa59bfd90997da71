package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

// HazardSystem walks patrolling hazards between their bounds.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PatrolComponent, component.TransformComponent, func(e ecs.Entity, p *component.Patrol, t *component.Transform) {
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)

		switch p.State {
		case component.PatrolMoving:
			stepPatrol(p, t)
			if p.State == component.PatrolResting {
				setImage(sprite, p.RestFrame)
				return
			}
			p.AnimTimer++
			if p.AnimTimer >= p.AnimFrames && len(p.WalkFrames) > 0 {
				p.AnimTimer = 0
				p.FrameIndex = (p.FrameIndex + 1) % len(p.WalkFrames)
				setImage(sprite, p.WalkFrames[p.FrameIndex])
			}
		case component.PatrolResting:
			p.RestTimer++
			if p.RestTimer < p.RestFrames {
				return
			}
			p.State = component.PatrolMoving
			if p.TargetX == p.EndX {
				p.TargetX = p.StartX
			} else {
				p.TargetX = p.EndX
			}
			if len(p.WalkFrames) > 0 {
				setImage(sprite, p.WalkFrames[p.FrameIndex%len(p.WalkFrames)])
			}
		}
	})
}

// stepPatrol moves toward the target and switches to resting once it is
// reached, landing exactly on it.
func stepPatrol(p *component.Patrol, t *component.Transform) {
	switch {
	case t.X < p.TargetX:
		t.X += p.Speed
		if t.X >= p.TargetX {
			arrive(p, t)
		}
	case t.X > p.TargetX:
		t.X -= p.Speed
		if t.X <= p.TargetX {
			arrive(p, t)
		}
	default:
		arrive(p, t)
	}
}

func arrive(p *component.Patrol, t *component.Transform) {
	t.X = p.TargetX
	p.State = component.PatrolResting
	p.RestTimer = 0
}

func setImage(s *component.Sprite, image string) {
	if s == nil || image == "" {
		return
	}
	s.Image = image
}
