package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

// PlayerStateSystem picks the animation for what physics just did and runs
// the dash timer down.
type PlayerStateSystem struct{}

func NewPlayerStateSystem() *PlayerStateSystem {
	return &PlayerStateSystem{}
}

func (s *PlayerStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.PlayerComponent, func(e ecs.Entity, p *component.Player) {
		p.State = animStateFor(p)
		if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok {
			if _, has := anim.Cycles[p.State]; has {
				anim.Current = p.State
			}
		}

		if p.Dashing {
			p.DashTimer++
			if p.DashTimer >= p.DashFrames {
				p.Dashing = false
				p.DashTimer = 0
				p.Velocity.X = 0
			}
		}
	})
}

func animStateFor(p *component.Player) component.AnimState {
	var state component.AnimState
	switch {
	case p.Dashing && !p.Grounded:
		state = component.AnimDash
	case p.Grounded && p.Velocity.X != 0:
		state = component.AnimWalk
	case p.Grounded:
		state = component.AnimIdle
	default:
		state = component.AnimJump
	}
	return state.Mirrored(p.FacingLeft)
}
