package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

const (
	soundJump  = "jump"
	soundDash  = "dash"
	soundCoin  = "coin"
	soundDeath = "death"
)

// PlayerControllerSystem turns held keys into intent. Nothing is read while a
// dash is running.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent, component.InputComponent, func(_ ecs.Entity, pl *component.Player, in *component.Input) {
		if pl.Dashing {
			return
		}

		// left is checked first and wins when both are held
		switch {
		case in.Left:
			pl.Velocity.X = -1
			pl.FacingLeft = true
		case in.Right:
			pl.Velocity.X = 1
			pl.FacingLeft = false
		default:
			pl.Velocity.X = 0
		}

		if in.Jump && pl.Grounded {
			pl.Grounded = false
			pl.Velocity.Y = pl.JumpSpeed
			emitSound(w, soundJump)
		}

		if in.Dash && !pl.Grounded && pl.DashCharges > 0 {
			pl.Dashing = true
			pl.DashTimer = 0
			pl.DashCharges--
			if pl.FacingLeft {
				pl.Velocity.X = -pl.DashSpeed
			} else {
				pl.Velocity.X = pl.DashSpeed
			}
			pl.Velocity.Y = 0
			emitSound(w, soundDash)
		}
	})
}
