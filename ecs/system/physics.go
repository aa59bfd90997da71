package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

// PhysicsSystem moves the player and resolves it against platforms: the
// horizontal step and its collision run first, then gravity and the
// vertical collision.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var platforms []component.Rect
	ecs.ForEach2(w, component.ColliderComponent, component.TransformComponent, func(_ ecs.Entity, c *component.Collider, t *component.Transform) {
		if c.Tag == component.TagPlatform {
			platforms = append(platforms, c.Box(*t))
		}
	})

	ecs.ForEach2(w, component.PlayerComponent, component.TransformComponent, func(_ ecs.Entity, p *component.Player, t *component.Transform) {
		s.move(p, t)
		resolveX(p, t, platforms)
		if !p.Dashing {
			p.Grounded = false
			if p.Velocity.Y < p.MaxFall {
				p.Velocity.Y += p.Gravity
			}
			t.Y += p.Velocity.Y
		}
		resolveY(p, t, platforms)
	})
}

func (s *PhysicsSystem) move(p *component.Player, t *component.Transform) {
	if !p.Dashing {
		t.X += p.Velocity.X * p.Speed
		return
	}

	step := p.DashSpeed * p.DashBoost
	if p.FacingLeft {
		t.X -= step
	} else {
		t.X += step
	}
}

func resolveX(p *component.Player, t *component.Transform, platforms []component.Rect) {
	for _, r := range platforms {
		if !p.Box(*t).Overlaps(r) {
			continue
		}
		if p.Velocity.X > 0 {
			t.X = r.Left - p.Width
		}
		if p.Velocity.X < 0 {
			t.X = r.Right
		}
	}
}

// resolveY snaps the player onto the platform it fell into. Rising into a
// platform only moves the player below it; vertical velocity is kept.
func resolveY(p *component.Player, t *component.Transform, platforms []component.Rect) {
	for _, r := range platforms {
		if !p.Box(*t).Overlaps(r) {
			continue
		}
		if p.Velocity.Y > 0 {
			p.Velocity.Y = 0
			p.Grounded = true
			t.Y = r.Top - p.Height
		}
		if p.Velocity.Y < 0 {
			t.Y = r.Bottom
		}
	}
}
