package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

// ParticleSystem drifts particles and destroys them when their life runs out.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem { return &ParticleSystem{} }

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ParticleComponent, component.TransformComponent, func(e ecs.Entity, p *component.Particle, t *component.Transform) {
		t.X += p.Velocity.X
		t.Y += p.Velocity.Y
		p.Life--
		if p.Life <= 0 {
			w.DestroyEntity(e)
		}
	})
}
