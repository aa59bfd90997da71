package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

// FadeSystem fades every active overlay in: alpha drops by Step each tick
// and the fade stops once it reaches 0.
type FadeSystem struct{}

func NewFadeSystem() *FadeSystem { return &FadeSystem{} }

func (s *FadeSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.FadeComponent, func(_ ecs.Entity, f *component.Fade) {
		if !f.Active {
			return
		}

		if f.Alpha <= 0 {
			f.Active = false
			return
		}
		f.Alpha = max(f.Alpha-f.Step, 0)
	})
}
