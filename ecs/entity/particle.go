package entity

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/prefabs"
)

// RNG is the subset of *rand.Rand (math/rand/v2) particle bursts draw from.
type RNG interface {
	IntN(n int) int
	Float64() float64
}

// SpawnBurst scatters spec.Count particles from (x, y).
func SpawnBurst(w *ecs.World, spec prefabs.ParticleSpec, x, y float64, rng RNG) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
			return out, err
		}
		err := ecs.Add(w, e, component.ParticleComponent, component.Particle{
			Size: between(rng, spec.Size),
			Color: color.RGBA{
				R: uint8(between(rng, spec.Red)),
				G: uint8(between(rng, spec.Green)),
				B: uint8(between(rng, spec.Blue)),
				A: 255,
			},
			Velocity: cp.Vector{
				X: (rng.Float64()*2 - 1) * spec.Speed,
				Y: (rng.Float64()*2 - 1) * spec.Speed,
			},
			Life: between(rng, spec.Life),
		})
		if err != nil {
			return out, err
		}
		if err := ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: component.LayerEffects}); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, nil
}

// between draws uniformly from the inclusive range r.
func between(rng RNG, r [2]int) int {
	lo, hi := r[0], r[1]
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + rng.IntN(hi-lo+1)
}
