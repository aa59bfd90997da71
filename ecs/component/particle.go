package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// Particle is a short-lived dot drawn as a filled circle at its Transform.
type Particle struct {
	Size     int
	Color    color.RGBA
	Velocity cp.Vector
	Life     int
}

var ParticleComponent = NewComponent[Particle]()
