package component

import "github.com/jakecoffman/cp"

// Player is the controllable character's movement and life state. The
// player is not a Collider: it is the thing colliders are tested against.
type Player struct {
	Life     int
	Velocity cp.Vector

	Width  float64
	Height float64

	Speed     float64
	JumpSpeed float64
	Gravity   float64
	MaxFall   float64

	DashSpeed   float64
	DashBoost   float64
	DashFrames  int
	DashCharges int
	DashTimer   int
	Dashing     bool

	Grounded   bool
	FacingLeft bool

	SpawnX float64
	SpawnY float64

	State AnimState
}

// Box returns the player's rectangle at t, in the same layout as Collider.Box.
func (p Player) Box(t Transform) Rect {
	return Collider{Width: p.Width, Height: p.Height}.Box(t)
}

var PlayerComponent = NewComponent[Player]()
