package component

import "strconv"

// AnimationCycle loops through images named Path+"0" .. Path+(Frames-1).
// Each frame stays up for Hold+1 ticks.
type AnimationCycle struct {
	Path   string
	Frames int
	Hold   int

	elapsed int
	frame   int
}

func NewAnimationCycle(path string, frames, hold int) *AnimationCycle {
	if frames < 1 {
		frames = 1
	}
	return &AnimationCycle{Path: path, Frames: frames, Hold: hold}
}

// Next advances the cycle by one tick and returns the image to show.
func (c *AnimationCycle) Next() string {
	c.elapsed++
	if c.elapsed > c.Hold {
		c.elapsed = 0
		c.frame = (c.frame + 1) % c.Frames
	}
	return c.Image()
}

// Image returns the current image without advancing.
func (c *AnimationCycle) Image() string {
	return c.Path + strconv.Itoa(c.frame)
}

// Frame returns the current frame index, always in [0, Frames).
func (c *AnimationCycle) Frame() int {
	return c.frame
}

// AnimState selects one cycle out of an Animation.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimJump
	AnimDash
	AnimIdleLeft
	AnimWalkLeft
	AnimJumpLeft
	AnimDashLeft
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimJump:
		return "jump"
	case AnimDash:
		return "dash"
	case AnimIdleLeft:
		return "idle_left"
	case AnimWalkLeft:
		return "walk_left"
	case AnimJumpLeft:
		return "jump_left"
	case AnimDashLeft:
		return "dash_left"
	default:
		return "unknown"
	}
}

// Mirrored returns the left-facing variant of s when left is true.
func (s AnimState) Mirrored(left bool) AnimState {
	if s >= AnimIdleLeft {
		s -= AnimIdleLeft
	}
	if left {
		return s + AnimIdleLeft
	}
	return s
}

// Animation holds the cycles an entity can show. Only the Current cycle
// advances; the others keep their counters until selected again.
type Animation struct {
	Cycles  map[AnimState]*AnimationCycle
	Current AnimState
}

// Active returns the selected cycle, or nil.
func (a *Animation) Active() *AnimationCycle {
	if a == nil || a.Cycles == nil {
		return nil
	}
	return a.Cycles[a.Current]
}

var AnimationComponent = NewComponent[Animation]()
