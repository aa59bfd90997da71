package component

// PatrolState is the state of a patrolling hazard.
type PatrolState int

const (
	PatrolMoving PatrolState = iota
	PatrolResting
)

func (s PatrolState) String() string {
	if s == PatrolResting {
		return "resting"
	}
	return "moving"
}

// Patrol walks an entity back and forth between StartX and EndX, pausing
// RestFrames ticks at each end.
type Patrol struct {
	StartX  float64
	EndX    float64
	TargetX float64
	Speed   float64

	State      PatrolState
	RestTimer  int
	RestFrames int

	AnimTimer  int
	AnimFrames int
	FrameIndex int
	WalkFrames []string
	RestFrame  string
}

var PatrolComponent = NewComponent[Patrol]()
