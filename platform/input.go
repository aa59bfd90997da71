package platform

// Key is a logical key the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyJump
	KeyDash
	KeyConfirm
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	case KeyDash:
		return "dash"
	case KeyConfirm:
		return "confirm"
	case KeyEscape:
		return "escape"
	default:
		return "none"
	}
}

// Point is a position in logical screen coordinates.
type Point struct {
	X float64
	Y float64
}

// Input is sampled once at the top of each tick. The held flags describe the
// keyboard at that instant; KeysDown and Clicks hold the discrete events that
// arrived since the previous tick.
type Input struct {
	Left    bool
	Right   bool
	Jump    bool
	Dash    bool
	Confirm bool
	Escape  bool

	KeysDown []Key
	Clicks   []Point
}

// Pressed reports whether k went down since the previous tick.
func (in Input) Pressed(k Key) bool {
	for _, down := range in.KeysDown {
		if down == k {
			return true
		}
	}
	return false
}
