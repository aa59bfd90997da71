package component

// ButtonAction is what a clickable image does.
type ButtonAction int

const (
	ButtonNone ButtonAction = iota
	ButtonPlay
	ButtonExit
)

// Button makes a sprite clickable over a Width x Height box at its Transform.
type Button struct {
	Action ButtonAction
	Width  float64
	Height float64
}

// Contains reports whether (x, y) falls on the button.
func (b Button) Contains(t Transform, x, y float64) bool {
	return NewRect(t.X, t.Y, b.Width, b.Height).Contains(x, y)
}

var ButtonComponent = NewComponent[Button]()
