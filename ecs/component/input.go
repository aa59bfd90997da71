package component

// Input stores the held keys the player controller reads each tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Dash  bool
}

var InputComponent = NewComponent[Input]()
