package component

// Scroll moves an entity down by Speed each tick and jumps it back to
// Reset once it reaches Limit.
type Scroll struct {
	Speed float64
	Limit float64
	Reset float64
}

var ScrollComponent = NewComponent[Scroll]()
