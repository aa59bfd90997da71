package component

// Collider puts an entity in the stage's collidable set. The box starts at
// the entity's Transform and extends Width to the right and Height down.
type Collider struct {
	Tag    Tag
	Width  float64
	Height float64
}

// Box returns the collider rectangle in screen space.
func (c Collider) Box(t Transform) Rect {
	return NewRect(t.X, t.Y, c.Width, c.Height)
}

var ColliderComponent = NewComponent[Collider]()
