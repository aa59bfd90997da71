package component

import "image/color"

// Fade is a full-screen tint that clears on scene entry. Alpha drops by Step
// each tick while Active.
type Fade struct {
	Alpha  int
	Step   int
	Color  color.RGBA
	Active bool
}

var FadeComponent = NewComponent[Fade]()
