// Package platform declares the collaborators the simulation talks to:
// something that draws, something that plays sounds and the per-tick input
// snapshot. Implementations live outside the simulation packages.
package platform

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TileSize     = 64
)

// Align is the horizontal alignment of wrapped text lines.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextOptions mirrors the options the renderer understands for DrawText.
// Zero values mean "renderer default" (white, 24pt, no wrapping, line height 1).
type TextOptions struct {
	Color      color.Color
	FontSize   float64
	CenterX    bool // x is the centre of the text block instead of its left edge
	Width      float64
	Align      Align
	LineHeight float64
}

// Renderer paints named images, primitives and text. It never reads pixels back.
type Renderer interface {
	DrawImage(key string, x, y float64)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	DrawText(s string, x, y float64, opts TextOptions)
}

// Audio plays named cues. Unknown cues are ignored.
type Audio interface {
	PlaySound(name string)
	PlayMusic(name string)
}

// NopAudio discards every cue.
type NopAudio struct{}

func (NopAudio) PlaySound(string) {}
func (NopAudio) PlayMusic(string) {}

// Measurer reports the natural size of a named image. ok is false when the
// image is unknown.
type Measurer interface {
	ImageSize(key string) (w, h float64, ok bool)
}
