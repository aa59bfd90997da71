package main

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/mistwood/assets"
	"github.com/milk9111/mistwood/platform"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	defaultFontSize = 24
	strokeWidth     = 2
)

// Renderer draws onto the ebiten screen for the current frame.
type Renderer struct {
	lib    *assets.Library
	screen *ebiten.Image

	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func NewRenderer(lib *assets.Library) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Renderer{
		lib:    lib,
		source: src,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Begin targets screen for the following draw calls.
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) DrawImage(key string, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	r.screen.DrawImage(r.lib.Image(key), op)
}

func (r *Renderer) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (r *Renderer) StrokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(r.screen, float32(x), float32(y), float32(w), float32(h), strokeWidth, clr, false)
}

func (r *Renderer) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(r.screen, float32(cx), float32(cy), float32(radius), clr, true)
}

func (r *Renderer) DrawText(s string, x, y float64, opts platform.TextOptions) {
	size := opts.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	lineHeight := opts.LineHeight
	if lineHeight <= 0 {
		lineHeight = 1
	}
	var clr color.Color = color.White
	if opts.Color != nil {
		clr = opts.Color
	}

	face := r.face(size)
	advance := func(line string) float64 { return text.Advance(line, face) }

	var lines []string
	if opts.Width > 0 {
		lines = platform.WrapText(s, opts.Width, advance)
	} else {
		lines = strings.Split(s, "\n")
	}

	blockW := opts.Width
	if blockW <= 0 {
		for _, l := range lines {
			blockW = max(blockW, advance(l))
		}
	}
	left := x
	if opts.CenterX {
		left = x - blockW/2
	}

	for i, line := range lines {
		lx := left
		switch opts.Align {
		case platform.AlignCenter:
			lx += (blockW - advance(line)) / 2
		case platform.AlignRight:
			lx += blockW - advance(line)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(lx, y+float64(i)*size*lineHeight)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(r.screen, line, face, op)
	}
}

func (r *Renderer) face(size float64) *text.GoTextFace {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: r.source, Size: size}
	r.faces[size] = f
	return f
}
