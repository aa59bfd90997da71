package system

import (
	"image/color"
	"sort"

	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/platform"
	"golang.org/x/image/colornames"
)

// RenderSystem draws a world through a platform.Renderer. Entities are drawn
// by RenderLayer, then by entity id.
type RenderSystem struct {
	// Debug outlines every collider and the player box.
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, dst platform.Renderer) {
	if r == nil || w == nil || dst == nil {
		return
	}

	entities := w.Query(component.TransformComponent, component.RenderLayerComponent)
	sort.SliceStable(entities, func(i, j int) bool {
		li, _ := ecs.Get(w, entities[i], component.RenderLayerComponent)
		lj, _ := ecs.Get(w, entities[j], component.RenderLayerComponent)
		if li.Index != lj.Index {
			return li.Index < lj.Index
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)

		if s, ok := ecs.Get(w, e, component.SpriteComponent); ok {
			if s.Base != "" {
				dst.DrawImage(s.Base, t.X+s.BaseOffsetX, t.Y+s.BaseOffsetY)
			}
			if s.Image != "" {
				dst.DrawImage(s.Image, t.X+s.OffsetX, t.Y+s.OffsetY)
			}
		}

		if p, ok := ecs.Get(w, e, component.ParticleComponent); ok {
			dst.FillCircle(t.X, t.Y, float64(p.Size), p.Color)
		}
	}

	if r.Debug {
		r.drawColliders(w, dst)
	}
}

func (r *RenderSystem) drawColliders(w *ecs.World, dst platform.Renderer) {
	ecs.ForEach2(w, component.ColliderComponent, component.TransformComponent, func(_ ecs.Entity, c *component.Collider, t *component.Transform) {
		r := c.Box(*t)
		dst.StrokeRect(r.Left, r.Top, r.Width(), r.Height(), debugColor(c.Tag))
	})
	ecs.ForEach2(w, component.PlayerComponent, component.TransformComponent, func(_ ecs.Entity, p *component.Player, t *component.Transform) {
		r := p.Box(*t)
		dst.StrokeRect(r.Left, r.Top, r.Width(), r.Height(), colornames.Cyan)
	})
}

func debugColor(tag component.Tag) color.Color {
	switch tag {
	case component.TagPlatform:
		return colornames.Lime
	case component.TagObstacle:
		return colornames.Red
	case component.TagCoin:
		return colornames.Gold
	default:
		return colornames.Magenta
	}
}

// DrawOverlay paints active fades over the whole viewport. A fade at alpha 0
// draws nothing.
func (r *RenderSystem) DrawOverlay(w *ecs.World, dst platform.Renderer) {
	if r == nil || w == nil || dst == nil {
		return
	}

	ecs.ForEach(w, component.FadeComponent, func(_ ecs.Entity, f *component.Fade) {
		if f.Alpha <= 0 {
			return
		}
		clr := color.NRGBA{R: f.Color.R, G: f.Color.G, B: f.Color.B, A: uint8(min(f.Alpha, 255))}
		dst.FillRect(0, 0, platform.ScreenWidth, platform.ScreenHeight, clr)
	})
}
