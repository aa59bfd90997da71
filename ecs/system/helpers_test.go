package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/ecs/entity"
	"github.com/milk9111/mistwood/platform"
	"github.com/milk9111/mistwood/prefabs"
)

func testSpecs(t *testing.T) prefabs.Specs {
	t.Helper()
	specs, err := prefabs.Embedded().LoadAll()
	if err != nil {
		t.Fatalf("load specs: %v", err)
	}
	return specs
}

func newTestPlayer(t *testing.T, w *ecs.World, x, y float64) (ecs.Entity, *component.Player, *component.Transform) {
	t.Helper()
	e, err := entity.NewPlayerAt(w, testSpecs(t).Player, x, y)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent)
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	return e, p, tr
}

func addCollider(t *testing.T, w *ecs.World, tag component.Tag, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent, component.Collider{Tag: tag, Width: width, Height: height}); err != nil {
		t.Fatalf("add collider: %v", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{Image: string(tag)}); err != nil {
		t.Fatalf("add sprite: %v", err)
	}
	return e
}

func sounds(evts []ecs.Event) []string {
	var out []string
	for _, evt := range evts {
		if evt.Kind == ecs.EventSound {
			out = append(out, evt.Data.(string))
		}
	}
	return out
}

func hasEvent(evts []ecs.Event, kind ecs.EventKind) (ecs.Event, bool) {
	for _, evt := range evts {
		if evt.Kind == kind {
			return evt, true
		}
	}
	return ecs.Event{}, false
}

type drawCall struct {
	op   string
	key  string
	x, y float64
	clr  color.Color
}

// recordingRenderer keeps every call in order.
type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawImage(key string, x, y float64) {
	r.calls = append(r.calls, drawCall{op: "image", key: key, x: x, y: y})
}

func (r *recordingRenderer) FillRect(x, y, _, _ float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "rect", x: x, y: y, clr: clr})
}

func (r *recordingRenderer) StrokeRect(x, y, _, _ float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "stroke", x: x, y: y, clr: clr})
}

func (r *recordingRenderer) FillCircle(cx, cy, _ float64, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "circle", x: cx, y: cy, clr: clr})
}

func (r *recordingRenderer) DrawText(s string, x, y float64, _ platform.TextOptions) {
	r.calls = append(r.calls, drawCall{op: "text", key: s, x: x, y: y})
}
