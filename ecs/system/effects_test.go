package system

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/ecs/entity"
)

func TestFadeSystem(t *testing.T) {
	w := ecs.NewWorld()
	e, err := entity.NewFade(w, testSpecs(t).Fade)
	if err != nil {
		t.Fatalf("fade: %v", err)
	}
	f, _ := ecs.Get(w, e, component.FadeComponent)

	sys := NewFadeSystem()
	prev := f.Alpha
	ticks := 0
	for f.Alpha > 0 {
		sys.Update(w)
		ticks++
		if f.Alpha >= prev {
			t.Fatalf("tick %d: alpha %d did not decrease from %d", ticks, f.Alpha, prev)
		}
		if f.Alpha > 0 && prev-f.Alpha != f.Step {
			t.Fatalf("tick %d: expected step %d, got %d", ticks, f.Step, prev-f.Alpha)
		}
		prev = f.Alpha
	}
	if ticks != 26 {
		t.Fatalf("expected 26 ticks from 255 to 0, got %d", ticks)
	}

	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	if f.Alpha != 0 || f.Active {
		t.Fatalf("expected idle fade at 0, got alpha=%d active=%v", f.Alpha, f.Active)
	}
}

func TestFadeClampsAndIgnoresInactive(t *testing.T) {
	w := ecs.NewWorld()
	partial := w.CreateEntity()
	_ = ecs.Add(w, partial, component.FadeComponent, component.Fade{Alpha: 15, Step: 10, Active: true})
	idle := w.CreateEntity()
	_ = ecs.Add(w, idle, component.FadeComponent, component.Fade{Alpha: 120, Step: 10})

	sys := NewFadeSystem()
	sys.Update(w)
	sys.Update(w)
	f, _ := ecs.Get(w, partial, component.FadeComponent)
	if f.Alpha != 0 {
		t.Fatalf("expected clamp at 0, got %d", f.Alpha)
	}
	g, _ := ecs.Get(w, idle, component.FadeComponent)
	if g.Alpha != 120 {
		t.Fatalf("inactive fade should not move, got %d", g.Alpha)
	}
}

func TestParticleSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent, component.Transform{X: 10, Y: 10})
	_ = ecs.Add(w, e, component.ParticleComponent, component.Particle{Size: 3, Life: 2, Velocity: cp.Vector{X: 1.5, Y: -1}})

	sys := NewParticleSystem()
	sys.Update(w)
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	if tr.X != 11.5 || tr.Y != 9 {
		t.Fatalf("expected (11.5,9), got (%v,%v)", tr.X, tr.Y)
	}
	sys.Update(w)
	if w.IsAlive(e) {
		t.Fatalf("expired particle should be destroyed")
	}
}

func TestScrollSystem(t *testing.T) {
	w := ecs.NewWorld()
	e, err := entity.NewScrollingImage(w, "menu/bg", 1078, component.Scroll{Speed: 1, Limit: 1080, Reset: 360})
	if err != nil {
		t.Fatalf("scroll: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent)

	sys := NewScrollSystem()
	sys.Update(w)
	if tr.Y != 1079 {
		t.Fatalf("expected 1079, got %v", tr.Y)
	}
	sys.Update(w)
	if tr.Y != 360 {
		t.Fatalf("expected reset to 360, got %v", tr.Y)
	}
}

func TestAnimationSystemHoldsFrames(t *testing.T) {
	w := ecs.NewWorld()
	coin, err := entity.NewCoin(w, testSpecs(t).Coin, 0, 0)
	if err != nil {
		t.Fatalf("coin: %v", err)
	}
	sprite, _ := ecs.Get(w, coin, component.SpriteComponent)

	sys := NewAnimationSystem()
	var seen []string
	for i := 0; i < 36; i++ {
		sys.Update(w)
		seen = append(seen, sprite.Image)
	}
	// hold 5 shows each frame for six ticks
	if seen[4] != "coin/0" || seen[5] != "coin/1" || seen[11] != "coin/2" || seen[29] != "coin/0" {
		t.Fatalf("unexpected frame sequence %v", seen)
	}
}

func TestRenderOrder(t *testing.T) {
	w := ecs.NewWorld()
	_, _, _ = newTestPlayer(t, w, 100, 100)
	if _, err := entity.NewImage(w, "tiles/4", 0, 0); err != nil {
		t.Fatalf("image: %v", err)
	}
	if _, err := entity.SpawnBackground(w, []string{"S"}, 64, 64, 64); err != nil {
		t.Fatalf("background: %v", err)
	}
	p := w.CreateEntity()
	_ = ecs.Add(w, p, component.TransformComponent, component.Transform{X: 5, Y: 6})
	_ = ecs.Add(w, p, component.ParticleComponent, component.Particle{Size: 4, Color: color.RGBA{R: 255, A: 255}, Life: 10})
	_ = ecs.Add(w, p, component.RenderLayerComponent, component.RenderLayer{Index: component.LayerEffects})

	dst := &recordingRenderer{}
	NewRenderSystem().Draw(w, dst)

	want := []drawCall{
		{op: "image", key: "tiles/background_solid_sky", x: 0, y: 0},
		{op: "image", key: "player/base/base", x: 100, y: 100},
		{op: "image", key: "player/idle/0", x: 90, y: 100},
		{op: "image", key: "tiles/4", x: 0, y: 0},
		{op: "circle", x: 5, y: 6},
	}
	if len(dst.calls) != len(want) {
		t.Fatalf("expected %d calls, got %+v", len(want), dst.calls)
	}
	for i, c := range want {
		got := dst.calls[i]
		if got.op != c.op || got.key != c.key || got.x != c.x || got.y != c.y {
			t.Fatalf("call %d: expected %+v, got %+v", i, c, got)
		}
	}
}

func TestRenderDebugOutlines(t *testing.T) {
	w := ecs.NewWorld()
	newTestPlayer(t, w, 100, 100)
	addCollider(t, w, component.TagPlatform, 0, 0, 64, 64)

	dst := &recordingRenderer{}
	r := NewRenderSystem()
	r.Debug = true
	r.Draw(w, dst)

	strokes := 0
	for _, c := range dst.calls {
		if c.op == "stroke" {
			strokes++
		}
	}
	if strokes != 2 {
		t.Fatalf("expected collider and player outlines, got %d", strokes)
	}
}

func TestDrawOverlay(t *testing.T) {
	cases := []struct {
		name  string
		alpha int
		want  int
	}{
		{name: "opaque", alpha: 255, want: 1},
		{name: "half", alpha: 128, want: 1},
		{name: "clear", alpha: 0, want: 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := w.CreateEntity()
			_ = ecs.Add(w, e, component.FadeComponent, component.Fade{Alpha: c.alpha, Color: color.RGBA{R: 20, G: 20, B: 30, A: 255}})

			dst := &recordingRenderer{}
			NewRenderSystem().DrawOverlay(w, dst)
			if len(dst.calls) != c.want {
				t.Fatalf("expected %d draws, got %d", c.want, len(dst.calls))
			}
			if c.want > 0 {
				_, _, _, a := dst.calls[0].clr.RGBA()
				if a>>8 != uint32(c.alpha) {
					t.Fatalf("expected alpha %d, got %d", c.alpha, a>>8)
				}
			}
		})
	}
}
