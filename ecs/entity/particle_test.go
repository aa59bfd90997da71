package entity

import (
	"math/rand/v2"
	"testing"

	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

func TestSpawnBurstRanges(t *testing.T) {
	specs := mustSpecs(t)
	w := ecs.NewWorld()
	rng := rand.New(rand.NewPCG(1, 2))

	ents, err := SpawnBurst(w, specs.Particles, 100, 200, rng)
	if err != nil {
		t.Fatalf("burst: %v", err)
	}
	if len(ents) != 10 {
		t.Fatalf("expected 10 particles, got %d", len(ents))
	}

	for _, e := range ents {
		p, ok := ecs.Get(w, e, component.ParticleComponent)
		if !ok {
			t.Fatalf("%v has no particle", e)
		}
		tr, _ := ecs.Get(w, e, component.TransformComponent)
		if tr.X != 100 || tr.Y != 200 {
			t.Fatalf("particle should start at the burst origin, got (%v,%v)", tr.X, tr.Y)
		}
		if p.Size < 3 || p.Size > 6 {
			t.Fatalf("size %d out of range", p.Size)
		}
		if p.Life < 40 || p.Life > 60 {
			t.Fatalf("life %d out of range", p.Life)
		}
		if p.Color.R < 200 || p.Color.G < 200 {
			t.Fatalf("colour %v out of range", p.Color)
		}
		if p.Velocity.X < -2 || p.Velocity.X > 2 || p.Velocity.Y < -2 || p.Velocity.Y > 2 {
			t.Fatalf("velocity %v out of range", p.Velocity)
		}
	}
}

func TestNewFade(t *testing.T) {
	specs := mustSpecs(t)
	w := ecs.NewWorld()
	e, err := NewFade(w, specs.Fade)
	if err != nil {
		t.Fatalf("fade: %v", err)
	}
	f, _ := ecs.Get(w, e, component.FadeComponent)
	if f.Alpha != 255 || f.Step != 10 || !f.Active {
		t.Fatalf("unexpected fade %+v", f)
	}
	if f.Color.R != 20 || f.Color.G != 20 || f.Color.B != 30 {
		t.Fatalf("unexpected fade colour %v", f.Color)
	}
}

func TestButtonAt(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewButton(w, "menu/text_start", 100, 100, component.ButtonPlay, 114, 40); err != nil {
		t.Fatalf("button: %v", err)
	}
	if _, err := NewButton(w, "menu/text_exit", 100, 200, component.ButtonExit, 114, 40); err != nil {
		t.Fatalf("button: %v", err)
	}

	cases := []struct {
		x, y float64
		want component.ButtonAction
	}{
		{110, 110, component.ButtonPlay},
		{213, 239, component.ButtonExit},
		{50, 110, component.ButtonNone},
		{110, 170, component.ButtonNone},
	}
	for _, c := range cases {
		if got := ButtonAt(w, c.x, c.y); got != c.want {
			t.Fatalf("(%v,%v): expected %v, got %v", c.x, c.y, c.want, got)
		}
	}
}
