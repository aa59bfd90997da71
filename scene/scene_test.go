package scene

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/levels"
	"github.com/milk9111/mistwood/platform"
	"github.com/milk9111/mistwood/prefabs"
)

type fakeAudio struct {
	sounds []string
	music  []string
}

func (a *fakeAudio) PlaySound(name string) { a.sounds = append(a.sounds, name) }
func (a *fakeAudio) PlayMusic(name string) { a.music = append(a.music, name) }

type fakeRenderer struct {
	texts []string
	ops   []string
}

func (r *fakeRenderer) DrawImage(key string, _, _ float64) { r.ops = append(r.ops, "image:"+key) }
func (r *fakeRenderer) FillRect(_, _, _, _ float64, _ color.Color) { r.ops = append(r.ops, "rect") }
func (r *fakeRenderer) StrokeRect(_, _, _, _ float64, _ color.Color) { r.ops = append(r.ops, "stroke") }
func (r *fakeRenderer) FillCircle(_, _, _ float64, _ color.Color) { r.ops = append(r.ops, "circle") }
func (r *fakeRenderer) DrawText(s string, _, _ float64, _ platform.TextOptions) {
	r.texts = append(r.texts, s)
	r.ops = append(r.ops, "text")
}

func newTestContext(t *testing.T) (*Context, *fakeAudio) {
	t.Helper()
	audio := &fakeAudio{}
	ctx, err := NewContext(audio, nil, prefabs.Embedded(), rand.New(rand.NewPCG(3, 5)))
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	return ctx, audio
}

func confirm() platform.Input {
	return platform.Input{Confirm: true, KeysDown: []platform.Key{platform.KeyConfirm}}
}

func click(x, y float64) platform.Input {
	return platform.Input{Clicks: []platform.Point{{X: x, Y: y}}}
}

func mustGame(t *testing.T, ctx *Context, stage int) *Game {
	t.Helper()
	g, err := NewGame(ctx, stage)
	if err != nil {
		t.Fatalf("new game %d: %v", stage, err)
	}
	return g
}

// coverPlayer drops a collider of the given tag over the player's spawn.
func coverPlayer(t *testing.T, g *Game, tag component.Tag) ecs.Entity {
	t.Helper()
	tr, ok := ecs.Get(g.World(), g.Player(), component.TransformComponent)
	if !ok {
		t.Fatalf("player has no transform")
	}
	e := g.World().CreateEntity()
	if err := ecs.Add(g.World(), e, component.TransformComponent, component.Transform{X: tr.X - 50, Y: tr.Y - 50}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := ecs.Add(g.World(), e, component.ColliderComponent, component.Collider{Tag: tag, Width: 150, Height: 150}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := ecs.Add(g.World(), e, component.SpriteComponent, component.Sprite{Image: "test"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	return e
}

func TestMenuTransitions(t *testing.T) {
	cases := []struct {
		name     string
		in       platform.Input
		wantKind Kind
		wantErr  error
		stay     bool
	}{
		{name: "idle", in: platform.Input{}, stay: true},
		{name: "enter", in: confirm(), wantKind: KindIntro},
		{name: "start_button", in: click(screenW/2-57+10, screenH/2+50+10), wantKind: KindIntro},
		{name: "exit_button", in: click(screenW/2-57+10, screenH/2+150+10), wantErr: ErrQuit},
		{name: "click_elsewhere", in: click(5, 5), stay: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx, _ := newTestContext(t)
			m, err := NewMenu(ctx, 2)
			if err != nil {
				t.Fatalf("menu: %v", err)
			}
			next, err := m.Update(c.in)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) || next != nil {
					t.Fatalf("expected %v, got next=%v err=%v", c.wantErr, next, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if c.stay {
				if next != nil {
					t.Fatalf("expected to stay, got %v", next.Kind())
				}
				return
			}
			if next == nil || next.Kind() != c.wantKind {
				t.Fatalf("expected %v, got %v", c.wantKind, next)
			}
			if next.Stage() != 2 {
				t.Fatalf("stage must carry through, got %d", next.Stage())
			}
		})
	}
}

func TestIntroStartsGame(t *testing.T) {
	ctx, audio := newTestContext(t)
	intro, err := NewIntro(ctx, 1)
	if err != nil {
		t.Fatalf("intro: %v", err)
	}

	next, err := intro.Update(platform.Input{})
	if err != nil || next != nil {
		t.Fatalf("expected to stay, got %v %v", next, err)
	}

	next, err = intro.Update(confirm())
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	g, ok := next.(*Game)
	if !ok || g.Stage() != 1 {
		t.Fatalf("expected game at stage 1, got %v", next)
	}
	if len(audio.music) != 1 || audio.music[0] != "game" {
		t.Fatalf("expected game music, got %v", audio.music)
	}
}

func TestGameOutcomes(t *testing.T) {
	cases := []struct {
		name      string
		stage     int
		tag       component.Tag
		life      int
		wantKind  Kind
		wantStage int
		wantWon   bool
		stay      bool
	}{
		{name: "last_life_obstacle", stage: 2, tag: component.TagObstacle, life: 1, wantKind: KindGameOver},
		{name: "spare_life_obstacle", stage: 2, tag: component.TagObstacle, life: 3, stay: true},
		{name: "next_mid_game", stage: 0, tag: component.TagNext, life: 3, wantKind: KindGame, wantStage: 1},
		{name: "next_on_last_stage", stage: levels.StageCount - 1, tag: component.TagNext, life: 3, wantKind: KindGameOver, wantWon: true},
		{name: "theend", stage: levels.StageCount - 1, tag: component.TagTheEnd, life: 3, wantKind: KindGameOver, wantWon: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx, _ := newTestContext(t)
			g := mustGame(t, ctx, c.stage)
			p, _ := ecs.Get(g.World(), g.Player(), component.PlayerComponent)
			p.Life = c.life
			coverPlayer(t, g, c.tag)

			next, err := g.Update(platform.Input{})
			if err != nil {
				t.Fatalf("update: %v", err)
			}
			if c.stay {
				if next != nil {
					t.Fatalf("expected to stay, got %v", next.Kind())
				}
				if p.Life != c.life-1 {
					t.Fatalf("expected life %d, got %d", c.life-1, p.Life)
				}
				return
			}
			if next == nil || next.Kind() != c.wantKind {
				t.Fatalf("expected %v, got %v", c.wantKind, next)
			}
			if next.Stage() != c.wantStage {
				t.Fatalf("expected stage %d, got %d", c.wantStage, next.Stage())
			}
			if over, ok := next.(*GameOver); ok {
				if over.Won() != c.wantWon {
					t.Fatalf("expected won=%v", c.wantWon)
				}
				if c.tag == component.TagObstacle && p.Life != 0 {
					t.Fatalf("expected life 0, got %d", p.Life)
				}
			}
		})
	}
}

func TestGameCoinPickup(t *testing.T) {
	ctx, audio := newTestContext(t)
	g := mustGame(t, ctx, 0)
	w := g.World()

	coin := coverPlayer(t, g, component.TagCoin)
	drawables := len(w.Query(component.SpriteComponent))
	collidables := len(w.Query(component.ColliderComponent))

	next, err := g.Update(platform.Input{})
	if err != nil || next != nil {
		t.Fatalf("coin must not change scene, got %v %v", next, err)
	}
	if w.IsAlive(coin) {
		t.Fatalf("coin should be destroyed")
	}
	gotDrawables := len(w.Query(component.SpriteComponent))
	gotCollidables := len(w.Query(component.ColliderComponent))
	if drawables-gotDrawables != collidables-gotCollidables || gotDrawables >= drawables {
		t.Fatalf("coins must leave both sets: drawables %d->%d collidables %d->%d", drawables, gotDrawables, collidables, gotCollidables)
	}
	found := false
	for _, s := range audio.sounds {
		if s == "coin" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected coin cue, got %v", audio.sounds)
	}
}

func TestGameHUDAndOverlayOrder(t *testing.T) {
	ctx, _ := newTestContext(t)
	g := mustGame(t, ctx, 0)

	dst := &fakeRenderer{}
	g.Draw(dst)

	if len(dst.texts) != 2 || dst.texts[0] != "Life: 3" || dst.texts[1] != "Dash: 3" {
		t.Fatalf("unexpected HUD %v", dst.texts)
	}
	if last := dst.ops[len(dst.ops)-1]; last != "rect" {
		t.Fatalf("expected the fade overlay last, got %s", last)
	}
}

func TestNewGameRejectsUnknownStage(t *testing.T) {
	ctx, _ := newTestContext(t)
	for _, stage := range []int{-1, levels.StageCount} {
		if _, err := NewGame(ctx, stage); !errors.Is(err, levels.ErrStageOutOfRange) {
			t.Fatalf("stage %d: expected ErrStageOutOfRange, got %v", stage, err)
		}
	}
}

func TestGameOver(t *testing.T) {
	cases := []struct {
		won       bool
		wantMusic string
		wantText  string
	}{
		{won: true, wantMusic: "win", wantText: victoryText},
		{won: false, wantMusic: "gameover", wantText: defeatText},
	}

	for _, c := range cases {
		ctx, audio := newTestContext(t)
		over, err := NewGameOver(ctx, c.won)
		if err != nil {
			t.Fatalf("game over: %v", err)
		}
		over.OnEnter()
		if len(audio.music) != 1 || audio.music[0] != c.wantMusic {
			t.Fatalf("expected %s music, got %v", c.wantMusic, audio.music)
		}

		dst := &fakeRenderer{}
		over.Draw(dst)
		if len(dst.texts) != 1 || dst.texts[0] != c.wantText {
			t.Fatalf("unexpected message %v", dst.texts)
		}

		next, err := over.Update(click(screenW/2-57+1, screenH-200+1))
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if next == nil || next.Kind() != KindMenu || next.Stage() != 0 {
			t.Fatalf("expected menu at stage 0, got %v", next)
		}
	}
}

func TestDriver(t *testing.T) {
	ctx, audio := newTestContext(t)
	menu, err := NewMenu(ctx, 0)
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	d := NewDriver(ctx, menu)
	if len(audio.music) != 1 || audio.music[0] != "menu" {
		t.Fatalf("expected menu music on enter, got %v", audio.music)
	}

	if err := d.Update(confirm()); err != nil {
		t.Fatalf("update: %v", err)
	}
	if d.Current().Kind() != KindIntro {
		t.Fatalf("expected intro, got %v", d.Current().Kind())
	}
	if err := d.Update(confirm()); err != nil {
		t.Fatalf("update: %v", err)
	}
	if d.Current().Kind() != KindGame || d.Current().Stage() != 0 {
		t.Fatalf("expected game at stage 0, got %v/%d", d.Current().Kind(), d.Current().Stage())
	}

	before := d.Current()
	if err := d.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if d.Current() == before || d.Current().Kind() != KindGame {
		t.Fatalf("reload should rebuild the game")
	}

	esc := platform.Input{Escape: true, KeysDown: []platform.Key{platform.KeyEscape}}
	if err := d.Update(esc); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
}

func TestDriverReloadKeepsSceneOnError(t *testing.T) {
	dir := t.TempDir()
	ctx, _ := newTestContext(t)
	ctx.Prefabs = &prefabs.Library{Dir: dir}

	g := mustGame(t, ctx, 1)
	d := NewDriver(ctx, g)

	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("life: [broken\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := d.Reload(); err == nil {
		t.Fatalf("expected reload error")
	}
	if d.Current() != Scene(g) {
		t.Fatalf("failed reload must keep the running scene")
	}
}
