package scene

import (
	"image/color"

	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/platform"
)

// GameOver ends a run, won or lost. The stage index starts over from here.
type GameOver struct {
	*screen
	won bool
}

func NewGameOver(ctx *Context, won bool) (*GameOver, error) {
	s, err := newScreen(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.button("menu/text_play", screenW/2-57, screenH-200, component.ButtonPlay); err != nil {
		return nil, err
	}
	return &GameOver{screen: s, won: won}, nil
}

func (g *GameOver) Kind() Kind { return KindGameOver }
func (g *GameOver) Stage() int { return 0 }
func (g *GameOver) Won() bool { return g.won }
func (g *GameOver) OnExit() {}

func (g *GameOver) OnEnter() {
	if g.won {
		g.ctx.Audio.PlayMusic("win")
		return
	}
	g.ctx.Audio.PlayMusic("gameover")
}

func (g *GameOver) Update(in platform.Input) (Scene, error) {
	g.update()

	if in.Pressed(platform.KeyConfirm) || g.clicked(in) == component.ButtonPlay {
		return enter(NewMenu(g.ctx, g.Stage()))
	}
	return nil, nil
}

func (g *GameOver) message() string {
	if g.won {
		return victoryText
	}
	return defeatText
}

func (g *GameOver) Draw(dst platform.Renderer) {
	dst.FillRect(0, 0, screenW, screenH, backgroundColor)
	dst.DrawText(g.message(), screenW/2, 150, platform.TextOptions{
		Color:      color.White,
		FontSize:   30,
		CenterX:    true,
		Width:      screenW - 200,
		Align:      platform.AlignCenter,
		LineHeight: 1.2,
	})
	g.draw(dst)
	g.drawOverlay(dst)
}
