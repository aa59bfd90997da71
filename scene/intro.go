package scene

import (
	"image/color"

	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/ecs/entity"
	"github.com/milk9111/mistwood/platform"
)

// Intro tells the story and shows the controls before the first stage.
type Intro struct {
	*screen
	stage int
}

func NewIntro(ctx *Context, stage int) (*Intro, error) {
	s, err := newScreen(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := entity.NewImage(s.world, "menu/comands", 45, 550); err != nil {
		return nil, err
	}
	if err := s.button("menu/text_play", screenW-120, screenH-100, component.ButtonPlay); err != nil {
		return nil, err
	}
	return &Intro{screen: s, stage: stage}, nil
}

func (i *Intro) Kind() Kind { return KindIntro }
func (i *Intro) Stage() int { return i.stage }
func (i *Intro) OnEnter() {}
func (i *Intro) OnExit() {}

func (i *Intro) Update(in platform.Input) (Scene, error) {
	i.update()

	if in.Pressed(platform.KeyConfirm) || i.clicked(in) == component.ButtonPlay {
		i.ctx.Audio.PlayMusic("game")
		return enter(NewGame(i.ctx, i.stage))
	}
	return nil, nil
}

func (i *Intro) Draw(dst platform.Renderer) {
	dst.FillRect(0, 0, screenW, screenH, backgroundColor)
	dst.DrawText(introText, 100, 100, platform.TextOptions{Color: color.White, FontSize: 24})
	i.draw(dst)
	i.drawOverlay(dst)
}
