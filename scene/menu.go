package scene

import (
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/ecs/entity"
	"github.com/milk9111/mistwood/platform"
)

// Menu is the title screen. Two copies of the background strip scroll down
// one after the other so the picture never runs out.
type Menu struct {
	*screen
	stage int
}

func NewMenu(ctx *Context, stage int) (*Menu, error) {
	s, err := newScreen(ctx)
	if err != nil {
		return nil, err
	}
	m := &Menu{screen: s, stage: stage}

	if _, err := entity.NewScrollingImage(s.world, "menu/bg", 360, component.Scroll{Speed: 1, Limit: 1080, Reset: 360}); err != nil {
		return nil, err
	}
	if _, err := entity.NewScrollingImage(s.world, "menu/bg", -360, component.Scroll{Speed: 1, Limit: 360, Reset: -360}); err != nil {
		return nil, err
	}
	if _, err := entity.NewImage(s.world, "menu/title", screenW/2-230, screenH/2-300); err != nil {
		return nil, err
	}
	if err := s.button("menu/text_start", screenW/2-57, screenH/2+50, component.ButtonPlay); err != nil {
		return nil, err
	}
	if err := s.button("menu/text_exit", screenW/2-57, screenH/2+150, component.ButtonExit); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Menu) Kind() Kind { return KindMenu }
func (m *Menu) Stage() int { return m.stage }

func (m *Menu) OnEnter() { m.ctx.Audio.PlayMusic("menu") }
func (m *Menu) OnExit() {}

func (m *Menu) Update(in platform.Input) (Scene, error) {
	m.update()

	if in.Pressed(platform.KeyConfirm) {
		return enter(NewIntro(m.ctx, m.stage))
	}
	switch m.clicked(in) {
	case component.ButtonPlay:
		return enter(NewIntro(m.ctx, m.stage))
	case component.ButtonExit:
		return nil, ErrQuit
	}
	return nil, nil
}

func (m *Menu) Draw(dst platform.Renderer) {
	m.draw(dst)
	m.drawOverlay(dst)
}
