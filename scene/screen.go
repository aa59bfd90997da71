package scene

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/ecs/entity"
	"github.com/milk9111/mistwood/ecs/system"
	"github.com/milk9111/mistwood/platform"
)

// Buttons are measured from their image; this is the size of the menu text
// images when the renderer cannot say.
const (
	buttonW = 114
	buttonH = 40
)

// screen is the world, systems and overlay shared by the non-gameplay
// scenes: a few images, some buttons and the entry fade.
type screen struct {
	ctx    *Context
	world  *ecs.World
	sched  *ecs.Scheduler
	render *system.RenderSystem
}

func newScreen(ctx *Context) (*screen, error) {
	s := &screen{
		ctx:    ctx,
		world:  ecs.NewWorld(),
		sched:  ecs.NewScheduler(system.NewScrollSystem(), system.NewFadeSystem()),
		render: system.NewRenderSystem(),
	}
	s.render.Debug = ctx.Debug

	fade, err := ctx.Prefabs.Fade()
	if err != nil {
		return nil, err
	}
	if _, err := entity.NewFade(s.world, fade); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *screen) button(image string, x, y float64, action component.ButtonAction) error {
	w, h := s.ctx.imageSize(image, buttonW, buttonH)
	_, err := entity.NewButton(s.world, image, x, y, action, w, h)
	return err
}

// clicked returns the action of the first click that landed on a button.
func (s *screen) clicked(in platform.Input) component.ButtonAction {
	for _, c := range in.Clicks {
		if action := entity.ButtonAt(s.world, c.X, c.Y); action != component.ButtonNone {
			return action
		}
	}
	return component.ButtonNone
}

func (s *screen) update() {
	s.sched.Update(s.world)
}

func (s *screen) draw(dst platform.Renderer) {
	s.render.Draw(s.world, dst)
}

func (s *screen) drawOverlay(dst platform.Renderer) {
	s.render.DrawOverlay(s.world, dst)
}
