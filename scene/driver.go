package scene

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/mistwood/platform"
)

// Driver owns the current scene and applies transitions between ticks.
type Driver struct {
	ctx     *Context
	current Scene
	logger  *log.Logger
}

// NewDriver makes initial current and enters it.
func NewDriver(ctx *Context, initial Scene) *Driver {
	d := &Driver{ctx: ctx, current: initial, logger: ctx.Logger}
	d.logger.Info("scene enter", "scene", initial.Kind(), "stage", initial.Stage())
	initial.OnEnter()
	return d
}

func (d *Driver) Current() Scene {
	return d.current
}

// Update runs one tick. Escape quits from any scene.
func (d *Driver) Update(in platform.Input) error {
	if in.Pressed(platform.KeyEscape) {
		return ErrQuit
	}

	next, err := d.current.Update(in)
	if err != nil {
		return err
	}
	if next != nil {
		d.swap(next)
	}
	return nil
}

func (d *Driver) Draw(dst platform.Renderer) {
	d.current.Draw(dst)
}

// Reload rebuilds a running Game at its stage so edited prefabs apply. Other
// scenes pick the new prefabs up the next time they are built. On error the
// current scene is kept.
func (d *Driver) Reload() error {
	g, ok := d.current.(*Game)
	if !ok {
		return nil
	}
	next, err := NewGame(d.ctx, g.Stage())
	if err != nil {
		return err
	}
	d.swap(next)
	return nil
}

func (d *Driver) swap(next Scene) {
	d.logger.Info("scene change",
		"from", d.current.Kind(),
		"to", next.Kind(),
		"stage", next.Stage(),
	)
	d.current.OnExit()
	d.current = next
	d.current.OnEnter()
}
