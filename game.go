package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mistwood/assets"
	"github.com/milk9111/mistwood/platform"
	"github.com/milk9111/mistwood/prefabs"
	"github.com/milk9111/mistwood/scene"
)

// Game adapts the scene driver to ebiten's loop.
type Game struct {
	driver  *scene.Driver
	input   *Input
	render  *Renderer
	watcher  *prefabs.Watcher
	watchErr error
	logger   *log.Logger
}

func NewGame(driver *scene.Driver, lib *assets.Library, logger *log.Logger) (*Game, error) {
	render, err := NewRenderer(lib)
	if err != nil {
		return nil, err
	}
	return &Game{
		driver: driver,
		input:  NewInput(),
		render: render,
		logger: logger,
	}, nil
}

// Watch reloads the running stage whenever a prefab under dir changes.
func (g *Game) Watch(dir string) error {
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return err
	}
	g.watcher = w
	g.logger.Debug("watching prefabs", "dir", dir)
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.reloadChanged()

	err := g.driver.Update(g.input.Poll())
	if errors.Is(err, scene.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Err(); err != nil && !errors.Is(err, g.watchErr) {
		g.logger.Warn("prefab watch error", "err", err)
		g.watchErr = err
	}
	changed := g.watcher.Poll()
	if len(changed) == 0 {
		return
	}
	g.logger.Info("prefabs changed", "files", changed)
	if err := g.driver.Reload(); err != nil {
		g.logger.Error("reload failed, keeping current stage", "err", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Begin(screen)
	g.driver.Draw(g.render)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return platform.ScreenWidth, platform.ScreenHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return platform.ScreenWidth, platform.ScreenHeight
}
