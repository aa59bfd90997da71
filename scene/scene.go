// Package scene holds the screens of the game and the driver that swaps
// between them. Update returns the next scene, or nil to stay; the driver
// applies the change after Update returns, so a scene never runs half of a
// tick.
package scene

import (
	"errors"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/milk9111/mistwood/ecs/entity"
	"github.com/milk9111/mistwood/levels"
	"github.com/milk9111/mistwood/platform"
	"github.com/milk9111/mistwood/prefabs"
)

// ErrQuit asks the frame driver to end the process.
var ErrQuit = errors.New("scene: quit")

const (
	screenW = platform.ScreenWidth
	screenH = platform.ScreenHeight
)

var backgroundColor = color.RGBA{R: 20, G: 20, B: 30, A: 255}

// Kind names the screen a Scene implements.
type Kind int

const (
	KindMenu Kind = iota
	KindIntro
	KindGame
	KindGameOver
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindIntro:
		return "intro"
	case KindGame:
		return "game"
	case KindGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

type Scene interface {
	Kind() Kind
	// Stage is the stage index the scene carries forward.
	Stage() int
	Update(in platform.Input) (next Scene, err error)
	Draw(dst platform.Renderer)
	// OnEnter runs when the driver makes the scene current.
	OnEnter()
	// OnExit runs when the driver leaves the scene.
	OnExit()
}

// Context is what every scene shares: the collaborators and the compiled-in
// data. Nothing in it changes during play.
type Context struct {
	Audio   platform.Audio
	Images  platform.Measurer
	Logger  *log.Logger
	Prefabs *prefabs.Library
	RNG     entity.RNG
	Debug   bool

	Stages     []levels.Stage
	Background []string
}

// NewContext loads the embedded stages and fills unset collaborators with
// silent defaults.
func NewContext(audio platform.Audio, logger *log.Logger, lib *prefabs.Library, rng entity.RNG) (*Context, error) {
	stages, err := levels.LoadStages()
	if err != nil {
		return nil, err
	}
	bands, err := levels.LoadBackground()
	if err != nil {
		return nil, err
	}

	if audio == nil {
		audio = platform.NopAudio{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if lib == nil {
		lib = prefabs.Embedded()
	}

	return &Context{
		Audio:      audio,
		Logger:     logger,
		Prefabs:    lib,
		RNG:        rng,
		Stages:     stages,
		Background: bands,
	}, nil
}

// imageSize returns the natural size of key, or fallback when the images
// collaborator cannot tell.
func (c *Context) imageSize(key string, fallbackW, fallbackH float64) (float64, float64) {
	if c.Images != nil {
		if w, h, ok := c.Images.ImageSize(key); ok {
			return w, h
		}
	}
	return fallbackW, fallbackH
}

// enter turns a constructor result into an Update result. A failed
// construction yields a nil Scene rather than a typed nil.
func enter(s Scene, err error) (Scene, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
