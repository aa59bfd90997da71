package scene

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/ecs/entity"
	"github.com/milk9111/mistwood/ecs/system"
	"github.com/milk9111/mistwood/levels"
	"github.com/milk9111/mistwood/platform"
)

const (
	playerStartX = 100
	playerStartY = 0
)

// Game plays one stage. Lives and dash charges start full every time a Game
// is built, so a new stage or a rebuilt one refills them.
type Game struct {
	ctx    *Context
	stage  int
	world  *ecs.World
	input  *system.InputSystem
	sched  *ecs.Scheduler
	render *system.RenderSystem
	player ecs.Entity
}

func NewGame(ctx *Context, stage int) (*Game, error) {
	if stage < 0 || stage >= len(ctx.Stages) {
		return nil, fmt.Errorf("scene: game: %w: %d", levels.ErrStageOutOfRange, stage)
	}
	specs, err := ctx.Prefabs.LoadAll()
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if _, err := entity.SpawnBackground(w, ctx.Background, screenW, screenH, entity.TileSize); err != nil {
		return nil, err
	}
	player, err := entity.NewPlayerAt(w, specs.Player, playerStartX, playerStartY)
	if err != nil {
		return nil, err
	}
	stats, err := entity.LoadStageToWorld(w, ctx.Stages[stage], player, specs)
	if err != nil {
		return nil, fmt.Errorf("scene: stage %d: %w", stage, err)
	}
	if _, err := entity.NewFade(w, specs.Fade); err != nil {
		return nil, err
	}

	ctx.Logger.Debug("stage compiled",
		"stage", stage,
		"platforms", stats.Platforms,
		"obstacles", stats.Obstacles,
		"coins", stats.Coins,
		"exits", stats.Exits,
		"spawns", stats.Spawns,
	)

	input := system.NewInputSystem()
	g := &Game{
		ctx:    ctx,
		stage:  stage,
		world:  w,
		input:  input,
		sched:  system.NewGameplayScheduler(input, system.NewTriggerSystem(stage, len(ctx.Stages), specs.Particles, ctx.RNG)),
		render: system.NewRenderSystem(),
		player: player,
	}
	g.render.Debug = ctx.Debug
	return g, nil
}

func (g *Game) Kind() Kind { return KindGame }
func (g *Game) Stage() int { return g.stage }
func (g *Game) OnEnter() {}
func (g *Game) OnExit() {}

// World exposes the stage's world, mainly for tests and debug tooling.
func (g *Game) World() *ecs.World { return g.world }

// Player returns the player entity.
func (g *Game) Player() ecs.Entity { return g.player }

func (g *Game) Update(in platform.Input) (Scene, error) {
	g.input.Set(in)
	g.sched.Update(g.world)

	var (
		next Scene
		err  error
	)
	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case ecs.EventSound:
			if cue, ok := evt.Data.(string); ok {
				g.ctx.Audio.PlaySound(cue)
			}
		case ecs.EventPlayerHurt:
			g.ctx.Logger.Debug("player hurt", "stage", g.stage, "life", evt.Data)
		case ecs.EventStageCleared:
			if n, ok := evt.Data.(int); ok && next == nil {
				next, err = enter(NewGame(g.ctx, n))
			}
		case ecs.EventGameWon:
			if next == nil {
				next, err = enter(NewGameOver(g.ctx, true))
			}
		case ecs.EventPlayerDied:
			if next == nil {
				next, err = enter(NewGameOver(g.ctx, false))
			}
		}
	}
	return next, err
}

func (g *Game) Draw(dst platform.Renderer) {
	dst.FillRect(0, 0, screenW, screenH, backgroundColor)
	g.render.Draw(g.world, dst)
	g.drawHUD(dst)
	g.render.DrawOverlay(g.world, dst)
}

func (g *Game) drawHUD(dst platform.Renderer) {
	p, ok := ecs.Get(g.world, g.player, component.PlayerComponent)
	if !ok {
		return
	}
	opts := platform.TextOptions{Color: color.White, FontSize: 30}
	dst.DrawText("Life: "+strconv.Itoa(p.Life), 50, 50, opts)
	dst.DrawText("Dash: "+strconv.Itoa(p.DashCharges), 50, 90, opts)
}
