package entity

import (
	"fmt"

	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/prefabs"
)

var playerAnimNames = map[string]component.AnimState{
	"idle":      component.AnimIdle,
	"walk":      component.AnimWalk,
	"jump":      component.AnimJump,
	"dash":      component.AnimDash,
	"idle_left": component.AnimIdleLeft,
	"walk_left": component.AnimWalkLeft,
	"jump_left": component.AnimJumpLeft,
	"dash_left": component.AnimDashLeft,
}

// NewPlayerAt builds the player at (x, y). The spawn point starts there too;
// LoadStageToWorld moves both when the stage has a P marker.
func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	cycles := make(map[component.AnimState]*component.AnimationCycle, len(playerAnimNames))
	for name, state := range playerAnimNames {
		anim, ok := spec.Animations[name]
		if !ok {
			return 0, fmt.Errorf("player: missing animation %q", name)
		}
		cycles[state] = cycleFromSpec(anim)
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Image:       spec.Sprite.Image,
		OffsetX:     spec.Sprite.OffsetX,
		OffsetY:     spec.Sprite.OffsetY,
		Base:        spec.Sprite.Base,
		BaseOffsetX: spec.Sprite.BaseOffsetX,
		BaseOffsetY: spec.Sprite.BaseOffsetY,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: component.LayerWorld}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.AnimationComponent, component.Animation{
		Cycles:  cycles,
		Current: component.AnimIdle,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlayerComponent, component.Player{
		Life:        spec.Life,
		Width:       spec.Collider.Width,
		Height:      spec.Collider.Height,
		Speed:       spec.Speed,
		JumpSpeed:   spec.JumpSpeed,
		Gravity:     spec.Gravity,
		MaxFall:     spec.MaxFall,
		DashSpeed:   spec.DashSpeed,
		DashBoost:   spec.DashBoost,
		DashFrames:  spec.DashFrames,
		DashCharges: spec.DashCharges,
		SpawnX:      x,
		SpawnY:      y,
		State:       component.AnimIdle,
	}); err != nil {
		return 0, err
	}
	return e, nil
}

// SetSpawn moves the player and its respawn point to (x, y).
func SetSpawn(w *ecs.World, player ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return fmt.Errorf("player: %w", component.ErrEntityNotAlive)
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent)
	if !ok {
		return fmt.Errorf("player: entity %v has no player component", player)
	}
	t.X, t.Y = x, y
	p.SpawnX, p.SpawnY = x, y
	return nil
}
