package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/platform"
)

// The horizontal play band. The outer tile columns are walls.
const (
	playMinX = platform.TileSize
	playMaxX = platform.ScreenWidth - platform.TileSize
)

// RespawnSystem returns a player that fell out of the world to its spawn
// point and keeps it inside the horizontal play band. Falling costs no life.
type RespawnSystem struct {
	FallLimit float64
	MinX      float64
	MaxX      float64
}

func NewRespawnSystem() *RespawnSystem {
	return &RespawnSystem{
		FallLimit: platform.ScreenHeight + 200,
		MinX:      playMinX,
		MaxX:      playMaxX,
	}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlayerComponent, component.TransformComponent, func(_ ecs.Entity, p *component.Player, t *component.Transform) {
		if t.Y > s.FallLimit {
			returnToSpawn(p, t)
			emitSound(w, soundDeath)
		}
		t.X = max(s.MinX, min(t.X, s.MaxX))
	})
}

// returnToSpawn moves the player without touching its velocity. Spawns in
// the wall column land on the edge of the play band, so a respawn outside
// RespawnSystem still leaves x inside it.
func returnToSpawn(p *component.Player, t *component.Transform) {
	t.X = max(playMinX, min(p.SpawnX, playMaxX))
	t.Y = p.SpawnY
}
