package entity

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/levels"
	"github.com/milk9111/mistwood/platform"
	"github.com/milk9111/mistwood/prefabs"
)

const TileSize = platform.TileSize

const exitImage = "tiles/4"

var terrainImages = map[byte]string{
	'G': "tiles/terrain_grass_block_top",
	'L': "tiles/terrain_grass_block_top_left",
	'R': "tiles/terrain_grass_block_top_right",
	'F': "tiles/terrain_grass_block_center",
	'E': "tiles/terrain_grass_block_left",
	'D': "tiles/terrain_grass_block_right",
	'X': "tiles/terrain_grass_block_center",
}

// StageStats counts what a stage compiled into.
type StageStats struct {
	Platforms int
	Obstacles int
	Coins     int
	Exits     int
	Spawns    int
}

// LoadStageToWorld turns every cell of stage into at most one entity. Cell
// (row, col) maps to (col*TileSize, row*TileSize). A P cell places player and
// its respawn point instead of creating an entity; unknown codes are skipped.
func LoadStageToWorld(w *ecs.World, stage levels.Stage, player ecs.Entity, specs prefabs.Specs) (StageStats, error) {
	var stats StageStats
	const tile = float64(TileSize)

	for row, line := range stage {
		for col := 0; col < len(line); col++ {
			code := line[col]
			x := float64(col) * tile
			y := float64(row) * tile

			if img, ok := terrainImages[code]; ok {
				if _, err := newCollidable(w, img, x, y, component.TagPlatform, tile, tile); err != nil {
					return stats, err
				}
				stats.Platforms++
				continue
			}

			switch code {
			case 'C':
				if _, err := newCollidable(w, exitImage, x, y, component.TagNext, tile, tile); err != nil {
					return stats, err
				}
				stats.Exits++
			case '0':
				if _, err := newCollidable(w, exitImage, x, y, component.TagTheEnd, tile, tile); err != nil {
					return stats, err
				}
				stats.Exits++
			case 'O':
				if _, err := NewBee(w, specs.Bee, x, y); err != nil {
					return stats, err
				}
				stats.Obstacles++
			case 'S':
				spike := specs.Spike
				sx := x + (tile-spike.Collider.Width)/2
				sy := y + (tile - spike.Collider.Height)
				if _, err := newCollidable(w, spike.Image, sx, sy, component.TagObstacle, spike.Collider.Width, spike.Collider.Height); err != nil {
					return stats, err
				}
				stats.Obstacles++
			case 'A':
				coin := specs.Coin
				cx := x + (tile-coin.Collider.Width)/2
				cy := y + (tile-coin.Collider.Height)/2
				if _, err := NewCoin(w, coin, cx, cy); err != nil {
					return stats, err
				}
				stats.Coins++
			case 'P':
				if player.Valid() {
					if err := SetSpawn(w, player, x, y); err != nil {
						return stats, err
					}
				}
				stats.Spawns++
			}
		}
	}

	return stats, nil
}
