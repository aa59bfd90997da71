package entity

import (
	"math"
	"strings"

	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
)

var backgroundImages = map[rune]string{
	'S': "tiles/background_solid_sky",
	'C': "tiles/background_clouds",
}

// SpawnBackground splits the viewport height into len(bands) horizontal
// bands and tiles each one with the image named by the band's first
// non-blank code. Band i ends at round((i+1)*H/n); the last band ends at H.
// Blank or unknown bands stay empty. It returns the number of tiles created.
func SpawnBackground(w *ecs.World, bands []string, viewW, viewH, tile int) (int, error) {
	if len(bands) == 0 || tile <= 0 {
		return 0, nil
	}

	cols := int(math.Ceil(float64(viewW) / float64(tile)))
	count := 0
	start := 0
	for i, band := range bands {
		end := viewH
		if i < len(bands)-1 {
			end = int(math.Round(float64(i+1) * float64(viewH) / float64(len(bands))))
		}

		img, ok := backgroundImages[bandCode(band)]
		if !ok {
			start = end
			continue
		}

		for y := start; y < end && y < viewH; y += tile {
			for col := 0; col < cols; col++ {
				x := col * tile
				if x >= viewW {
					break
				}
				if _, err := newSprite(w, img, float64(x), float64(y), component.LayerBackground); err != nil {
					return count, err
				}
				count++
			}
		}
		start = end
	}
	return count, nil
}

func bandCode(band string) rune {
	for _, r := range strings.TrimSpace(band) {
		return r
	}
	return 0
}
