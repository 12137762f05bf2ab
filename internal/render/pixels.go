// Package render turns the island state into RGBA pixel data. The pure fill
// functions live here so the frame composition is testable without a display.
package render

import (
	"image/color"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/island"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/location"
)

// Lighting maps a base tile color through time-of-day and weather tinting.
type Lighting func(r, g, b uint8) (uint8, uint8, uint8)

// biomePalette is indexed by island.Biome.
var biomePalette = [...]color.RGBA{
	island.DeepWater:    {R: 25, G: 25, B: 112, A: 255},
	island.ShallowWater: {R: 65, G: 105, B: 225, A: 255},
	island.Beach:        {R: 245, G: 222, B: 179, A: 255},
	island.OliveGrove:   {R: 128, G: 128, B: 0, A: 255},
	island.PineForest:   {R: 34, G: 139, B: 34, A: 255},
	island.RockyCliff:   {R: 139, G: 69, B: 19, A: 255},
	island.Ruins:        {R: 169, G: 169, B: 169, A: 255},
}

var (
	// LocationColor marks discovered locations on the map.
	LocationColor = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	// PlayerColor is stamped last and skips lighting so the player stays
	// visible at night.
	PlayerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// BiomeColor returns the base map color for a biome.
func BiomeColor(b island.Biome) color.RGBA {
	if int(b) >= len(biomePalette) {
		return color.RGBA{A: 255}
	}
	return biomePalette[b]
}

// FillMapRGBA composes one full map frame into buf: lit biome tiles, lit
// markers for discovered locations, and the player on top. buf must hold
// 4*w*h bytes.
func FillMapRGBA(buf []byte, isl *island.Island, discovered []location.Location, px, py int, light Lighting) {
	size := isl.Size()
	if len(buf) != 4*size.W*size.H {
		return
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			col := BiomeColor(isl.BiomeAt(x, y))
			setPixel(buf, size.W, x, y, lit(col, light))
		}
	}
	for _, loc := range discovered {
		setPixel(buf, size.W, loc.X, loc.Y, lit(LocationColor, light))
	}
	if px >= 0 && px < size.W && py >= 0 && py < size.H {
		setPixel(buf, size.W, px, py, PlayerColor)
	}
}

func lit(col color.RGBA, light Lighting) color.RGBA {
	if light == nil {
		return col
	}
	r, g, b := light(col.R, col.G, col.B)
	return color.RGBA{R: r, G: g, B: b, A: col.A}
}

func setPixel(buf []byte, w, x, y int, col color.RGBA) {
	base := (y*w + x) * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
