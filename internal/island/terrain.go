package island

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/core"
)

// Noise parameters. Alpha weighs successive octaves, beta is the frequency
// step between them (lacunarity), octaves the number of layers summed.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.5
	noiseOctaves = 6
)

// Sampling parameters for the two fields. The moisture field uses a larger
// scale for broader zones and a coordinate offset so it decorrelates from the
// height field even under related seeds.
const (
	heightScale    = 2.5
	moistureScale  = 4.0
	moistureOffset = 100.0

	peakChance     = 0.02
	peakBoost      = 1.5
	heightContrast = 0.7
	maskContrast   = 0.8
	maskFalloff    = 1.5

	moistureContrast = 1.2
	coastalHeight    = 0.3
	coastalDecay     = 5.0
	coastalBlend     = 0.3
)

// noiseField samples a seeded 2D coherent-noise field in [-1, 1].
type noiseField struct {
	p      *perlin.Perlin
	scale  float64
	offset float64
}

func newNoiseField(seed int64, scale, offset float64) *noiseField {
	return &noiseField{
		p:      perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		scale:  scale,
		offset: offset,
	}
}

// at samples the field at grid cell (x, y) of a w*h lattice. The whole map
// spans a few noise periods regardless of its pixel dimensions.
func (f *noiseField) at(x, y, w, h int) float64 {
	nx := (float64(x)/float64(w) + f.offset) * f.scale
	ny := (float64(y)/float64(h) + f.offset) * f.scale
	return f.p.Noise2D(nx, ny)
}

// generateHeightMap builds the raw height map: normalized noise, a contrast
// curve biased toward land, and sparse random peaks.
func generateHeightMap(w, h int, field *noiseField, rng *rand.Rand) *core.FloatGrid {
	grid := core.NewFloatGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := (field.at(x, y, w, h) + 1.0) / 2.0
			v = math.Pow(v, heightContrast)
			if rng.Float64() < peakChance {
				v = math.Min(v*peakBoost, 1.0)
			}
			grid.Set(x, y, v)
		}
	}
	return grid
}

// applyIslandMask attenuates heights by elliptical distance from the map
// center so edges fall toward water. The center is never fully suppressed and
// a final contrast curve sharpens the shorelines.
func applyIslandMask(grid *core.FloatGrid) {
	w, h := grid.W, grid.H
	cx, cy := float64(w)/2.0, float64(h)/2.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) - cx) / (float64(w) / 2.0)
			dy := (float64(y) - cy) / (float64(h) / 2.0)
			dist := math.Sqrt(dx*dx + dy*dy)
			mask := 1.0 - core.Clamp01(math.Pow(dist, maskFalloff))
			v := grid.At(x, y) * (mask*0.8 + 0.2)
			grid.Set(x, y, math.Pow(v, maskContrast))
		}
	}
}

// generateMoistureMap builds the moisture map from its own noise field blended
// with a coastal influence term peaking at the shoreline height of the
// finished terrain.
func generateMoistureMap(terrain *core.FloatGrid, field *noiseField) *core.FloatGrid {
	w, h := terrain.W, terrain.H
	grid := core.NewFloatGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := (field.at(x, y, w, h) + 1.0) / 2.0
			v = math.Pow(v, moistureContrast)
			coastal := math.Exp(-coastalDecay * math.Abs(terrain.At(x, y)-coastalHeight))
			v = (1.0-coastalBlend)*v + coastalBlend*coastal
			grid.Set(x, y, core.Clamp01(v))
		}
	}
	return grid
}

func clampGrid(grid *core.FloatGrid) {
	cells := grid.Cells()
	for i, v := range cells {
		cells[i] = core.Clamp01(v)
	}
}
