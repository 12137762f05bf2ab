package island

import (
	"fmt"
	"math/rand/v2"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/core"
)

// WalkableHeight is the minimum terrain height a tile needs to be traversable.
// Only deep water blocks movement.
const WalkableHeight = deepWaterMax

// Island owns the generated terrain, moisture and biome grids. The grids are
// built once per Generate call and treated as read-only afterwards.
type Island struct {
	width  int
	height int

	terrain  *core.FloatGrid
	moisture *core.FloatGrid
	biomes   []Biome

	seed int64
}

// New validates the requested dimensions and returns an empty island. Generate
// must be called before any of the accessors are used.
func New(width, height int) (*Island, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("island: invalid dimensions %dx%d", width, height)
	}
	return &Island{width: width, height: height}, nil
}

// Size reports the grid dimensions.
func (isl *Island) Size() core.Size { return core.Size{W: isl.width, H: isl.height} }

// Seed returns the seed used by the most recent Generate call.
func (isl *Island) Seed() int64 { return isl.seed }

// Generate builds the height map, moisture map and biome grid for the given
// seed. The same seed always reproduces the same world, ruins included.
func (isl *Island) Generate(seed int64) {
	rng := core.NewRNG(seed).Source()

	heightField := newNoiseField(seed, heightScale, 0)
	moistureField := newNoiseField(seed+1, moistureScale, moistureOffset)

	terrain := generateHeightMap(isl.width, isl.height, heightField, rng)
	applyIslandMask(terrain)
	clampGrid(terrain)

	isl.terrain = terrain
	isl.moisture = generateMoistureMap(terrain, moistureField)
	isl.biomes = buildBiomeGrid(terrain, isl.moisture, rng)
	isl.seed = seed
}

// buildBiomeGrid classifies every cell and applies the stochastic ruins
// override on suitable land. The override draws from the generation RNG, so a
// seed reproduces the full biome grid exactly.
func buildBiomeGrid(terrain, moisture *core.FloatGrid, rng *rand.Rand) []Biome {
	w, h := terrain.W, terrain.H
	biomes := make([]Biome, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			height := terrain.At(x, y)
			b := classify(height, moisture.At(x, y))
			if b.isLand() && height > ruinsHeightMin && height < ruinsHeightMax {
				if rng.Float64() < ruinsChance {
					b = Ruins
				}
			}
			biomes[y*w+x] = b
		}
	}
	return biomes
}

// Terrain exposes the height map. Callers must treat it as read-only.
func (isl *Island) Terrain() *core.FloatGrid { return isl.terrain }

// Moisture exposes the moisture map. Callers must treat it as read-only.
func (isl *Island) Moisture() *core.FloatGrid { return isl.moisture }

// HeightAt returns the terrain height at (x, y). Out-of-bounds coordinates
// panic; callers pre-validate positions.
func (isl *Island) HeightAt(x, y int) float64 { return isl.terrain.At(x, y) }

// MoistureAt returns the moisture value at (x, y).
func (isl *Island) MoistureAt(x, y int) float64 { return isl.moisture.At(x, y) }

// BiomeAt returns the biome at (x, y) from the cached biome grid.
func (isl *Island) BiomeAt(x, y int) Biome {
	if !isl.terrain.InBounds(x, y) {
		panic(fmt.Sprintf("island: biome access (%d,%d) outside %dx%d", x, y, isl.width, isl.height))
	}
	return isl.biomes[y*isl.width+x]
}

// Walkable reports whether the tile at (x, y) can be entered. Coordinates
// outside the map are not walkable rather than a panic, since movement code
// probes neighbors freely.
func (isl *Island) Walkable(x, y int) bool {
	if !isl.terrain.InBounds(x, y) {
		return false
	}
	return isl.terrain.At(x, y) >= WalkableHeight
}
