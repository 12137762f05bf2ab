package location

import (
	"math"
	"math/rand/v2"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/core"
)

// Placement parameters.
const (
	// MinSpacing is the requested minimum Euclidean distance between
	// locations. Generate relaxes it when the terrain is too cramped.
	MinSpacing = 10

	// DiscoveryRadius bounds |dx| and |dy| for automatic discovery.
	DiscoveryRadius = 3

	// WaterThreshold is the minimum height a cell needs to host a location.
	WaterThreshold = 0.5

	// maxAttempts caps random-cell trials per spacing level.
	maxAttempts = 1000

	// degenerateCellCount is the valid-cell count below which normal spacing
	// logic is skipped and a single location is placed.
	degenerateCellCount = 10
)

// System owns the island's locations in an ordered collection. Other
// components refer to locations by index; all mutation happens here.
type System struct {
	terrain *core.FloatGrid
	rng     *rand.Rand

	locs    []Location
	spacing int
}

// NewSystem creates a location system over the given height map. The RNG is
// threaded in explicitly so placement is reproducible under a seed.
func NewSystem(terrain *core.FloatGrid, rng *rand.Rand) *System {
	return &System{terrain: terrain, rng: rng}
}

// Count returns the number of placed locations.
func (s *System) Count() int { return len(s.locs) }

// Add appends a pre-built location and returns its index. Normal worlds are
// populated by Generate; Add exists for fixed layouts in tools and tests.
func (s *System) Add(loc Location) int {
	s.locs = append(s.locs, loc)
	return len(s.locs) - 1
}

// At returns a copy of the location at index i.
func (s *System) At(i int) Location { return s.locs[i] }

// All returns copies of every location in placement order.
func (s *System) All() []Location {
	out := make([]Location, len(s.locs))
	copy(out, s.locs)
	return out
}

// SpacingAchieved reports the spacing level in effect when the final set was
// committed. Zero means fewer than two locations were placed.
func (s *System) SpacingAchieved() int { return s.spacing }

// Generate scatters between minCount and maxCount locations on land, relaxing
// the spacing requirement when the valid terrain cannot honor it. The best
// candidate set found across spacing levels is committed.
func (s *System) Generate(minCount, maxCount int) {
	s.locs = nil
	s.spacing = 0

	valid := s.validCells()
	if len(valid) == 0 {
		return
	}

	if len(valid) < degenerateCellCount {
		s.placeSingle(valid)
		return
	}

	// Square-packing estimate of how many locations can fit at all.
	areaPerLocation := (MinSpacing / 2) * (MinSpacing / 2)
	maxPossible := len(valid) / areaPerLocation
	if maxPossible < 1 {
		maxPossible = 1
	}
	adjustedMax := min(maxCount, maxPossible)
	adjustedMin := min(minCount, adjustedMax)
	target := adjustedMin + s.rng.IntN(adjustedMax-adjustedMin+1)

	var best []Location
	spacing := MinSpacing
	for {
		candidates := s.tryPlacement(target, spacing)
		if len(candidates) > len(best) {
			best = candidates
			s.spacing = spacing
		}
		if len(best) >= adjustedMin || spacing <= 2 {
			break
		}
		spacing = max(2, spacing/2)
	}
	s.locs = best
	if len(s.locs) < 2 {
		s.spacing = 0
	}
}

// validCells collects the linear indices of cells at or above the water
// threshold.
func (s *System) validCells() []int {
	var valid []int
	for i, v := range s.terrain.Cells() {
		if v >= WaterThreshold {
			valid = append(valid, i)
		}
	}
	return valid
}

// placeSingle handles degenerate maps: one location at a random valid cell,
// if any valid cell matches a type preference.
func (s *System) placeSingle(valid []int) {
	idx := valid[s.rng.IntN(len(valid))]
	x, y := idx%s.terrain.W, idx/s.terrain.W
	typ, ok := s.chooseType(s.terrain.At(x, y))
	if !ok {
		return
	}
	s.locs = []Location{s.newLocation(x, y, typ)}
}

// tryPlacement runs up to maxAttempts random-cell trials building a candidate
// set that honors the given spacing.
func (s *System) tryPlacement(target, spacing int) []Location {
	var candidates []Location
	for attempts := 0; len(candidates) < target && attempts < maxAttempts; attempts++ {
		x := s.rng.IntN(s.terrain.W)
		y := s.rng.IntN(s.terrain.H)
		if s.terrain.At(x, y) < WaterThreshold {
			continue
		}
		if tooClose(candidates, x, y, float64(spacing)) {
			continue
		}
		typ, ok := s.chooseType(s.terrain.At(x, y))
		if !ok {
			continue
		}
		candidates = append(candidates, s.newLocation(x, y, typ))
	}
	return candidates
}

func tooClose(locs []Location, x, y int, spacing float64) bool {
	for _, loc := range locs {
		dx := float64(x - loc.X)
		dy := float64(y - loc.Y)
		if math.Sqrt(dx*dx+dy*dy) < spacing {
			return true
		}
	}
	return false
}

// chooseType picks uniformly among the location types whose height band
// contains h. Cells matching no band are skipped as candidates.
func (s *System) chooseType(h float64) (Type, bool) {
	var qualifying []Type
	for _, p := range preferences {
		if h >= p.min && h <= p.max {
			qualifying = append(qualifying, p.typ)
		}
	}
	if len(qualifying) == 0 {
		return 0, false
	}
	return qualifying[s.rng.IntN(len(qualifying))], true
}

// newLocation assembles a location with flavor text drawn by a single index,
// keeping name and description paired.
func (s *System) newLocation(x, y int, typ Type) Location {
	fl := flavors[typ][s.rng.IntN(len(flavors[typ]))]
	return Location{X: x, Y: y, Type: typ, Name: fl.name, Description: fl.description}
}
