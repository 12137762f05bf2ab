package island

// Biome enumerates the terrain categories present on the island.
type Biome uint8

const (
	DeepWater Biome = iota
	ShallowWater
	Beach
	OliveGrove
	PineForest
	RockyCliff
	Ruins
)

// String returns the display name for the biome.
func (b Biome) String() string {
	switch b {
	case DeepWater:
		return "Deep Water"
	case ShallowWater:
		return "Shallow Water"
	case Beach:
		return "Beach"
	case OliveGrove:
		return "Olive Grove"
	case PineForest:
		return "Pine Forest"
	case RockyCliff:
		return "Rocky Cliff"
	case Ruins:
		return "Ruins"
	}
	return "Unknown"
}

// Height thresholds shared by classification, walkability and rendering.
const (
	deepWaterMax    = 0.2
	shallowWaterMax = 0.3
	beachMax        = 0.4
	cliffMin        = 0.75

	ruinsHeightMin = 0.4
	ruinsHeightMax = 0.7
	ruinsChance    = 0.02
)

// classify maps a (height, moisture) pair to its biome. The stochastic ruins
// override is applied separately so this stays a pure function.
func classify(height, moisture float64) Biome {
	switch {
	case height < deepWaterMax:
		return DeepWater
	case height < shallowWaterMax:
		return ShallowWater
	case height < beachMax:
		return Beach
	}
	if height > cliffMin {
		return RockyCliff
	}
	switch {
	case moisture > 0.6:
		if height > 0.5 {
			return PineForest
		}
		return OliveGrove
	case moisture > 0.4:
		if height > 0.5 {
			return PineForest
		}
		return OliveGrove
	default:
		if height > 0.45 {
			return PineForest
		}
		return OliveGrove
	}
}

// isLand reports whether the biome sits above the beach line.
func (b Biome) isLand() bool {
	switch b {
	case OliveGrove, PineForest, RockyCliff, Ruins:
		return true
	}
	return false
}
