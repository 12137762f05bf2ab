package location

// Type enumerates the categories of discoverable locations.
type Type uint8

const (
	Village Type = iota
	Ruins
	Viewpoint
	Beach
	Grove

	numTypes
)

// String returns the display name for the location type.
func (t Type) String() string {
	switch t {
	case Village:
		return "Village"
	case Ruins:
		return "Ruins"
	case Viewpoint:
		return "Viewpoint"
	case Beach:
		return "Beach"
	case Grove:
		return "Grove"
	}
	return "Unknown"
}

// Location is a named point of interest placed on land during generation.
// Discovered flips one way only; locations are never removed in a session.
type Location struct {
	X, Y        int
	Type        Type
	Name        string
	Description string
	Discovered  bool
}

// preference is an inclusive height band a location type may occupy. Kept as
// an ordered slice so candidate selection is deterministic under a seed.
type preference struct {
	typ      Type
	min, max float64
}

var preferences = []preference{
	{Beach, 0.5, 0.6},
	{Village, 0.6, 0.7},
	{Grove, 0.65, 0.75},
	{Viewpoint, 0.7, 0.85},
	{Ruins, 0.6, 0.8},
}

// flavor pairs a name with its description. A single index picks both so the
// two never drift apart.
type flavor struct {
	name        string
	description string
}

var flavors = [numTypes][]flavor{
	Village: {
		{"Olive Grove Village", "A peaceful village nestled among olive trees."},
		{"Fisher's Rest", "A quiet fishing village by the coast."},
		{"Goat Path Town", "A small settlement with white-washed houses."},
		{"Harbor View", "Weathered boats bob in a sheltered harbor below."},
		{"Vineyard Settlement", "Terraced vines climb the slopes around the houses."},
		{"Shepherd's Haven", "Bells of grazing goats echo between the stone walls."},
	},
	Ruins: {
		{"Temple of Poseidon", "Ancient marble columns reach skyward."},
		{"Ancient Agora", "Weathered stone walls tell tales of the past."},
		{"Forgotten Shrine", "Moss-covered ruins of an ancient civilization."},
		{"Old Amphitheater", "Rows of cracked stone seats face the sea."},
		{"Lost Library", "Toppled shelves of stone hint at forgotten knowledge."},
		{"Marble Columns", "Broken pillars cast long shadows in the grass."},
	},
	Viewpoint: {
		{"Eagle's Perch", "A breathtaking view of the island and sea."},
		{"Sunset Point", "The perfect spot to watch the sunset."},
		{"Azure Overlook", "A panoramic vista of the surrounding waters."},
		{"Cloud Watch", "Wisps of cloud drift past at eye level."},
		{"Sea Vista", "The coastline unrolls in both directions far below."},
		{"Island Peak", "From here the whole island lies at your feet."},
	},
	Beach: {
		{"Golden Sands", "Crystal clear waters lap at golden sand."},
		{"Shell Cove", "A pristine beach with scattered seashells."},
		{"Crystal Bay", "A secluded cove with gentle waves."},
		{"Pebble Beach", "Smooth stones click softly under the surf."},
		{"Hidden Lagoon", "Still turquoise water rings a sheltered lagoon."},
		{"Dolphin Shore", "Fins arc through the swell just beyond the breakers."},
	},
	Grove: {
		{"Ancient Olive Grove", "Ancient olive trees provide cool shade."},
		{"Citrus Garden", "Fragrant citrus trees line winding paths."},
		{"Pine Haven", "A peaceful grove filled with birdsong."},
		{"Fig Tree Grove", "Heavy figs ripen in the dappled light."},
		{"Cypress Walk", "Slim cypresses stand in quiet rows."},
		{"Laurel Woods", "The scent of laurel hangs in the warm air."},
	},
}
