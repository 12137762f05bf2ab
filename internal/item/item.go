// Package item provides the collectible items found at locations.
package item

import (
	"fmt"
	"math/rand/v2"
)

// Type enumerates the kinds of items that can be found.
type Type uint8

const (
	Shell Type = iota
	Stone
	MessageBottle
	Flower
	Herb
	Fruit

	numTypes
)

// String returns the display name for the item type.
func (t Type) String() string {
	switch t {
	case Shell:
		return "Shell"
	case Stone:
		return "Stone"
	case MessageBottle:
		return "Message Bottle"
	case Flower:
		return "Flower"
	case Herb:
		return "Herb"
	case Fruit:
		return "Fruit"
	}
	return "Unknown"
}

// Item is a collectible. Stackable items merge in the inventory by name.
type Item struct {
	Type        Type
	Name        string
	Description string
	Stackable   bool
	StackSize   int
	Details     string // message content for bottles, empty otherwise
}

// String renders the item with its stack count when stacked.
func (it Item) String() string {
	if it.Stackable && it.StackSize > 1 {
		return fmt.Sprintf("%s (x%d)", it.Name, it.StackSize)
	}
	return it.Name
}

// template pairs names with descriptions index-for-index so a single roll
// selects a matching pair.
type template struct {
	names        []string
	descriptions []string
	stackable    bool
}

var templates = [numTypes]template{
	Shell: {
		names: []string{
			"Spiral Shell", "Conch Shell", "Scallop Shell", "Pearl Oyster", "Nautilus Shell",
		},
		descriptions: []string{
			"A beautiful spiral shell with iridescent colors.",
			"A large conch shell that echoes the sea.",
			"A delicate scallop shell with perfect ridges.",
			"A smooth oyster shell with a pearly interior.",
			"An ancient nautilus shell with intricate chambers.",
		},
		stackable: true,
	},
	Stone: {
		names: []string{
			"Smooth Pebble", "Sea Glass", "Marble Fragment", "Quartz Crystal", "Beach Stone",
		},
		descriptions: []string{
			"A perfectly smooth pebble worn by the waves.",
			"A piece of frosted sea glass in a beautiful color.",
			"A fragment of ancient marble with faint patterns.",
			"A small crystal that catches the light.",
			"A uniquely shaped stone from the beach.",
		},
		stackable: true,
	},
	MessageBottle: {
		names: []string{
			"Sealed Message Bottle", "Ancient Message Bottle", "Weathered Message Bottle",
			"Crystal Clear Bottle", "Green Glass Bottle",
		},
		descriptions: []string{
			"A corked bottle containing a rolled message.",
			"An old bottle with a faded message inside.",
			"A weathered bottle protecting a mysterious note.",
			"A pristine bottle with a message waiting to be read.",
			"An emerald green bottle with a secret message.",
		},
	},
	Flower: {
		names: []string{
			"Mediterranean Daisy", "Wild Cyclamen", "Sea Lavender", "Rock Rose", "Wild Orchid",
		},
		descriptions: []string{
			"A cheerful daisy with white petals.",
			"A delicate cyclamen with swept-back petals.",
			"A cluster of tiny purple flowers.",
			"A bright pink flower that grows among rocks.",
			"A rare wild orchid with spotted petals.",
		},
		stackable: true,
	},
	Herb: {
		names: []string{
			"Wild Thyme", "Bay Leaf", "Rosemary Sprig", "Sage Leaf", "Wild Oregano",
		},
		descriptions: []string{
			"Fragrant wild thyme that grows between rocks.",
			"A glossy bay leaf from an ancient tree.",
			"A sprig of aromatic rosemary.",
			"A soft, silvery sage leaf.",
			"Wild oregano with a strong, spicy scent.",
		},
		stackable: true,
	},
	Fruit: {
		names: []string{
			"Wild Fig", "Olive", "Lemon", "Orange", "Pomegranate",
		},
		descriptions: []string{
			"A ripe fig, sweet and fresh from the tree.",
			"A perfectly ripe olive, ready for curing.",
			"A fragrant lemon from a garden tree.",
			"A sweet orange warmed by the sun.",
			"A heavy pomegranate, full of jewel-like seeds.",
		},
		stackable: true,
	},
}

// bottleMessages are the notes hidden inside message bottles.
var bottleMessages = []string{
	"May the winds guide you to treasures untold...",
	"In the olive groves, ancient secrets rest...",
	"Follow the path of the setting sun...",
	"When the moon is full, the ruins whisper...",
	"The old fisherman knows more than he tells...",
}

// Factory creates items from their templates using an explicit random source.
type Factory struct {
	rng *rand.Rand
}

// NewFactory returns a factory drawing from the given RNG.
func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

// Create rolls a new item of the given type. The name and description are
// selected by a single index so they always match.
func (f *Factory) Create(typ Type) Item {
	tmpl := templates[typ]
	idx := f.rng.IntN(len(tmpl.names))

	it := Item{
		Type:        typ,
		Name:        tmpl.names[idx],
		Description: tmpl.descriptions[idx],
		Stackable:   tmpl.stackable,
		StackSize:   1,
	}
	if typ == MessageBottle {
		it.Details = bottleMessages[f.rng.IntN(len(bottleMessages))]
	}
	return it
}
