// Package game wires the island, locations, clock, weather and player into a
// single turn-based engine. One player action drives one engine step; nothing
// advances on its own.
package game

import (
	"fmt"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/clock"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/core"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/interaction"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/inventory"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/island"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/item"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/location"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/msglog"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/player"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/weather"
)

// Action is a single player input processed by Do.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionInteract
	ActionToggleInventory
)

// startHeight is the minimum terrain height for the starting tile: beach or
// higher, so the wanderer never wakes up swimming.
const startHeight = 0.3

// Config holds the engine parameters.
type Config struct {
	Width, Height  int
	Seed           int64
	MinLocations   int
	MaxLocations   int
	MinutesPerTurn int
}

// DefaultConfig mirrors the standard 80x50 island session.
func DefaultConfig() Config {
	return Config{
		Width:          80,
		Height:         50,
		Seed:           42,
		MinLocations:   5,
		MaxLocations:   8,
		MinutesPerTurn: 1,
	}
}

// Game owns every simulation subsystem for one session.
type Game struct {
	cfg Config

	island       *island.Island
	locations    *location.System
	interactions *interaction.System
	items        *item.Factory
	player       *player.Player
	clock        *clock.Clock
	weather      *weather.System
	log          *msglog.Log

	rng *core.RNG

	showInventory bool
	lastWeather   string
}

// New generates a world from the config and assembles a ready-to-play game.
func New(cfg Config) (*Game, error) {
	isl, err := island.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	isl.Generate(cfg.Seed)

	rng := core.NewRNG(cfg.Seed)
	locs := location.NewSystem(isl.Terrain(), rng.Source())
	locs.Generate(cfg.MinLocations, cfg.MaxLocations)

	g := &Game{
		cfg:          cfg,
		island:       isl,
		locations:    locs,
		interactions: interaction.NewSystem(locs),
		items:        item.NewFactory(rng.Source()),
		clock:        clock.New(cfg.MinutesPerTurn),
		weather:      weather.New(rng.Source()),
		log:          msglog.New(msglog.DefaultMax),
		rng:          rng,
	}
	g.lastWeather = g.weather.Description()
	g.player = g.placePlayer()

	g.log.Add(
		"Welcome to Mediterranean Wanderer!",
		msglog.System,
		"Use arrow keys or vi keys (h,j,k,l) to move. Space or Enter to interact. 'i' for inventory.",
	)
	return g, nil
}

// placePlayer finds a starting tile at beach height or above, searching in
// expanding rings from the map center, then falling back to a full scan and
// finally the center itself.
func (g *Game) placePlayer() *player.Player {
	size := g.island.Size()
	cx, cy := size.W/2, size.H/2

	maxRadius := max(size.W, size.H) / 2
	for radius := 0; radius <= maxRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				x, y := cx+dx, cy+dy
				if x < 0 || x >= size.W || y < 0 || y >= size.H {
					continue
				}
				if g.island.HeightAt(x, y) >= startHeight {
					return player.New(x, y)
				}
			}
		}
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if g.island.HeightAt(x, y) >= startHeight {
				return player.New(x, y)
			}
		}
	}
	g.log.Add(
		"Warning: No suitable starting position found.",
		msglog.System,
		"Starting at map center. You may be in water.",
	)
	return player.New(cx, cy)
}

// Do processes one player action. Successful movement advances the turn;
// blocked moves, interactions and UI toggles do not move time forward.
func (g *Game) Do(a Action) {
	switch a {
	case ActionMoveUp:
		g.move(0, -1)
	case ActionMoveDown:
		g.move(0, 1)
	case ActionMoveLeft:
		g.move(-1, 0)
	case ActionMoveRight:
		g.move(1, 0)
	case ActionInteract:
		g.interact()
	case ActionToggleInventory:
		g.showInventory = !g.showInventory
	}
}

func (g *Game) move(dx, dy int) {
	if g.showInventory {
		return
	}
	if !g.player.Move(dx, dy, g.island) {
		return
	}

	for _, loc := range g.locations.CheckDiscoveries(g.player.X, g.player.Y) {
		g.log.Add(fmt.Sprintf("Discovered %s!", loc.Name), msglog.Discovery, loc.Description)
	}

	oldTime := g.clock.Description()
	g.clock.Advance()
	// Weather ticks in simulated minutes, one Update per minute of the turn.
	minutes := g.cfg.MinutesPerTurn
	if minutes < 1 {
		minutes = 1
	}
	for i := 0; i < minutes; i++ {
		g.weather.Update()
	}

	if now := g.clock.Description(); now != oldTime {
		g.log.Add(fmt.Sprintf("Time changes to %s", now), msglog.Time, "")
	}
	if now := g.weather.Description(); now != g.lastWeather {
		g.log.Add(fmt.Sprintf("Weather changes to %s", now), msglog.Weather, "")
		g.lastWeather = now
	}
}

func (g *Game) interact() {
	if g.showInventory {
		return
	}
	res := g.interactions.TryInteract(g.player.X, g.player.Y)
	if !res.Success {
		g.log.Add(res.Message, msglog.System, "")
		return
	}
	details := ""
	if res.Detail != nil {
		details = res.Detail.Description
	}
	g.log.Add(res.Message, msglog.Interaction, details)

	if res.Detail == nil {
		return
	}
	if it, ok := g.rollItem(res.Detail.Type); ok {
		if err := g.player.Inventory.Add(it); err == nil {
			g.log.Add(fmt.Sprintf("Found %s!", it.Name), msglog.Interaction, it.Description)
		}
	}
}

// drop is one entry of a location's loot table.
type drop struct {
	typ    item.Type
	chance float64
}

// locationDrops maps each location type to its loot odds. Chances within a
// table sum to 1.
var locationDrops = map[location.Type][]drop{
	location.Beach:     {{item.Shell, 0.7}, {item.Stone, 0.3}},
	location.Grove:     {{item.Herb, 0.4}, {item.Fruit, 0.6}},
	location.Ruins:     {{item.Stone, 0.8}, {item.MessageBottle, 0.2}},
	location.Viewpoint: {{item.Flower, 1.0}},
	location.Village:   {{item.Fruit, 0.5}, {item.Herb, 0.5}},
}

// rollItem picks an item appropriate to the location type, if its table
// yields one.
func (g *Game) rollItem(typ location.Type) (item.Item, bool) {
	table, ok := locationDrops[typ]
	if !ok {
		return item.Item{}, false
	}
	roll := g.rng.Float64()
	cumulative := 0.0
	for _, d := range table {
		cumulative += d.chance
		if roll <= cumulative {
			return g.items.Create(d.typ), true
		}
	}
	return item.Item{}, false
}

// Island exposes the generated world.
func (g *Game) Island() *island.Island { return g.island }

// Locations exposes the location system.
func (g *Game) Locations() *location.System { return g.locations }

// Player exposes the player.
func (g *Game) Player() *player.Player { return g.player }

// Inventory exposes the player's inventory.
func (g *Game) Inventory() *inventory.Inventory { return g.player.Inventory }

// Clock exposes the time system.
func (g *Game) Clock() *clock.Clock { return g.clock }

// Weather exposes the weather system.
func (g *Game) Weather() *weather.System { return g.weather }

// Log exposes the message log.
func (g *Game) Log() *msglog.Log { return g.log }

// Size reports the world dimensions.
func (g *Game) Size() core.Size { return g.island.Size() }

// ShowInventory reports whether the inventory screen is open.
func (g *Game) ShowInventory() bool { return g.showInventory }

// AdjustColor applies the current time-of-day and weather lighting to an RGB
// triple. The presentation layer runs every tile color through this.
func (g *Game) AdjustColor(r, gc, b uint8) (uint8, uint8, uint8) {
	tr, tg, tb := g.clock.AdjustColor(r, gc, b)
	wr, wg, wb := g.weather.ColorAdjustment()
	return clampChannel(float64(tr) * wr),
		clampChannel(float64(tg) * wg),
		clampChannel(float64(tb) * wb)
}

func clampChannel(v float64) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
