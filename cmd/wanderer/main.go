//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/app"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/config"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/game"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "world seed, overrides the config when non-zero")
	scale := flag.Int("scale", 0, "pixel scale multiplier, overrides the config when non-zero")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if *scale != 0 {
		cfg.Display.Scale = *scale
	}

	g, err := game.New(game.Config{
		Width:          cfg.World.Width,
		Height:         cfg.World.Height,
		Seed:           cfg.World.Seed,
		MinLocations:   cfg.Locations.Min,
		MaxLocations:   cfg.Locations.Max,
		MinutesPerTurn: cfg.Time.MinutesPerTurn,
	})
	if err != nil {
		log.Fatalf("create game: %v", err)
	}

	adapter := app.New(g, cfg.Display.Scale)

	ebiten.SetWindowTitle("Mediterranean Wanderer")
	ebiten.SetWindowSize(
		cfg.World.Width*cfg.Display.Scale,
		cfg.World.Height*cfg.Display.Scale+ui.PanelHeight,
	)

	if err := ebiten.RunGame(adapter); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
