// island-survey generates islands headlessly and reports terrain and
// placement statistics, useful for vetting seeds and tuning generation.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/core"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/island"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/location"
)

func main() {
	width := flag.Int("width", 80, "map width in tiles")
	height := flag.Int("height", 50, "map height in tiles")
	seed := flag.Int64("seed", 42, "first seed to survey")
	count := flag.Int("count", 1, "number of consecutive seeds to survey")
	minLocs := flag.Int("min-locations", 5, "minimum locations to place")
	maxLocs := flag.Int("max-locations", 8, "maximum locations to place")
	showMap := flag.Bool("map", false, "print an ASCII map per seed")
	flag.Parse()

	for i := 0; i < *count; i++ {
		if err := survey(*width, *height, *seed+int64(i), *minLocs, *maxLocs, *showMap); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func survey(width, height int, seed int64, minLocs, maxLocs int, showMap bool) error {
	isl, err := island.New(width, height)
	if err != nil {
		return err
	}
	isl.Generate(seed)

	rng := core.NewRNG(seed)
	locs := location.NewSystem(isl.Terrain(), rng.Source())
	locs.Generate(minLocs, maxLocs)

	total := width * height
	land := 0
	histogram := map[island.Biome]int{}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b := isl.BiomeAt(x, y)
			histogram[b]++
			if isl.Walkable(x, y) {
				land++
			}
		}
	}

	fmt.Printf("seed %d: %dx%d, %.1f%% walkable, %d locations, spacing %d\n",
		seed, width, height, 100*float64(land)/float64(total), locs.Count(), locs.SpacingAchieved())
	for b := island.DeepWater; b <= island.Ruins; b++ {
		n := histogram[b]
		if n == 0 {
			continue
		}
		fmt.Printf("  %-14s %6d (%.1f%%)\n", b.String(), n, 100*float64(n)/float64(total))
	}
	for _, loc := range locs.All() {
		fmt.Printf("  %-10s (%2d,%2d)  %s\n", loc.Type.String(), loc.X, loc.Y, loc.Name)
	}
	if showMap {
		fmt.Print(renderASCII(isl, locs.All()))
	}
	return nil
}

var biomeGlyphs = map[island.Biome]byte{
	island.DeepWater:    '~',
	island.ShallowWater: ',',
	island.Beach:        '.',
	island.OliveGrove:   'o',
	island.PineForest:   'T',
	island.RockyCliff:   '^',
	island.Ruins:        'R',
}

func renderASCII(isl *island.Island, locs []location.Location) string {
	size := isl.Size()
	rows := make([][]byte, size.H)
	for y := range rows {
		row := make([]byte, size.W)
		for x := range row {
			row[x] = biomeGlyphs[isl.BiomeAt(x, y)]
		}
		rows[y] = row
	}
	for _, loc := range locs {
		rows[loc.Y][loc.X] = '*'
	}
	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}
