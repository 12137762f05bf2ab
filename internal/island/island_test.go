package island

import (
	"slices"
	"testing"
)

func mustGenerate(t *testing.T, w, h int, seed int64) *Island {
	t.Helper()
	isl, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	isl.Generate(seed)
	return isl
}

func TestGenerateDeterministic(t *testing.T) {
	a := mustGenerate(t, 80, 50, 42)
	b := mustGenerate(t, 80, 50, 42)

	if !slices.Equal(a.Terrain().Cells(), b.Terrain().Cells()) {
		t.Fatal("same seed must reproduce the height map")
	}
	if !slices.Equal(a.Moisture().Cells(), b.Moisture().Cells()) {
		t.Fatal("same seed must reproduce the moisture map")
	}
	if !slices.Equal(a.biomes, b.biomes) {
		t.Fatal("same seed must reproduce the biome grid, ruins included")
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := mustGenerate(t, 64, 48, 1)
	b := mustGenerate(t, 64, 48, 2)

	if slices.Equal(a.Terrain().Cells(), b.Terrain().Cells()) {
		t.Fatal("different seeds should produce different height maps")
	}
}

func TestGenerateValuesInRange(t *testing.T) {
	isl := mustGenerate(t, 80, 50, 7)
	for _, v := range isl.Terrain().Cells() {
		if v < 0 || v > 1 {
			t.Fatalf("height %f out of [0,1]", v)
		}
	}
	for _, v := range isl.Moisture().Cells() {
		if v < 0 || v > 1 {
			t.Fatalf("moisture %f out of [0,1]", v)
		}
	}
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	cases := [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -1}}
	for _, c := range cases {
		if _, err := New(c[0], c[1]); err == nil {
			t.Fatalf("New(%d, %d) should fail", c[0], c[1])
		}
	}
}

func TestWaterBiomesFollowHeightExactly(t *testing.T) {
	isl := mustGenerate(t, 80, 50, 42)
	size := isl.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			h := isl.HeightAt(x, y)
			b := isl.BiomeAt(x, y)
			switch {
			case h < 0.2:
				if b != DeepWater {
					t.Fatalf("(%d,%d) height %f: got %v, want DeepWater", x, y, h, b)
				}
			case h < 0.3:
				if b != ShallowWater {
					t.Fatalf("(%d,%d) height %f: got %v, want ShallowWater", x, y, h, b)
				}
			case h < 0.4:
				if b != Beach {
					t.Fatalf("(%d,%d) height %f: got %v, want Beach", x, y, h, b)
				}
			}
		}
	}
}

func TestRuinsOnlyOnSuitableLand(t *testing.T) {
	isl := mustGenerate(t, 120, 80, 5)
	size := isl.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if isl.BiomeAt(x, y) != Ruins {
				continue
			}
			h := isl.HeightAt(x, y)
			if h <= ruinsHeightMin || h >= ruinsHeightMax {
				t.Fatalf("ruins at (%d,%d) with height %f outside (%f,%f)", x, y, h, ruinsHeightMin, ruinsHeightMax)
			}
		}
	}
}

func TestBiomeAtOutOfBoundsPanics(t *testing.T) {
	isl := mustGenerate(t, 10, 10, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("BiomeAt outside the grid should panic")
		}
	}()
	isl.BiomeAt(10, 0)
}

func TestWalkable(t *testing.T) {
	isl := mustGenerate(t, 40, 30, 11)
	if isl.Walkable(-1, 0) || isl.Walkable(0, -1) || isl.Walkable(40, 0) {
		t.Fatal("out-of-bounds tiles must not be walkable")
	}
	size := isl.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			want := isl.HeightAt(x, y) >= WalkableHeight
			if isl.Walkable(x, y) != want {
				t.Fatalf("Walkable(%d,%d) = %v, want %v", x, y, !want, want)
			}
		}
	}
}

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		height, moisture float64
		want             Biome
	}{
		{0.0, 0.5, DeepWater},
		{0.19, 0.5, DeepWater},
		{0.2, 0.5, ShallowWater},
		{0.29, 0.5, ShallowWater},
		{0.3, 0.5, Beach},
		{0.39, 0.5, Beach},
		{0.76, 0.5, RockyCliff},
		{0.9, 0.1, RockyCliff},
		{0.6, 0.7, PineForest},
		{0.45, 0.7, OliveGrove},
		{0.6, 0.5, PineForest},
		{0.45, 0.5, OliveGrove},
		{0.5, 0.2, PineForest},
		{0.42, 0.2, OliveGrove},
	}
	for _, c := range cases {
		if got := classify(c.height, c.moisture); got != c.want {
			t.Fatalf("classify(%f, %f) = %v, want %v", c.height, c.moisture, got, c.want)
		}
	}
}
