package render

import (
	"testing"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/island"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/location"
)

func testIsland(t *testing.T) *island.Island {
	t.Helper()
	isl, err := island.New(20, 15)
	if err != nil {
		t.Fatalf("island.New: %v", err)
	}
	isl.Generate(7)
	return isl
}

func pixelAt(buf []byte, w, x, y int) (r, g, b, a uint8) {
	base := (y*w + x) * 4
	return buf[base], buf[base+1], buf[base+2], buf[base+3]
}

func TestFillMapRGBAMatchesPalette(t *testing.T) {
	isl := testIsland(t)
	size := isl.Size()
	buf := make([]byte, 4*size.W*size.H)
	FillMapRGBA(buf, isl, nil, -1, -1, nil)

	for _, p := range []struct{ x, y int }{{0, 0}, {size.W / 2, size.H / 2}, {size.W - 1, size.H - 1}} {
		want := BiomeColor(isl.BiomeAt(p.x, p.y))
		r, g, b, a := pixelAt(buf, size.W, p.x, p.y)
		if r != want.R || g != want.G || b != want.B || a != 255 {
			t.Errorf("pixel (%d,%d) = (%d,%d,%d,%d), want %v", p.x, p.y, r, g, b, a, want)
		}
	}
}

func TestFillMapRGBAAppliesLighting(t *testing.T) {
	isl := testIsland(t)
	size := isl.Size()
	buf := make([]byte, 4*size.W*size.H)
	half := func(r, g, b uint8) (uint8, uint8, uint8) { return r / 2, g / 2, b / 2 }
	FillMapRGBA(buf, isl, nil, -1, -1, half)

	want := BiomeColor(isl.BiomeAt(0, 0))
	r, g, b, _ := pixelAt(buf, size.W, 0, 0)
	if r != want.R/2 || g != want.G/2 || b != want.B/2 {
		t.Errorf("lit pixel = (%d,%d,%d), want halved %v", r, g, b, want)
	}
}

func TestFillMapRGBAPlayerSkipsLighting(t *testing.T) {
	isl := testIsland(t)
	size := isl.Size()
	buf := make([]byte, 4*size.W*size.H)
	dark := func(r, g, b uint8) (uint8, uint8, uint8) { return 0, 0, 0 }
	FillMapRGBA(buf, isl, nil, 3, 4, dark)

	r, g, b, _ := pixelAt(buf, size.W, 3, 4)
	if r != PlayerColor.R || g != PlayerColor.G || b != PlayerColor.B {
		t.Errorf("player pixel = (%d,%d,%d), want %v", r, g, b, PlayerColor)
	}
}

func TestFillMapRGBADiscoveredMarker(t *testing.T) {
	isl := testIsland(t)
	size := isl.Size()
	buf := make([]byte, 4*size.W*size.H)
	locs := []location.Location{{X: 5, Y: 5, Name: "Quiet Cove", Type: location.Beach, Discovered: true}}
	FillMapRGBA(buf, isl, locs, -1, -1, nil)

	r, g, b, _ := pixelAt(buf, size.W, 5, 5)
	if r != LocationColor.R || g != LocationColor.G || b != LocationColor.B {
		t.Errorf("marker pixel = (%d,%d,%d), want %v", r, g, b, LocationColor)
	}
}

func TestFillMapRGBABadBufferIgnored(t *testing.T) {
	isl := testIsland(t)
	buf := make([]byte, 8)
	FillMapRGBA(buf, isl, nil, 0, 0, nil) // must not panic
}

func TestBiomeColorOutOfRange(t *testing.T) {
	c := BiomeColor(island.Biome(200))
	if c.A != 255 {
		t.Errorf("fallback alpha = %d, want opaque", c.A)
	}
}
