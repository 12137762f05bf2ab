package core

import "fmt"

// FloatGrid stores a 2D grid of float64 values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions. Dimensions must be
// positive; callers validate user-provided sizes before construction.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", w, h))
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *FloatGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value stored at (x, y). Out-of-bounds access is a programming
// error and panics rather than clamping.
func (g *FloatGrid) At(x, y int) float64 {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: grid access (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
	return g.data[y*g.W+x]
}

// Set stores v at (x, y) with the same bounds contract as At.
func (g *FloatGrid) Set(x, y int, v float64) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: grid access (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
	g.data[y*g.W+x] = v
}

// Clamp01 limits v to the [0, 1] range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
