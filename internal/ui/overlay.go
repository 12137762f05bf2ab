//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/island"
)

// Overlay draws optional terrain debugging views on top of the map.
type Overlay struct {
	isl   *island.Island
	scale int

	showHeight   bool
	showMoisture bool

	img *ebiten.Image
	buf []byte
}

// NewOverlay constructs an overlay for the given island.
func NewOverlay(isl *island.Island, scale int) *Overlay {
	size := isl.Size()
	o := &Overlay{isl: isl, scale: scale}
	o.img = ebiten.NewImage(size.W, size.H)
	o.buf = make([]byte, 4*size.W*size.H)
	return o
}

// Update toggles the debug views. Key 1 shows the height field, key 2 the
// moisture field.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeight = !o.showHeight
		o.showMoisture = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showMoisture = !o.showMoisture
		o.showHeight = false
	}
}

// Draw paints the active debug view as a grayscale layer over the map.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showHeight && !o.showMoisture {
		return
	}
	size := o.isl.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v := o.isl.HeightAt(x, y)
			if o.showMoisture {
				v = o.isl.MoistureAt(x, y)
			}
			level := uint8(v * 255)
			base := (y*size.W + x) * 4
			o.buf[base+0] = level
			o.buf[base+1] = level
			o.buf[base+2] = level
			o.buf[base+3] = 255
		}
	}
	o.img.WritePixels(o.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
