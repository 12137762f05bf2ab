//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/island"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/location"
)

// MapPainter uploads composed map frames into a single scaled image.
type MapPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewMapPainter allocates a painter for a map of size w*h tiles.
func NewMapPainter(w, h int) *MapPainter {
	mp := &MapPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	mp.img = ebiten.NewImage(w, h)
	return mp
}

// Blit composes the current frame and draws it onto dst at the given scale.
func (mp *MapPainter) Blit(dst *ebiten.Image, isl *island.Island, discovered []location.Location, px, py int, light Lighting, scale int) {
	size := isl.Size()
	if size.W != mp.w || size.H != mp.h {
		return
	}
	FillMapRGBA(mp.buf, isl, discovered, px, py, light)
	mp.img.WritePixels(mp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(mp.img, op)
}

// Size returns the dimensions of the underlying image.
func (mp *MapPainter) Size() (int, int) { return mp.w, mp.h }
