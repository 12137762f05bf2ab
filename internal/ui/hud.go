//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/game"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/msglog"
)

// PanelHeight is the pixel height of the status panel below the map.
const PanelHeight = 96

const messageLines = 4

// HUD renders the status panel under the map view and the inventory screen
// over it.
type HUD struct {
	g     *game.Game
	width int
	panel *ebiten.Image

	inventoryPanel *ebiten.Image
}

// NewHUD constructs a HUD for the given game and panel width in pixels.
func NewHUD(g *game.Game, width int) *HUD {
	return &HUD{g: g, width: width}
}

// Draw paints the status panel anchored below the map, and the inventory
// screen over the map when it is open.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil || h.width <= 0 {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, PanelHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	status := fmt.Sprintf("Day %d  %s (%s)  Weather: %s",
		h.g.Clock().Day(),
		h.g.Clock().TimeOfDay(),
		h.g.Clock().Description(),
		h.g.Weather().Description(),
	)
	text.Draw(h.panel, status, face, panelPadding, panelPadding+lineBaseline, statusColor)

	for i, m := range h.g.Log().Recent(messageLines) {
		y := panelPadding + lineBaseline + (i+1)*lineHeight
		text.Draw(h.panel, m.Text, face, panelPadding, y, messageColor(m.Category))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)

	if h.g.ShowInventory() {
		h.drawInventory(screen, offsetY)
	}
}

// drawInventory paints the inventory list over the map area.
func (h *HUD) drawInventory(screen *ebiten.Image, mapHeight int) {
	if h.inventoryPanel == nil || h.inventoryPanel.Bounds().Dy() != mapHeight {
		h.inventoryPanel = ebiten.NewImage(h.width, mapHeight)
	}
	h.inventoryPanel.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 230})

	face := basicfont.Face7x13
	inv := h.g.Inventory()
	text.Draw(h.inventoryPanel, inventoryTitle(inv), face, panelPadding, panelPadding+lineBaseline, statusColor)

	if inv.Len() == 0 {
		text.Draw(h.inventoryPanel, "Nothing collected yet.", face,
			panelPadding, panelPadding+lineBaseline+lineHeight, dimColor)
	}
	for i, it := range inv.Items() {
		y := panelPadding + lineBaseline + (i+1)*lineHeight
		if y >= mapHeight-panelPadding {
			text.Draw(h.inventoryPanel, "...", face, panelPadding, y, dimColor)
			break
		}
		text.Draw(h.inventoryPanel, it.String(), face, panelPadding, y, itemColor)
	}

	screen.DrawImage(h.inventoryPanel, &ebiten.DrawImageOptions{})
}

func messageColor(c msglog.Category) color.RGBA {
	switch c {
	case msglog.Discovery:
		return color.RGBA{R: 255, G: 215, B: 0, A: 255}
	case msglog.Weather:
		return color.RGBA{R: 150, G: 190, B: 255, A: 255}
	case msglog.Time:
		return color.RGBA{R: 190, G: 160, B: 255, A: 255}
	default:
		return color.RGBA{R: 220, G: 220, B: 230, A: 255}
	}
}

var (
	statusColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	itemColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

const (
	panelPadding = 8
	lineHeight   = 16
	lineBaseline = 12
)
