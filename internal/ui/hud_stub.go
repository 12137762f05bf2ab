//go:build !ebiten

package ui

import "github.com/cathodeDreams/mediterranean-wanderer/internal/game"

// PanelHeight is the pixel height of the status panel below the map.
const PanelHeight = 96

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*game.Game, int) *HUD { return nil }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
