//go:build !ebiten

package app

import (
	"fmt"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/game"
)

// Adapter is a placeholder that satisfies the API expected by the GUI build.
type Adapter struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*game.Game, int) *Adapter {
	panic("app.New requires building with the 'ebiten' tag")
}

// Update always reports that the GUI build tag is missing.
func (a *Adapter) Update() error {
	return fmt.Errorf("app.Adapter.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (a *Adapter) Draw(any) {}

// Layout returns zeros in the headless build.
func (a *Adapter) Layout(int, int) (int, int) { return 0, 0 }
