//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/game"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/render"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/ui"
)

// Adapter bridges the turn engine to the ebiten.Game interface. Input is
// key-press driven: one key press, one engine action.
type Adapter struct {
	g       *game.Game
	painter *render.MapPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale int
}

// keyActions maps input keys to engine actions. Movement accepts both the
// arrow keys and the vi keys.
var keyActions = []struct {
	key    ebiten.Key
	action game.Action
}{
	{ebiten.KeyArrowUp, game.ActionMoveUp},
	{ebiten.KeyK, game.ActionMoveUp},
	{ebiten.KeyArrowDown, game.ActionMoveDown},
	{ebiten.KeyJ, game.ActionMoveDown},
	{ebiten.KeyArrowLeft, game.ActionMoveLeft},
	{ebiten.KeyH, game.ActionMoveLeft},
	{ebiten.KeyArrowRight, game.ActionMoveRight},
	{ebiten.KeyL, game.ActionMoveRight},
	{ebiten.KeySpace, game.ActionInteract},
	{ebiten.KeyEnter, game.ActionInteract},
	{ebiten.KeyI, game.ActionToggleInventory},
}

// New constructs an Adapter for the provided game.
func New(g *game.Game, scale int) *Adapter {
	size := g.Size()
	return &Adapter{
		g:       g,
		painter: render.NewMapPainter(size.W, size.H),
		hud:     ui.NewHUD(g, size.W*scale),
		overlay: ui.NewOverlay(g.Island(), scale),
		scale:   scale,
	}
}

// Update translates key presses into engine actions.
func (a *Adapter) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			a.g.Do(ka.action)
		}
	}
	if a.overlay != nil {
		a.overlay.Update()
	}
	return nil
}

// Draw renders the lit map, debug overlay and HUD.
func (a *Adapter) Draw(screen *ebiten.Image) {
	p := a.g.Player()
	a.painter.Blit(screen, a.g.Island(), a.g.Locations().Discovered(), p.X, p.Y, a.g.AdjustColor, a.scale)
	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
	if a.hud != nil {
		a.hud.Draw(screen, a.g.Size().H*a.scale)
	}
}

// Layout returns the logical screen size: the scaled map plus the HUD panel.
func (a *Adapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := a.g.Size()
	return size.W * a.scale, size.H*a.scale + ui.PanelHeight
}
