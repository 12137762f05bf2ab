// Package player tracks the wanderer's position and belongings.
package player

import (
	"github.com/cathodeDreams/mediterranean-wanderer/internal/inventory"
	"github.com/cathodeDreams/mediterranean-wanderer/internal/island"
)

// Player is the single controllable character.
type Player struct {
	X, Y      int
	Inventory *inventory.Inventory
}

// New places a player at (x, y) with an empty default-capacity inventory.
func New(x, y int) *Player {
	return &Player{X: x, Y: y, Inventory: inventory.New(inventory.DefaultCapacity)}
}

// Move attempts to shift the player by (dx, dy) on the island. It reports
// whether the move happened; moves into deep water or off the map are refused
// and leave the position unchanged.
func (p *Player) Move(dx, dy int, isl *island.Island) bool {
	nx, ny := p.X+dx, p.Y+dy
	if !isl.Walkable(nx, ny) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}
