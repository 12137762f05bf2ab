package ui

import (
	"fmt"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/inventory"
)

// inventoryTitle formats the slots-used summary shown above the inventory
// list. Capacity counts slots, so stacked items occupy one.
func inventoryTitle(inv *inventory.Inventory) string {
	return fmt.Sprintf("Inventory (%d/%d)", inv.Len(), inv.Capacity())
}
