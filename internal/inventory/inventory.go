// Package inventory implements the player's item storage.
package inventory

import (
	"errors"
	"sort"

	"github.com/cathodeDreams/mediterranean-wanderer/internal/item"
)

// DefaultCapacity is the number of inventory slots a new player has.
const DefaultCapacity = 20

// ErrFull is returned when an item cannot be added and cannot be stacked.
var ErrFull = errors.New("inventory is full")

// Inventory stores collected items. Stackable items of the same type and name
// merge into a single slot.
type Inventory struct {
	capacity int
	items    []item.Item
}

// New returns an empty inventory. Non-positive capacities fall back to the
// default.
func New(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Inventory{capacity: capacity}
}

// Add stores an item, merging it into an existing stack when possible.
func (inv *Inventory) Add(it item.Item) error {
	if it.StackSize <= 0 {
		it.StackSize = 1
	}
	if it.Stackable {
		for i := range inv.items {
			held := &inv.items[i]
			if held.Type == it.Type && held.Name == it.Name && held.Stackable {
				held.StackSize += it.StackSize
				return nil
			}
		}
	}
	if len(inv.items) >= inv.capacity {
		return ErrFull
	}
	inv.items = append(inv.items, it)
	return nil
}

// Remove takes count units from the item at index, returning what was
// removed. Removing the last units of a stack frees the slot. The second
// return is false for invalid indices.
func (inv *Inventory) Remove(index, count int) (item.Item, bool) {
	if index < 0 || index >= len(inv.items) {
		return item.Item{}, false
	}
	if count <= 0 {
		count = 1
	}
	held := &inv.items[index]
	if held.Stackable && held.StackSize > count {
		held.StackSize -= count
		removed := *held
		removed.StackSize = count
		return removed, true
	}
	removed := *held
	inv.items = append(inv.items[:index], inv.items[index+1:]...)
	return removed, true
}

// Get returns the item at index without removing it.
func (inv *Inventory) Get(index int) (item.Item, bool) {
	if index < 0 || index >= len(inv.items) {
		return item.Item{}, false
	}
	return inv.items[index], true
}

// Items returns copies of all held items in slot order.
func (inv *Inventory) Items() []item.Item {
	out := make([]item.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of occupied slots.
func (inv *Inventory) Len() int { return len(inv.items) }

// Capacity returns the slot capacity.
func (inv *Inventory) Capacity() int { return inv.capacity }

// IsFull reports whether every slot is occupied.
func (inv *Inventory) IsFull() bool { return len(inv.items) >= inv.capacity }

// FreeSpace returns the number of unoccupied slots.
func (inv *Inventory) FreeSpace() int { return inv.capacity - len(inv.items) }

// TotalCount sums the units held of the given type, counting stacks.
func (inv *Inventory) TotalCount(typ item.Type) int {
	total := 0
	for _, it := range inv.items {
		if it.Type != typ {
			continue
		}
		if it.Stackable {
			total += it.StackSize
		} else {
			total++
		}
	}
	return total
}

// Sort orders slots by type then name.
func (inv *Inventory) Sort() {
	sort.SliceStable(inv.items, func(i, j int) bool {
		if inv.items[i].Type != inv.items[j].Type {
			return inv.items[i].Type < inv.items[j].Type
		}
		return inv.items[i].Name < inv.items[j].Name
	})
}

// Categories groups held items by type, preserving slot order within a type.
func (inv *Inventory) Categories() map[item.Type][]item.Item {
	out := make(map[item.Type][]item.Item)
	for _, it := range inv.items {
		out[it.Type] = append(out[it.Type], it)
	}
	return out
}

// Clear removes everything.
func (inv *Inventory) Clear() { inv.items = inv.items[:0] }
