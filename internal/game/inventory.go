package game

import (
	"math"

	"koozle/pkg/core"
)

// InventoryEntry is an owned item stack.
type InventoryEntry struct {
	Item  Item
	Count int
}

// Inventory is an ordered list of stacks keyed by item id. Add returns a new
// Inventory; the receiver's backing array is never written.
type Inventory []InventoryEntry

// Add puts count copies of the catalog item id into the inventory. Unknown
// ids and non-positive counts leave it unchanged.
func (inv Inventory) Add(cat *Catalog, id string, count int) Inventory {
	if count <= 0 {
		return inv
	}
	it, ok := cat.Item(id)
	if !ok {
		return inv
	}
	next := make(Inventory, len(inv), len(inv)+1)
	copy(next, inv)
	for i := range next {
		if next[i].Item.ID == id {
			next[i].Count += count
			return next
		}
	}
	return append(next, InventoryEntry{Item: it, Count: count})
}

// Count returns how many of id are held.
func (inv Inventory) Count(id string) int {
	for _, e := range inv {
		if e.Item.ID == id {
			return e.Count
		}
	}
	return 0
}

// Has reports whether id is held.
func (inv Inventory) Has(id string) bool { return inv.Count(id) > 0 }

// HPBonus sums flat HP bonuses, each multiplied by its stack count.
func (inv Inventory) HPBonus() int {
	total := 0
	for _, e := range inv {
		total += e.Item.HPBonus * e.Count
	}
	return total
}

// XPMultiplier compounds xp modifiers, each raised to its stack count.
func (inv Inventory) XPMultiplier() float64 {
	mult := 1.0
	for _, e := range inv {
		if e.Item.XPMod != 0 {
			mult *= math.Pow(e.Item.XPMod, float64(e.Count))
		}
	}
	return mult
}

// ActiveRuleMod returns the rule modifier of the first held item that has
// one, or "" for the classic rule.
func (inv Inventory) ActiveRuleMod() string {
	for _, e := range inv {
		if e.Item.Rule != "" {
			return e.Item.Rule
		}
	}
	return ""
}

// PickRandomItem chooses uniformly among catalog items not yet held. When
// every item is already held it falls back to the first catalog item.
func PickRandomItem(cat *Catalog, inv Inventory, rng core.Source) (Item, bool) {
	var pool []Item
	for _, it := range cat.Items {
		if !inv.Has(it.ID) {
			pool = append(pool, it)
		}
	}
	if len(pool) == 0 {
		if len(cat.Items) == 0 {
			return Item{}, false
		}
		return cat.Items[0], true
	}
	return pool[rng.IntN(len(pool))], true
}
