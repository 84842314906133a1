package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"koozle/pkg/core"
)

func TestInventoryAdd(t *testing.T) {
	cat := DefaultCatalog()
	var inv Inventory

	a := inv.Add(cat, "lens", 1)
	b := a.Add(cat, "lens", 2)
	assert.Equal(t, 0, inv.Count("lens"))
	assert.Equal(t, 1, a.Count("lens"))
	assert.Equal(t, 3, b.Count("lens"))
	assert.Len(t, b, 1)

	assert.Equal(t, b, b.Add(cat, "unknown", 1))
	assert.Equal(t, b, b.Add(cat, "xp_gem", 0))
	assert.False(t, b.Has("xp_gem"))
}

func TestInventoryModifiers(t *testing.T) {
	cat := DefaultCatalog()
	inv := Inventory(nil).
		Add(cat, "heart_amulet", 2).
		Add(cat, "xp_gem", 2).
		Add(cat, "chaos_seed", 1).
		Add(cat, "lens", 1)

	assert.Equal(t, 40, inv.HPBonus())
	assert.InDelta(t, 1.5625, inv.XPMultiplier(), 1e-9)
	assert.Equal(t, "B23/S36", inv.ActiveRuleMod())

	assert.Equal(t, "", Inventory(nil).ActiveRuleMod())
	assert.InDelta(t, 1.0, Inventory(nil).XPMultiplier(), 1e-9)
}

func TestPickRandomItem(t *testing.T) {
	cat := DefaultCatalog()
	inv := Inventory(nil).Add(cat, "lens", 1).Add(cat, "chaos_seed", 1)

	for i := 0; i < 3; i++ {
		it, ok := PickRandomItem(cat, inv, &core.Script{Ints: []int{i}})
		require.True(t, ok)
		assert.False(t, inv.Has(it.ID), "picked held item %s", it.ID)
	}

	for _, it := range cat.Items {
		inv = inv.Add(cat, it.ID, 1)
	}
	it, ok := PickRandomItem(cat, inv, core.NewRNG(1))
	require.True(t, ok)
	assert.Equal(t, cat.Items[0].ID, it.ID)

	_, ok = PickRandomItem(&Catalog{Mobs: cat.Mobs}, nil, core.NewRNG(1))
	assert.False(t, ok)
}
