package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	require.Len(t, cat.Mobs, 12)
	require.Len(t, cat.Items, 5)
	assert.Equal(t, 4, cat.PixelTypes)

	slime, ok := cat.Mob(0)
	require.True(t, ok)
	assert.Equal(t, "slime", slime.ID)
	assert.Equal(t, 2, slime.Damage)
	assert.Equal(t, 5, slime.XPReward)

	pent, ok := cat.MobByID("pentomino")
	require.True(t, ok)
	assert.Equal(t, 7, pent.Damage)
	assert.Equal(t, 18, pent.XPReward)

	_, ok = cat.Mob(12)
	assert.False(t, ok)
	_, ok = cat.Mob(-1)
	assert.False(t, ok)

	gem, ok := cat.Item("xp_gem")
	require.True(t, ok)
	assert.InDelta(t, 1.25, gem.XPMod, 1e-9)
	_, ok = cat.Item("nope")
	assert.False(t, ok)

	rules := cat.TypeRules()
	require.Len(t, rules, 12)
	assert.Equal(t, "", rules[0])
	assert.Equal(t, "S1234", rules[1])
}

func TestParseCatalogErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
	}{
		{"bad yaml", "mobs: [:"},
		{"no mobs", "items: []"},
		{"item without id", "mobs: [{id: a}]\nitems: [{name: X}]"},
		{"duplicate item", "mobs: [{id: a}]\nitems: [{id: x}, {id: x}]"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestParseCatalogClampsPixelTypes(t *testing.T) {
	cat, err := ParseCatalog([]byte("pixel_types: 9\nmobs: [{id: a}, {id: b}]"))
	require.NoError(t, err)
	assert.Equal(t, 2, cat.PixelTypes)

	cat, err = ParseCatalog([]byte("mobs: [{id: a}, {id: b}]"))
	require.NoError(t, err)
	assert.Equal(t, 2, cat.PixelTypes)
}

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Len(t, cat.Mobs, 12)

	path := filepath.Join(t.TempDir(), "cat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pixel_types: 1\nmobs:\n  - id: only\n    damage: 9\n"), 0o644))
	cat, err = LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, cat.Mobs, 1)
	assert.Equal(t, 9, cat.Mobs[0].Damage)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
