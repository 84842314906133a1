package game

import (
	"koozle/pkg/core"
	"koozle/pkg/sims/life"
)

// Encounter summarises the mobs left standing in a finished room.
type Encounter struct {
	Mobs   []MobType
	Damage int
	XP     int
}

// Census lists the mob definition of every live cell in row-major order.
// Live cells whose index is missing from the catalog are skipped.
func Census(r Room, cat *Catalog) []MobType {
	var out []MobType
	for row := 0; row < r.Grid.Rows; row++ {
		for col := 0; col < r.Grid.Cols; col++ {
			if r.Grid.At(row, col) != life.Alive {
				continue
			}
			if m, ok := cat.Mob(r.Mobs.At(row, col)); ok {
				out = append(out, m)
			}
		}
	}
	return out
}

// ResolveEncounter totals the damage and xp of mobs.
func ResolveEncounter(mobs []MobType) Encounter {
	enc := Encounter{Mobs: mobs}
	for _, m := range mobs {
		enc.Damage += m.Damage
		enc.XP += m.XPReward
	}
	return enc
}

// Tally groups an encounter's mobs by id, preserving first-seen order.
func (e Encounter) Tally() []MobCount {
	var out []MobCount
	index := map[string]int{}
	for _, m := range e.Mobs {
		if i, ok := index[m.ID]; ok {
			out[i].Count++
			continue
		}
		index[m.ID] = len(out)
		out = append(out, MobCount{Mob: m, Count: 1})
	}
	return out
}

// MobCount is one row of an encounter tally.
type MobCount struct {
	Mob   MobType
	Count int
}

// RewardResult is the outcome of ApplyRoomReward.
type RewardResult struct {
	Character Character
	Inventory Inventory
	Dropped   *Item
	Dead      bool
}

// ApplyRoomReward applies an encounter to the character: damage first (a
// character at 0 HP is dead), then baseXP plus the encounter's xp through
// levelling, then recomputed stats with HP clamped, and finally an item drop
// with probability dropChance.
func ApplyRoomReward(c Character, inv Inventory, baseXP int, enc Encounter, dropChance float64, cat *Catalog, rng core.Source) RewardResult {
	c = c.TakeDamage(enc.Damage)
	res := RewardResult{Dead: c.Dead()}
	c = c.AddXP(baseXP+enc.XP, inv)
	if core.Chance(rng, dropChance) {
		if it, ok := PickRandomItem(cat, inv, rng); ok {
			inv = inv.Add(cat, it.ID, 1)
			res.Dropped = &it
			c = c.Clamp(inv)
		}
	}
	res.Character = c
	res.Inventory = inv
	return res
}
