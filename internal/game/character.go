package game

import "math"

const (
	baseHP          = 100
	baseXPPerLevel  = 50
	xpGrowth        = 1.2
	hpPerLevel      = 10
	levelFloorSlack = 1e-9
)

// Character holds the stored stats. Effective max HP and the displayed
// xp-to-next depend on the inventory and are derived by Effective.
type Character struct {
	Level     int
	HP        int
	BaseMaxHP int
	XP        int
}

// Stats is the derived view of a character for display.
type Stats struct {
	Level    int
	HP       int
	MaxHP    int
	XP       int
	XPToNext int
}

// NewCharacter returns a level 1 character at full health.
func NewCharacter() Character {
	return Character{Level: 1, HP: baseHP, BaseMaxHP: baseHP}
}

// XPRequirement is the experience needed to leave level. Each level is
// computed independently as floor(50 × 1.2^(level-1)).
func XPRequirement(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(baseXPPerLevel*math.Pow(xpGrowth, float64(level-1)) + levelFloorSlack))
}

// Effective derives max HP and xp-to-next from inv.
func (c Character) Effective(inv Inventory) Stats {
	mult := inv.XPMultiplier()
	return Stats{
		Level:    c.Level,
		HP:       c.HP,
		MaxHP:    c.BaseMaxHP + inv.HPBonus(),
		XP:       c.XP,
		XPToNext: int(math.Floor(float64(XPRequirement(c.Level))/mult + levelFloorSlack)),
	}
}

// MaxHP returns the effective maximum HP under inv.
func (c Character) MaxHP(inv Inventory) int { return c.BaseMaxHP + inv.HPBonus() }

// AddXP grants amount experience, levelling up as many times as the total
// allows. Every level gained adds 10 base max HP. HP is then clamped to the
// effective maximum.
func (c Character) AddXP(amount int, inv Inventory) Character {
	c.XP += amount
	gained := 0
	for need := XPRequirement(c.Level); c.XP >= need; need = XPRequirement(c.Level) {
		c.XP -= need
		c.Level++
		gained++
	}
	c.BaseMaxHP += gained * hpPerLevel
	return c.Clamp(inv)
}

// TakeDamage lowers HP, never below 0. Negative damage is ignored.
func (c Character) TakeDamage(amount int) Character {
	if amount < 0 {
		amount = 0
	}
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
	return c
}

// Clamp caps HP at the effective maximum under inv.
func (c Character) Clamp(inv Inventory) Character {
	if limit := c.MaxHP(inv); c.HP > limit {
		c.HP = limit
	}
	return c
}

// Dead reports whether HP has reached zero.
func (c Character) Dead() bool { return c.HP <= 0 }
