package game

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// MobType is a static mob definition. Live cells refer to it by index.
type MobType struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Color    string `yaml:"color"`
	Damage   int    `yaml:"damage"`
	XPReward int    `yaml:"xp_reward"`
	Rule     string `yaml:"rule,omitempty"`
	Behavior string `yaml:"behavior,omitempty"`
}

// Item is a static item definition.
type Item struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Rule        string  `yaml:"rule,omitempty"`
	HPBonus     int     `yaml:"hp_bonus,omitempty"`
	XPMod       float64 `yaml:"xp_mod,omitempty"`
}

// Catalog holds the ordered mob and item tables. It is loaded once and never
// mutated afterwards.
type Catalog struct {
	PixelTypes int       `yaml:"pixel_types"`
	Mobs       []MobType `yaml:"mobs"`
	Items      []Item    `yaml:"items"`
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() *Catalog {
	cat, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return cat
}

// LoadCatalog reads a catalog file. An empty path yields the embedded one.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes and validates YAML catalog data.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Catalog) validate() error {
	if len(c.Mobs) == 0 {
		return fmt.Errorf("catalog has no mobs")
	}
	if c.PixelTypes <= 0 || c.PixelTypes > len(c.Mobs) {
		c.PixelTypes = len(c.Mobs)
	}
	seen := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if it.ID == "" {
			return fmt.Errorf("item %q has no id", it.Name)
		}
		if seen[it.ID] {
			return fmt.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}

// Mob returns the mob at index i.
func (c *Catalog) Mob(i int) (MobType, bool) {
	if i < 0 || i >= len(c.Mobs) {
		return MobType{}, false
	}
	return c.Mobs[i], true
}

// MobByID looks a mob up by id.
func (c *Catalog) MobByID(id string) (MobType, bool) {
	for _, m := range c.Mobs {
		if m.ID == id {
			return m, true
		}
	}
	return MobType{}, false
}

// Item looks an item up by id.
func (c *Catalog) Item(id string) (Item, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// TypeRules lists each mob's rule modifier by index, as the engine expects.
func (c *Catalog) TypeRules() []string {
	rules := make([]string, len(c.Mobs))
	for i, m := range c.Mobs {
		rules[i] = m.Rule
	}
	return rules
}
