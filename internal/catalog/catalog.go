// Package catalog holds the static game data: enemy templates, drops, shop
// prices, character creation options and explorable locations.
//
// Table files are read once when a Catalog is loaded. A missing or
// malformed file never aborts loading; the affected rows are dropped with a
// warning and lookups against them report "not found".
package catalog

import (
	"embed"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
)

// Table file names inside a catalog directory
const (
	DropTableFile     = "enemy_drops.txt"
	ShopInventoryFile = "shop_inventory.txt"
	ShopNeedsFile     = "shop_needs.txt"
)

//go:embed data/*.txt
var embedded embed.FS

// Catalog is the loaded game data. It is read-only after loading.
type Catalog struct {
	drops     []DropRule
	inventory []PriceRange
	needs     []PriceRange
}

// Default returns the catalog built from the embedded tables
func Default() *Catalog {
	data, err := fs.Sub(embedded, "data")
	if err != nil {
		// the embed pattern guarantees the directory exists
		panic(err)
	}
	return Load(data)
}

// Load reads the table files from fsys
func Load(fsys fs.FS) *Catalog {
	c := &Catalog{}

	if f, ok := openTable(fsys, DropTableFile); ok {
		c.drops = ParseDropTable(f, DropTableFile)
		_ = f.Close()
	}
	if f, ok := openTable(fsys, ShopInventoryFile); ok {
		c.inventory = ParsePriceTable(f, ShopInventoryFile)
		_ = f.Close()
	}
	if f, ok := openTable(fsys, ShopNeedsFile); ok {
		c.needs = ParsePriceTable(f, ShopNeedsFile)
		_ = f.Close()
	}

	slog.Debug("catalog loaded",
		"drop_rules", len(c.drops),
		"shop_items", len(c.inventory),
		"shop_needs", len(c.needs))

	return c
}

func openTable(fsys fs.FS, name string) (fs.File, bool) {
	f, err := fsys.Open(name)
	if err != nil {
		slog.Warn("catalog table unavailable", "file", name, "error", err)
		return nil, false
	}
	return f, true
}

// EnemyTypes lists every enemy type that can be generated
func (c *Catalog) EnemyTypes() []string {
	types := make([]string, len(enemyTemplates))
	for i, t := range enemyTemplates {
		types[i] = t.Type
	}
	return types
}

// EnemyTemplate returns the base attributes for an enemy type
func (c *Catalog) EnemyTemplate(enemyType string) (entities.Attributes, bool) {
	for _, t := range enemyTemplates {
		if t.Type == enemyType {
			return t.Attributes, true
		}
	}
	return entities.Attributes{}, false
}

// DefaultEnemyTemplate is used for types without a template
func (c *Catalog) DefaultEnemyTemplate() entities.Attributes {
	return defaultEnemyTemplate
}

// DropFor returns the first drop rule for an enemy type
func (c *Catalog) DropFor(enemyType string) (DropRule, bool) {
	for _, rule := range c.drops {
		if rule.EnemyType == enemyType {
			return rule, true
		}
	}
	return DropRule{}, false
}

// ShopInventory lists what the shop sells
func (c *Catalog) ShopInventory() []PriceRange {
	return slices.Clone(c.inventory)
}

// ShopNeeds lists what the shop buys
func (c *Catalog) ShopNeeds() []PriceRange {
	return slices.Clone(c.needs)
}

// ShopNeed returns the buy range for an item
func (c *Catalog) ShopNeed(item string) (PriceRange, bool) {
	for _, p := range c.needs {
		if strings.EqualFold(p.Name, item) {
			return p, true
		}
	}
	return PriceRange{}, false
}

// Races lists the playable races
func (c *Catalog) Races() []Race {
	return slices.Clone(races)
}

// Race looks up a race by case-insensitive name
func (c *Catalog) Race(name string) (Race, bool) {
	return findNamed(races, name, func(r Race) string { return r.Name })
}

// Birthsigns lists the birthsigns
func (c *Catalog) Birthsigns() []Modifier {
	return slices.Clone(birthsigns)
}

// Birthsign looks up a birthsign by case-insensitive name
func (c *Catalog) Birthsign(name string) (Modifier, bool) {
	return findNamed(birthsigns, name, func(m Modifier) string { return m.Name })
}

// Classes lists the classes
func (c *Catalog) Classes() []Modifier {
	return slices.Clone(classes)
}

// Class looks up a class by case-insensitive name
func (c *Catalog) Class(name string) (Modifier, bool) {
	return findNamed(classes, name, func(m Modifier) string { return m.Name })
}

// Locations lists the places a player can explore
func (c *Catalog) Locations() []string {
	return slices.Clone(locations)
}

// ExplorationTimes lists the possible exploration lengths
func (c *Catalog) ExplorationTimes() []ExplorationTime {
	return slices.Clone(explorationTimes)
}

func findNamed[T any](items []T, name string, nameOf func(T) string) (T, bool) {
	name = strings.TrimSpace(name)
	for _, item := range items {
		if strings.EqualFold(nameOf(item), name) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
