package catalog

import "github.com/hunlreev/console-quest-rpg/internal/entities"

// EnemyTemplate pairs an enemy type with its level 0 attributes
type EnemyTemplate struct {
	Type       string
	Attributes entities.Attributes
}

// Race is a playable race and its starting attributes
type Race struct {
	Name        string
	Description string
	Attributes  entities.Attributes
}

// Modifier is a birthsign or class. Deltas are added to the race
// attributes and may be negative.
type Modifier struct {
	Name        string
	Description string
	Deltas      entities.Attributes
}

// ExplorationTime is how long an exploration takes
type ExplorationTime struct {
	Seconds     int
	Description string
}

func attrs(str, end, intel, wil, agi, spd int) entities.Attributes {
	return entities.Attributes{
		Strength:     str,
		Endurance:    end,
		Intelligence: intel,
		Willpower:    wil,
		Agility:      agi,
		Speed:        spd,
	}
}

var enemyTemplates = []EnemyTemplate{
	{Type: "Mercenary", Attributes: attrs(45, 35, 45, 35, 45, 35)},
	{Type: "Imp", Attributes: attrs(35, 35, 45, 45, 35, 45)},
	{Type: "Ogre", Attributes: attrs(55, 55, 30, 30, 40, 30)},
	{Type: "Goblin", Attributes: attrs(30, 30, 55, 55, 30, 40)},
	{Type: "Giant Crab", Attributes: attrs(50, 50, 30, 30, 20, 60)},
	{Type: "Skeleton", Attributes: attrs(30, 30, 50, 50, 60, 20)},
	{Type: "Bandit", Attributes: attrs(35, 45, 35, 45, 35, 45)},
}

var defaultEnemyTemplate = attrs(25, 25, 25, 25, 25, 25)

var races = []Race{
	{
		Name:        "Human",
		Description: "Found in every corner of the world. Balanced in every attribute.",
		Attributes:  attrs(40, 40, 40, 40, 40, 40),
	},
	{
		Name:        "Elf",
		Description: "Scholars of the southeastern mountains. Superior Intelligence and Willpower.",
		Attributes:  attrs(30, 35, 50, 45, 40, 40),
	},
	{
		Name:        "Orc",
		Description: "Strongholds along the western coast. High Strength and Endurance.",
		Attributes:  attrs(50, 45, 30, 35, 40, 40),
	},
	{
		Name:        "Lynxarite",
		Description: "Cat-like wanderers of the equator. Higher Agility than most.",
		Attributes:  attrs(35, 30, 45, 40, 50, 40),
	},
	{
		Name:        "Scalekin",
		Description: "Reptile-like athletes of the southern marshes. Speed like none other.",
		Attributes:  attrs(45, 40, 35, 30, 40, 50),
	},
}

var birthsigns = []Modifier{
	{
		Name:        "The Knight",
		Description: "Stronger and hardier, but slower and weaker at spellcasting.",
		Deltas:      entities.Attributes{Strength: 5, Endurance: 5, Willpower: -5, Speed: -5},
	},
	{
		Name:        "The Magistar",
		Description: "Smart and diligent, but clumsy with less health overall.",
		Deltas:      entities.Attributes{Intelligence: 5, Willpower: 5, Endurance: -5, Agility: -5},
	},
	{
		Name:        "The Shadow",
		Description: "Quick on their feet, but less effective with magic.",
		Deltas:      entities.Attributes{Agility: 5, Speed: 5, Intelligence: -5, Willpower: -5},
	},
}

var classes = []Modifier{
	{
		Name:        "Warrior",
		Description: "Swords, maces, axes and heavy armor. Defensive with a large health pool.",
		Deltas:      entities.Attributes{Strength: 5, Endurance: 5, Speed: -5},
	},
	{
		Name:        "Mage",
		Description: "Staves, spellmagic and enchantments. Excellent magic users.",
		Deltas:      entities.Attributes{Intelligence: 5, Willpower: 5, Agility: -5},
	},
	{
		Name:        "Rogue",
		Description: "Stealth, critical hits and light armor. Fragile when caught.",
		Deltas:      entities.Attributes{Agility: 5, Speed: 5, Endurance: -5},
	},
}

var locations = []string{
	entities.DefaultLocation,
	"Foggy Forest",
	"Desolate Cave",
	"Knoll Mountain",
	"Sandy Beach",
	"Abandoned Fort",
	"Sacked Camp",
}

var explorationTimes = []ExplorationTime{
	{Seconds: 1, Description: "a quick adventure"},
	{Seconds: 2, Description: "a short, nearby exploration"},
	{Seconds: 3, Description: "a long journey"},
	{Seconds: 4, Description: "a huge campaign and get lost"},
}
