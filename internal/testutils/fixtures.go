package testutils

import (
	"time"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
)

// Fixture values shared across packages
const (
	TestPlayerID   = "player_test_001"
	TestPlayerName = "Ayla"
)

// TestCreatedAt is the creation stamp of CreateTestPlayer
var TestCreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// CreateTestPlayer returns a level 1 Human with all attributes at 40 and a
// small inventory
func CreateTestPlayer() *entities.Player {
	p := entities.NewPlayer(entities.PlayerConfig{
		ID:         TestPlayerID,
		Name:       TestPlayerName,
		Sex:        "Female",
		Race:       "Human",
		Birthsign:  "The Knight",
		Class:      "Warrior",
		Attributes: entities.Attributes{Strength: 40, Endurance: 40, Intelligence: 40, Willpower: 40, Agility: 40, Speed: 40},
		CreatedAt:  TestCreatedAt,
	})
	p.Gold = 25
	p.AddItem("Bone", 2)
	return p
}
