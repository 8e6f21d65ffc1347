// Package builders provides fluent builders for test players
package builders

import (
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/testutils"
)

// PlayerBuilder adjusts a fixture player step by step
type PlayerBuilder struct {
	player *entities.Player
}

// NewPlayerBuilder starts from testutils.CreateTestPlayer
func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{player: testutils.CreateTestPlayer()}
}

// WithID sets the player ID
func (b *PlayerBuilder) WithID(id string) *PlayerBuilder {
	b.player.ID = id
	return b
}

// WithName sets the player name
func (b *PlayerBuilder) WithName(name string) *PlayerBuilder {
	b.player.Name = name
	return b
}

// WithAttributes replaces every attribute and refills the pools
func (b *PlayerBuilder) WithAttributes(attrs entities.Attributes) *PlayerBuilder {
	b.player.Attributes = attrs.Clamped()
	b.player.RecomputeAndRestore()
	return b
}

// WithLevel sets the level and refills the pools
func (b *PlayerBuilder) WithLevel(level int) *PlayerBuilder {
	b.player.Level = level
	b.player.RecomputeAndRestore()
	return b
}

// WithExperience sets the current experience
func (b *PlayerBuilder) WithExperience(exp int) *PlayerBuilder {
	b.player.Experience = exp
	return b
}

// WithGold sets the gold
func (b *PlayerBuilder) WithGold(gold int) *PlayerBuilder {
	b.player.Gold = gold
	return b
}

// WithItem adds count of name to the inventory
func (b *PlayerBuilder) WithItem(name string, count int) *PlayerBuilder {
	b.player.AddItem(name, count)
	return b
}

// WithHealth sets current health without touching the maximum
func (b *PlayerBuilder) WithHealth(current float64) *PlayerBuilder {
	b.player.Resources.Health.Current = current
	return b
}

// Build returns the player
func (b *PlayerBuilder) Build() *entities.Player {
	return b.player
}
