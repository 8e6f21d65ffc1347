// Package idgen generates the IDs of players, enemies and encounters.
// Player IDs double as save file names and Redis keys, so every ID is a
// prefix, an underscore and a path-safe suffix.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Prefixes used by the game
const (
	PrefixPlayer    = "player"
	PrefixEnemy     = "enemy"
	PrefixEncounter = "encounter"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates random UUID-based IDs
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator. An empty prefix yields bare UUIDs.
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

// SequentialGenerator numbers IDs from 1 for tests and seeded replays.
// It is safe for concurrent use.
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next ID in the sequence
func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
