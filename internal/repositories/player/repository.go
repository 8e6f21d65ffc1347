// Package player persists player snapshots. Each player is stored as one
// JSON document; every backend stamps SavedAt on save.
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/hunlreev/console-quest-rpg/internal/repositories/player Repository

import (
	"context"
	"time"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
)

// Repository defines the interface for player persistence
type Repository interface {
	// Save writes the snapshot, replacing any previous one with the same ID
	// Returns errors.InvalidArgument for a missing player or invalid ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads a snapshot by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.DataLoss if the stored snapshot cannot be decoded
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// List summarizes every readable save, ordered by ID. IDs whose
	// snapshot cannot be decoded are reported in Corrupt instead.
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a snapshot by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Close releases the backend
	Close() error
}

// SaveInput defines the input for saving a player
type SaveInput struct {
	Player *entities.Player
}

// SaveOutput defines the output for saving a player
type SaveOutput struct {
	SavedAt time.Time
}

// LoadInput defines the input for loading a player
type LoadInput struct {
	ID string
}

// LoadOutput defines the output for loading a player
type LoadOutput struct {
	Player *entities.Player
}

// ListInput defines the input for listing saves
type ListInput struct{}

// ListOutput defines the output for listing saves
type ListOutput struct {
	Summaries []Summary
	Corrupt   []string
}

// Summary is the part of a snapshot shown in a save list
type Summary struct {
	ID      string
	Name    string
	Level   int
	SavedAt time.Time
}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct{}
