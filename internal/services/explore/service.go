// Package explore moves a player to a random location and decides whether
// an enemy is waiting there
package explore

import (
	"context"
	"log/slog"

	"github.com/hunlreev/console-quest-rpg/internal/catalog"
	"github.com/hunlreev/console-quest-rpg/internal/dice"
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

// DefaultEncounterRate is the chance an exploration ends in a fight
const DefaultEncounterRate = 0.67

// Service explores
type Service interface {
	Explore(ctx context.Context, input *ExploreInput) (*ExploreOutput, error)
}

// ExploreInput defines the request for an exploration
type ExploreInput struct {
	Player *entities.Player
}

// ExploreOutput defines the response for an exploration
type ExploreOutput struct {
	Location string
	Duration catalog.ExplorationTime
	// Encounter is true when the caller should start a fight
	Encounter bool
}

// Config holds the dependencies for the explore service
type Config struct {
	Random        dice.Source
	Catalog       *catalog.Catalog
	EncounterRate float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	errors.ValidateFraction("EncounterRate", c.EncounterRate, vb)

	return vb.Build()
}

type service struct {
	random        dice.Source
	catalog       *catalog.Catalog
	encounterRate float64
}

// NewService creates an explore service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		random:        cfg.Random,
		catalog:       cfg.Catalog,
		encounterRate: cfg.EncounterRate,
	}, nil
}

// Explore draws the location, then the duration, then the encounter roll
func (s *service) Explore(ctx context.Context, input *ExploreInput) (*ExploreOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}

	locations := s.catalog.Locations()
	times := s.catalog.ExplorationTimes()
	if len(locations) == 0 || len(times) == 0 {
		return nil, errors.FailedPrecondition("nowhere to explore")
	}

	out := &ExploreOutput{
		Location: locations[dice.Index(s.random, len(locations))],
		Duration: times[dice.Index(s.random, len(times))],
	}
	out.Encounter = s.random.Float64() < s.encounterRate

	input.Player.Location = out.Location

	slog.InfoContext(ctx, "player explored",
		"player_id", input.Player.ID,
		"location", out.Location,
		"duration_seconds", out.Duration.Seconds,
		"encounter", out.Encounter)

	return out, nil
}
