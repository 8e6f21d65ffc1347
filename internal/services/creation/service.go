// Package creation builds new player characters from race, birthsign and
// class choices
package creation

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hunlreev/console-quest-rpg/internal/catalog"
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/clock"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/idgen"
)

// MaxNameLength bounds character names
const MaxNameLength = 32

// Service creates characters
type Service interface {
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
}

// CreateInput defines the request for creating a character
type CreateInput struct {
	Name      string
	Sex       string
	Race      string
	Birthsign string
	Class     string
}

// CreateOutput defines the response for creating a character
type CreateOutput struct {
	Player *entities.Player
}

// Config holds the dependencies for the creation service
type Config struct {
	Catalog     *catalog.Catalog
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type service struct {
	catalog *catalog.Catalog
	idGen   idgen.Generator
	clock   clock.Clock
}

// NewService creates a creation service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &service{
		catalog: cfg.Catalog,
		idGen:   cfg.IDGenerator,
		clock:   c,
	}, nil
}

func (s *service) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	vb := errors.NewValidationBuilder()
	if len(name) > MaxNameLength {
		vb.Fieldf("Name", "must be at most %d characters", MaxNameLength)
	}

	race, ok := s.catalog.Race(input.Race)
	if !ok {
		vb.InvalidField("Race", "unknown race "+strconv.Quote(input.Race))
	}
	birthsign, ok := s.catalog.Birthsign(input.Birthsign)
	if !ok {
		vb.InvalidField("Birthsign", "unknown birthsign "+strconv.Quote(input.Birthsign))
	}
	class, ok := s.catalog.Class(input.Class)
	if !ok {
		vb.InvalidField("Class", "unknown class "+strconv.Quote(input.Class))
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	attrs := ApplyModifiers(race.Attributes, birthsign, class)

	p := entities.NewPlayer(entities.PlayerConfig{
		ID:         s.idGen.Generate(),
		Name:       name,
		Sex:        strings.TrimSpace(input.Sex),
		Race:       race.Name,
		Birthsign:  birthsign.Name,
		Class:      class.Name,
		Attributes: attrs,
		CreatedAt:  s.clock.Now(),
	})

	slog.InfoContext(ctx, "character created",
		"player_id", p.ID,
		"name", p.Name,
		"race", p.Race,
		"birthsign", p.Birthsign,
		"class", p.Class)

	return &CreateOutput{Player: p}, nil
}

// ApplyModifiers adds each modifier's deltas to base and clamps the result
func ApplyModifiers(base entities.Attributes, modifiers ...catalog.Modifier) entities.Attributes {
	out := base
	for _, m := range modifiers {
		for _, a := range entities.AllAttributes {
			out.Add(a, m.Deltas.Get(a))
		}
	}
	return out.Clamped()
}
