// Package progression handles leveling and attribute point allocation
package progression

//go:generate mockgen -destination=mock/mock_allocator.go -package=progressionmock github.com/hunlreev/console-quest-rpg/internal/services/progression PointAllocator

import (
	"context"
	"log/slog"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

const (
	// DefaultLevelCap is the highest level experience can carry a player to
	DefaultLevelCap = 50

	// MaxRejectedAllocations ends an allocation loop that keeps choosing
	// attributes that cannot be raised
	MaxRejectedAllocations = 25
)

// PointAllocator chooses where unspent attribute points go. Returning
// false ends allocation and leaves the remaining points unspent.
type PointAllocator interface {
	NextAllocation(ctx context.Context, player *entities.Player) (entities.Attribute, bool, error)
}

// Service applies level-ups
type Service interface {
	// LevelUp grants the level's points, lets the allocator spend them and
	// completes the level
	LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error)

	// SpendPoints lets the allocator spend points already on hand
	SpendPoints(ctx context.Context, input *SpendPointsInput) (*SpendPointsOutput, error)

	// CanLevelUp reports whether the player has a pending level-up
	CanLevelUp(player *entities.Player) bool

	// LevelCap is the configured level cap
	LevelCap() int
}

// LevelUpInput defines the request for a level-up
type LevelUpInput struct {
	Player    *entities.Player
	Allocator PointAllocator
}

// LevelUpOutput defines the response for a level-up
type LevelUpOutput struct {
	Level           int
	Allocated       []entities.Attribute
	Rejected        int
	PointsRemaining int
}

// SpendPointsInput defines the request for spending unspent points
type SpendPointsInput struct {
	Player    *entities.Player
	Allocator PointAllocator
}

// SpendPointsOutput defines the response for spending unspent points
type SpendPointsOutput struct {
	Allocated       []entities.Attribute
	Rejected        int
	PointsRemaining int
}

// Config holds the settings for the progression service
type Config struct {
	// LevelCap defaults to DefaultLevelCap when zero
	LevelCap int
}

// Validate ensures the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.LevelCap < 0 {
		vb.InvalidField("LevelCap", "must not be negative")
	}

	return vb.Build()
}

type service struct {
	levelCap int
}

// NewService creates a progression service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	levelCap := cfg.LevelCap
	if levelCap == 0 {
		levelCap = DefaultLevelCap
	}

	return &service{levelCap: levelCap}, nil
}

func (s *service) LevelCap() int {
	return s.levelCap
}

func (s *service) CanLevelUp(player *entities.Player) bool {
	return player != nil && player.CanLevelUp(s.levelCap)
}

// LevelUp completes the level even when the allocator fails, so the
// player is never left holding granted points on the old level. The
// allocator error is still returned.
func (s *service) LevelUp(ctx context.Context, input *LevelUpInput) (*LevelUpOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Allocator == nil {
		return nil, errors.InvalidArgument("allocator is required")
	}

	p := input.Player
	if !s.CanLevelUp(p) {
		return nil, errors.FailedPreconditionf("%s cannot level up (level %d, experience %d/%d)",
			p.Name, p.Level, p.Experience, p.NextExperience)
	}

	p.GrantLevelUpPoints()
	allocated, rejected, allocErr := s.allocate(ctx, p, input.Allocator)
	p.CompleteLevelUp()

	slog.InfoContext(ctx, "player leveled up",
		"player_id", p.ID,
		"level", p.Level,
		"allocated", len(allocated),
		"rejected", rejected,
		"points_remaining", p.AttributePoints,
		"next_experience", p.NextExperience)

	if allocErr != nil {
		return nil, errors.Wrap(allocErr, "failed to allocate attribute points")
	}

	return &LevelUpOutput{
		Level:           p.Level,
		Allocated:       allocated,
		Rejected:        rejected,
		PointsRemaining: p.AttributePoints,
	}, nil
}

func (s *service) SpendPoints(ctx context.Context, input *SpendPointsInput) (*SpendPointsOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Allocator == nil {
		return nil, errors.InvalidArgument("allocator is required")
	}
	if input.Player.AttributePoints <= 0 {
		return nil, errors.FailedPrecondition("no attribute points to spend")
	}

	allocated, rejected, err := s.allocate(ctx, input.Player, input.Allocator)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate attribute points")
	}

	return &SpendPointsOutput{
		Allocated:       allocated,
		Rejected:        rejected,
		PointsRemaining: input.Player.AttributePoints,
	}, nil
}

// allocate asks for attributes until the allocator is done, the points
// run out or too many choices in a row are rejected. Rejected choices keep
// their point.
func (s *service) allocate(ctx context.Context, p *entities.Player, allocator PointAllocator) ([]entities.Attribute, int, error) {
	var allocated []entities.Attribute
	rejected := 0
	streak := 0

	for p.AttributePoints > 0 && streak < MaxRejectedAllocations {
		attr, ok, err := allocator.NextAllocation(ctx, p)
		if err != nil {
			return allocated, rejected, err
		}
		if !ok {
			break
		}

		if err := p.AllocatePoint(attr); err != nil {
			rejected++
			streak++
			slog.DebugContext(ctx, "attribute allocation rejected",
				"player_id", p.ID,
				"attribute", attr.String(),
				"reason", errors.GetMessage(err))
			continue
		}

		streak = 0
		allocated = append(allocated, attr)
	}

	return allocated, rejected, nil
}
