// Package enemy generates the opponent for an encounter
package enemy

//go:generate mockgen -destination=mock/mock_service.go -package=enemymock github.com/hunlreev/console-quest-rpg/internal/services/enemy Service

import (
	"context"
	"log/slog"

	"github.com/hunlreev/console-quest-rpg/internal/catalog"
	"github.com/hunlreev/console-quest-rpg/internal/dice"
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/idgen"
)

const (
	// DefaultScalingFactor is added to each template attribute per player level
	DefaultScalingFactor = 0.6

	// DefaultLevelThreshold is how far an enemy level may stray from the player's
	DefaultLevelThreshold = 2
)

// Service creates enemies scaled to a player
type Service interface {
	// Generate builds a complete enemy with loot
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// SelectType draws one of the catalog enemy types
	SelectType(ctx context.Context) string

	// GenerateLevel draws a level within threshold of playerLevel, at least 1
	GenerateLevel(ctx context.Context, playerLevel, threshold int) int

	// ComputeLoot rolls the experience, gold and item an enemy yields
	ComputeLoot(ctx context.Context, enemyType string, level int) entities.Loot
}

// GenerateInput defines the request for generating an enemy
type GenerateInput struct {
	PlayerLevel int
	Threshold   int
	// Type forces an enemy type instead of drawing one
	Type string
}

// GenerateOutput defines the response for generating an enemy
type GenerateOutput struct {
	Enemy *entities.Enemy
}

// Config holds the dependencies for the enemy service
type Config struct {
	Random      dice.Source
	Catalog     *catalog.Catalog
	IDGenerator idgen.Generator
	// ScalingFactor defaults to DefaultScalingFactor when zero
	ScalingFactor float64
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
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.ScalingFactor < 0 {
		vb.InvalidField("ScalingFactor", "must not be negative")
	}

	return vb.Build()
}

type service struct {
	random        dice.Source
	catalog       *catalog.Catalog
	idGen         idgen.Generator
	scalingFactor float64
}

// NewService creates an enemy service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	factor := cfg.ScalingFactor
	if factor == 0 {
		factor = DefaultScalingFactor
	}

	return &service{
		random:        cfg.Random,
		catalog:       cfg.Catalog,
		idGen:         cfg.IDGenerator,
		scalingFactor: factor,
	}, nil
}

func (s *service) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.PlayerLevel < 1 {
		vb.InvalidField("PlayerLevel", "must be at least 1")
	}
	if input.Threshold < 0 {
		vb.InvalidField("Threshold", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	enemyType := input.Type
	if enemyType == "" {
		enemyType = s.SelectType(ctx)
	}
	level := s.GenerateLevel(ctx, input.PlayerLevel, input.Threshold)
	loot := s.ComputeLoot(ctx, enemyType, level)

	template, ok := s.catalog.EnemyTemplate(enemyType)
	if !ok {
		slog.WarnContext(ctx, "unknown enemy type, using default template", "type", enemyType)
		template = s.catalog.DefaultEnemyTemplate()
	}

	e := entities.NewEnemy(entities.EnemyConfig{
		ID:          s.idGen.Generate(),
		Type:        enemyType,
		Level:       level,
		PlayerLevel: input.PlayerLevel,
		Attributes:  ScaleAttributes(template, input.PlayerLevel, s.scalingFactor),
		Loot:        loot,
	})

	slog.DebugContext(ctx, "enemy generated",
		"enemy_id", e.ID,
		"type", e.Type,
		"level", e.Level,
		"player_level", input.PlayerLevel,
		"health", e.Resources.Health.Max)

	return &GenerateOutput{Enemy: e}, nil
}

func (s *service) SelectType(_ context.Context) string {
	types := s.catalog.EnemyTypes()
	i := dice.Index(s.random, len(types))
	if i < 0 {
		return ""
	}
	return types[i]
}

func (s *service) GenerateLevel(_ context.Context, playerLevel, threshold int) int {
	lo := playerLevel - threshold
	hi := playerLevel + threshold
	if lo > hi {
		lo = hi
	}
	return max(1, s.random.IntRange(lo, hi))
}

// ComputeLoot draws the experience and gold modifiers first, then the base
// amounts, then the item count.
func (s *service) ComputeLoot(ctx context.Context, enemyType string, level int) entities.Loot {
	expModifier := dice.Uniform(s.random, 1.30, 1.50) + float64(level)/4
	goldModifier := dice.Uniform(s.random, 1.25, 1.75) + float64(level)/5

	loot := entities.Loot{
		Experience: int(entities.Round(dice.Uniform(s.random, 15, 30) * expModifier)),
		Gold:       int(entities.Round(dice.Uniform(s.random, 2, 4) * goldModifier)),
	}

	rule, ok := s.catalog.DropFor(enemyType)
	if !ok {
		slog.DebugContext(ctx, "no drop rule for enemy type", "type", enemyType)
		return loot
	}

	if count := s.random.IntRange(rule.Min, rule.Max); count > 0 {
		loot.Item = &entities.ItemDrop{Name: rule.Item, Count: count}
	}

	return loot
}

// ScaleAttributes raises every template value by playerLevel*factor,
// truncating and capping at the attribute maximum.
func ScaleAttributes(template entities.Attributes, playerLevel int, factor float64) entities.Attributes {
	bonus := float64(playerLevel) * factor
	scaled := template
	for _, a := range entities.AllAttributes {
		scaled.Set(a, min(int(float64(template.Get(a))+bonus), entities.AttributeMax))
	}
	return scaled
}
