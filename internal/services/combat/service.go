// Package combat resolves single combat actions between two combatants
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/hunlreev/console-quest-rpg/internal/services/combat Service

import (
	"context"
	"log/slog"

	"github.com/hunlreev/console-quest-rpg/internal/dice"
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

// WeakenedMeleeFactor scales physical attack when the attacker cannot pay
// the stamina cost
const WeakenedMeleeFactor = 0.75

// Service resolves combat actions. Every method mutates the pools of the
// combatants it is given.
type Service interface {
	// MeleeAttack spends stamina to deal physical damage
	MeleeAttack(ctx context.Context, attacker, defender entities.Combatant) *Result

	// CastSpell spends mana to deal magical damage
	CastSpell(ctx context.Context, attacker, defender entities.Combatant) *Result

	// Flee succeeds when the attacker is strictly faster
	Flee(ctx context.Context, attacker, defender entities.Combatant) *Result
}

// Config holds the dependencies for the combat service
type Config struct {
	Random dice.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Random == nil {
		vb.RequiredField("Random")
	}

	return vb.Build()
}

type service struct {
	random dice.Source
}

// NewService creates a combat service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{random: cfg.Random}, nil
}

// attack is one parameterization of the shared attack resolution
type attack struct {
	kind     Kind
	pool     func(*entities.Sheet) *entities.Pool
	cost     func(entities.CombatProfile) float64
	power    func(entities.CombatProfile) float64
	defense  func(entities.CombatProfile) float64
	weakened bool
}

var melee = attack{
	kind:     KindMelee,
	pool:     func(s *entities.Sheet) *entities.Pool { return &s.Resources.Stamina },
	cost:     func(p entities.CombatProfile) float64 { return p.StaminaCost },
	power:    func(p entities.CombatProfile) float64 { return p.PhysicalAttack },
	defense:  func(p entities.CombatProfile) float64 { return p.PhysicalDefense },
	weakened: true,
}

var spell = attack{
	kind:    KindSpell,
	pool:    func(s *entities.Sheet) *entities.Pool { return &s.Resources.Mana },
	cost:    func(p entities.CombatProfile) float64 { return p.ManaCost },
	power:   func(p entities.CombatProfile) float64 { return p.MagicalAttack },
	defense: func(p entities.CombatProfile) float64 { return p.MagicalDefense },
}

func (s *service) MeleeAttack(ctx context.Context, attacker, defender entities.Combatant) *Result {
	return s.resolve(ctx, melee, attacker, defender)
}

func (s *service) CastSpell(ctx context.Context, attacker, defender entities.Combatant) *Result {
	return s.resolve(ctx, spell, attacker, defender)
}

func (s *service) Flee(ctx context.Context, attacker, defender entities.Combatant) *Result {
	result := &Result{
		Kind:     KindFlee,
		Outcome:  OutcomeCannotFlee,
		Attacker: attacker.DisplayName(),
		Defender: defender.DisplayName(),
	}

	if attacker.CombatSheet().Attributes.Speed > defender.CombatSheet().Attributes.Speed {
		result.Outcome = OutcomeFled
	}

	slog.DebugContext(ctx, "flee resolved",
		"attacker", result.Attacker,
		"defender", result.Defender,
		"outcome", result.Outcome.String())

	return result
}

// resolve applies one attack. Both rolls are drawn before anything else so
// every attack consumes the same amount of randomness.
func (s *service) resolve(ctx context.Context, a attack, attacker, defender entities.Combatant) *Result {
	critRoll := dice.Roll2(s.random)
	dodgeRoll := dice.Roll2(s.random)

	atk := attacker.CombatSheet()
	def := defender.CombatSheet()
	pool := a.pool(atk)
	cost := a.cost(atk.Profile)

	result := &Result{
		Kind:     a.kind,
		Attacker: attacker.DisplayName(),
		Defender: defender.DisplayName(),
	}

	switch {
	case pool.Current < cost:
		result.Outcome = OutcomeNotEnoughResource
		if a.weakened {
			result.Damage = max(0, a.power(atk.Profile)*WeakenedMeleeFactor-a.defense(def.Profile))
		}
	case critRoll < atk.Profile.CriticalChance:
		result.Outcome = OutcomeCriticalHit
		result.Damage = max(0, atk.Profile.CriticalHit)
		result.ResourceSpent = cost
	case dodgeRoll < atk.Profile.DodgeChance:
		result.Outcome = OutcomeDodged
	default:
		result.Outcome = OutcomeHit
		result.Damage = max(0, a.power(atk.Profile)-a.defense(def.Profile))
		result.ResourceSpent = cost
	}

	def.Resources.Health.Spend(result.Damage)
	pool.Spend(result.ResourceSpent)

	slog.DebugContext(ctx, "attack resolved",
		"kind", a.kind.String(),
		"attacker", result.Attacker,
		"defender", result.Defender,
		"crit_roll", critRoll,
		"dodge_roll", dodgeRoll,
		"outcome", result.Outcome.String(),
		"damage", result.Damage,
		"spent", result.ResourceSpent)

	return result
}
