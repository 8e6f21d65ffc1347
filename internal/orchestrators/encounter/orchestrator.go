// Package encounter runs fights between a player and a generated enemy
package encounter

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/hunlreev/console-quest-rpg/internal/dice"
	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
	"github.com/hunlreev/console-quest-rpg/internal/pkg/idgen"
	"github.com/hunlreev/console-quest-rpg/internal/repositories/player"
	"github.com/hunlreev/console-quest-rpg/internal/services/combat"
	"github.com/hunlreev/console-quest-rpg/internal/services/enemy"
	"github.com/hunlreev/console-quest-rpg/internal/services/progression"
)

// Service defines the interface for encounter operations
type Service interface {
	// Start generates an enemy and decides who moves first
	Start(ctx context.Context, input *StartInput) (*Encounter, error)

	// PlayerTurn resolves the player's action
	// Returns errors.FailedPrecondition when it is not the player's turn
	PlayerTurn(ctx context.Context, enc *Encounter, action Action) (*TurnOutput, error)

	// EnemyTurn resolves a randomly chosen enemy attack
	// Returns errors.FailedPrecondition when it is not the enemy's turn
	EnemyTurn(ctx context.Context, enc *Encounter) (*TurnOutput, error)

	// Run starts an encounter and plays it to a terminal state
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Enemies     enemy.Service
	Combat      combat.Service
	Progression progression.Service
	Repository  player.Repository
	Random      dice.Source
	IDGenerator idgen.Generator
	EventBus    events.EventBus
	// LevelThreshold bounds how far the enemy level strays from the
	// player's; defaults to enemy.DefaultLevelThreshold when zero
	LevelThreshold int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Enemies == nil {
		vb.RequiredField("Enemies")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.Progression == nil {
		vb.RequiredField("Progression")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.LevelThreshold < 0 {
		vb.InvalidField("LevelThreshold", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	enemies     enemy.Service
	combat      combat.Service
	progression progression.Service
	repo        player.Repository
	random      dice.Source
	idGen       idgen.Generator
	bus         events.EventBus
	threshold   int
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	threshold := cfg.LevelThreshold
	if threshold == 0 {
		threshold = enemy.DefaultLevelThreshold
	}

	return &orchestrator{
		enemies:     cfg.Enemies,
		combat:      cfg.Combat,
		progression: cfg.Progression,
		repo:        cfg.Repository,
		random:      cfg.Random,
		idGen:       cfg.IDGenerator,
		bus:         cfg.EventBus,
		threshold:   threshold,
	}, nil
}

// Start gives the first turn to the faster side; ties go to the player
func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*Encounter, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}

	p := input.Player
	gen, err := o.enemies.Generate(ctx, &enemy.GenerateInput{
		PlayerLevel: p.Level,
		Threshold:   o.threshold,
		Type:        input.EnemyType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate enemy")
	}

	enc := &Encounter{
		ID:        o.idGen.Generate(),
		Player:    p,
		Enemy:     gen.Enemy,
		State:     StateEnemyTurn,
		allocator: input.Allocator,
	}
	if p.Attributes.Speed >= enc.Enemy.Attributes.Speed {
		enc.State = StatePlayerTurn
	}

	slog.InfoContext(ctx, "encounter started",
		"encounter_id", enc.ID,
		"player_id", p.ID,
		"enemy_type", enc.Enemy.Type,
		"enemy_level", enc.Enemy.Level,
		"first_turn", enc.State.String())

	o.publish(ctx, EventStarted, enc, p, enc.Enemy, map[string]any{})

	return enc, nil
}

func (o *orchestrator) PlayerTurn(ctx context.Context, enc *Encounter, action Action) (*TurnOutput, error) {
	if err := checkTurn(enc, StatePlayerTurn); err != nil {
		return nil, err
	}

	var result *combat.Result
	switch action {
	case ActionAttack:
		result = o.combat.MeleeAttack(ctx, enc.Player, enc.Enemy)
	case ActionCastSpell:
		result = o.combat.CastSpell(ctx, enc.Player, enc.Enemy)
	case ActionFlee:
		result = o.combat.Flee(ctx, enc.Player, enc.Enemy)
	default:
		slog.DebugContext(ctx, "unrecognized action, passing turn",
			"encounter_id", enc.ID,
			"action", int(action))
		result = combat.Pass(enc.Player.DisplayName(), enc.Enemy.DisplayName())
	}

	return o.advance(ctx, enc, result, enc.Player, enc.Enemy)
}

// EnemyTurn picks melee or spell with equal odds
func (o *orchestrator) EnemyTurn(ctx context.Context, enc *Encounter) (*TurnOutput, error) {
	if err := checkTurn(enc, StateEnemyTurn); err != nil {
		return nil, err
	}

	var result *combat.Result
	if dice.Index(o.random, 2) == 0 {
		result = o.combat.MeleeAttack(ctx, enc.Enemy, enc.Player)
	} else {
		result = o.combat.CastSpell(ctx, enc.Enemy, enc.Player)
	}

	return o.advance(ctx, enc, result, enc.Enemy, enc.Player)
}

func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Actions == nil {
		return nil, errors.InvalidArgument("action provider is required")
	}

	enc, err := o.Start(ctx, &StartInput{
		Player:    input.Player,
		Allocator: input.Allocator,
		EnemyType: input.EnemyType,
	})
	if err != nil {
		return nil, err
	}

	out := &RunOutput{Encounter: enc}
	for !enc.State.Terminal() {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "encounter interrupted")
		}

		var (
			turn    *TurnOutput
			turnErr error
		)
		if enc.State == StatePlayerTurn {
			action, err := input.Actions.NextAction(ctx, enc)
			if err != nil {
				return nil, errors.Wrap(err, "failed to read player action")
			}
			turn, turnErr = o.PlayerTurn(ctx, enc, action)
		} else {
			turn, turnErr = o.EnemyTurn(ctx, enc)
		}

		if turn != nil {
			out.Rewards = turn.Rewards
			out.Penalty = turn.Penalty
		}
		if turnErr != nil {
			out.State = enc.State
			out.Turns = enc.Turns
			return out, turnErr
		}
	}

	out.State = enc.State
	out.Turns = enc.Turns
	return out, nil
}

func checkTurn(enc *Encounter, want State) error {
	if enc == nil || enc.Player == nil || enc.Enemy == nil {
		return errors.InvalidArgument("encounter is required")
	}
	if enc.State.Terminal() {
		return errors.FailedPreconditionf("encounter %s is over (%s)", enc.ID, enc.State)
	}
	if enc.State != want {
		return errors.FailedPreconditionf("it is not the %s", want)
	}
	return nil
}

// advance regenerates the player and applies the transition rules in
// order: flee, defeat, victory, next turn
func (o *orchestrator) advance(ctx context.Context, enc *Encounter, result *combat.Result, actor, target core.Entity) (*TurnOutput, error) {
	enc.Turns++
	enc.Player.Regenerate()

	out := &TurnOutput{Result: result}
	var err error

	switch {
	case result.Outcome == combat.OutcomeFled:
		enc.State = StatePlayerFled
	case enc.Player.Resources.Health.Depleted():
		enc.State = StatePlayerLost
		out.Penalty, err = o.defeat(ctx, enc)
	case enc.Enemy.Resources.Health.Depleted():
		enc.State = StatePlayerWon
		out.Rewards, err = o.victory(ctx, enc)
	case enc.State == StatePlayerTurn:
		enc.State = StateEnemyTurn
	default:
		enc.State = StatePlayerTurn
	}
	out.State = enc.State

	o.publish(ctx, EventAction, enc, actor, target, map[string]any{
		ContextKind:    result.Kind.String(),
		ContextOutcome: result.Outcome.String(),
		ContextDamage:  result.Damage,
		ContextMessage: result.Message(),
		ContextTurn:    enc.Turns,
	})

	if enc.State.Terminal() {
		slog.InfoContext(ctx, "encounter ended",
			"encounter_id", enc.ID,
			"player_id", enc.Player.ID,
			"state", enc.State.String(),
			"turns", enc.Turns)
		o.publish(ctx, EventEnded, enc, enc.Player, enc.Enemy, map[string]any{
			ContextTurn: enc.Turns,
		})
	}

	return out, err
}

// defeat applies the penalty and saves immediately
func (o *orchestrator) defeat(ctx context.Context, enc *Encounter) (*entities.DefeatPenalty, error) {
	penalty := enc.Player.ApplyDefeatPenalty()

	slog.InfoContext(ctx, "player defeated",
		"encounter_id", enc.ID,
		"player_id", enc.Player.ID,
		"experience_lost", penalty.ExperienceLost,
		"health_restored", penalty.HealthRestored)

	if _, err := o.repo.Save(ctx, player.SaveInput{Player: enc.Player}); err != nil {
		return &penalty, errors.Wrap(err, "failed to save defeated player")
	}

	return &penalty, nil
}

// victory grants the enemy's loot, then levels up for as long as the
// experience allows and an allocator is available
func (o *orchestrator) victory(ctx context.Context, enc *Encounter) (*Rewards, error) {
	p := enc.Player
	loot := enc.Enemy.Loot
	rewards := &Rewards{Gold: loot.Gold}

	p.Kills++
	if p.Level < o.progression.LevelCap() {
		rewards.Experience = loot.Experience
		p.Experience += loot.Experience
	}
	p.Gold += loot.Gold
	if loot.Item != nil && loot.Item.Count > 0 {
		drop := *loot.Item
		rewards.Item = &drop
		p.AddItem(drop.Name, drop.Count)
	}

	slog.InfoContext(ctx, "player won",
		"encounter_id", enc.ID,
		"player_id", p.ID,
		"experience", rewards.Experience,
		"gold", rewards.Gold)

	if enc.allocator == nil {
		return rewards, nil
	}

	for o.progression.CanLevelUp(p) {
		lvl, err := o.progression.LevelUp(ctx, &progression.LevelUpInput{
			Player:    p,
			Allocator: enc.allocator,
		})
		if err != nil {
			return rewards, errors.Wrap(err, "failed to level up")
		}
		rewards.LevelUps = append(rewards.LevelUps, lvl)
	}

	return rewards, nil
}

// publish never fails the encounter; subscribers only observe
func (o *orchestrator) publish(ctx context.Context, eventType string, enc *Encounter, source, target core.Entity, data map[string]any) {
	event := events.NewGameEvent(eventType, source, target)
	event.Context().Set(ContextEncounterID, enc.ID)
	event.Context().Set(ContextState, enc.State.String())
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "encounter event handler failed",
			"encounter_id", enc.ID,
			"event", eventType,
			"error", err)
	}
}
