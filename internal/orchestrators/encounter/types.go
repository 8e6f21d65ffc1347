package encounter

import (
	"context"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/services/combat"
	"github.com/hunlreev/console-quest-rpg/internal/services/progression"
)

// Event types published on the bus
const (
	EventStarted = "encounter.started"
	EventAction  = "encounter.action"
	EventEnded   = "encounter.ended"
)

// Context keys set on published events
const (
	ContextEncounterID = "encounter_id"
	ContextState       = "state"
	ContextKind        = "kind"
	ContextOutcome     = "outcome"
	ContextDamage      = "damage"
	ContextMessage     = "message"
	ContextTurn        = "turn"
)

// State is where an encounter stands
type State int

// Encounter states
const (
	StatePlayerTurn State = iota
	StateEnemyTurn
	StatePlayerWon
	StatePlayerLost
	StatePlayerFled
)

func (s State) String() string {
	switch s {
	case StatePlayerTurn:
		return "PlayerTurn"
	case StateEnemyTurn:
		return "EnemyTurn"
	case StatePlayerWon:
		return "PlayerWon"
	case StatePlayerLost:
		return "PlayerLost"
	case StatePlayerFled:
		return "PlayerFled"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the encounter is over
func (s State) Terminal() bool {
	return s == StatePlayerWon || s == StatePlayerLost || s == StatePlayerFled
}

// Action is the player's choice for a turn. Values outside the declared
// set pass the turn.
type Action int

// Player actions
const (
	ActionNone Action = iota
	ActionAttack
	ActionCastSpell
	ActionFlee
)

func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "Attack"
	case ActionCastSpell:
		return "CastSpell"
	case ActionFlee:
		return "Flee"
	default:
		return "None"
	}
}

// ActionProvider supplies the player's action whenever it is their turn
type ActionProvider interface {
	NextAction(ctx context.Context, enc *Encounter) (Action, error)
}

// ActionFunc adapts a function to ActionProvider
type ActionFunc func(ctx context.Context, enc *Encounter) (Action, error)

// NextAction calls f
func (f ActionFunc) NextAction(ctx context.Context, enc *Encounter) (Action, error) {
	return f(ctx, enc)
}

// Encounter is one fight. It owns the enemy for its lifetime.
type Encounter struct {
	ID     string
	Player *entities.Player
	Enemy  *entities.Enemy
	State  State
	// Turns counts resolved actions from both sides
	Turns int

	allocator progression.PointAllocator
}

// Rewards is what a victory granted
type Rewards struct {
	Experience int
	Gold       int
	Item       *entities.ItemDrop
	LevelUps   []*progression.LevelUpOutput
}

// StartInput defines the request for starting an encounter
type StartInput struct {
	Player *entities.Player
	// Allocator spends level-up points after a victory. When nil a pending
	// level-up is left for later.
	Allocator progression.PointAllocator
	// EnemyType forces the enemy type
	EnemyType string
}

// TurnOutput defines the response for one resolved action
type TurnOutput struct {
	Result *combat.Result
	State  State
	// Rewards is set when the action won the encounter
	Rewards *Rewards
	// Penalty is set when the action lost the encounter
	Penalty *entities.DefeatPenalty
}

// RunInput defines the request for running an encounter to its end
type RunInput struct {
	Player    *entities.Player
	Actions   ActionProvider
	Allocator progression.PointAllocator
	EnemyType string
}

// RunOutput defines the response for a finished encounter
type RunOutput struct {
	Encounter *Encounter
	State     State
	Turns     int
	Rewards   *Rewards
	Penalty   *entities.DefeatPenalty
}
