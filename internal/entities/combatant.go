package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types reported through core.Entity
const (
	EntityTypePlayer = "player"
	EntityTypeEnemy  = "enemy"
)

// Combatant is anything the combat engine can resolve actions for.
// Players and enemies both satisfy it, so the engine never branches on
// the concrete type.
type Combatant interface {
	core.Entity
	DisplayName() string
	CombatSheet() *Sheet
}

var (
	_ Combatant = (*Player)(nil)
	_ Combatant = (*Enemy)(nil)
)
