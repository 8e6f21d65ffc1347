package combat

import (
	"fmt"
	"strconv"
)

// Outcome is how a single action resolved
type Outcome int

// Outcome values
const (
	OutcomeNone Outcome = iota
	OutcomeNotEnoughResource
	OutcomeCriticalHit
	OutcomeDodged
	OutcomeHit
	OutcomeFled
	OutcomeCannotFlee
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeNotEnoughResource:
		return "Not enough resource"
	case OutcomeCriticalHit:
		return "Critical hit"
	case OutcomeDodged:
		return "Dodged"
	case OutcomeHit:
		return "Hit"
	case OutcomeFled:
		return "Fled"
	case OutcomeCannotFlee:
		return "Cannot flee"
	default:
		return "Unknown"
	}
}

// Kind is the action that produced a Result
type Kind int

// Kind values
const (
	KindPass Kind = iota
	KindMelee
	KindSpell
	KindFlee
)

func (k Kind) String() string {
	switch k {
	case KindMelee:
		return "melee"
	case KindSpell:
		return "spell"
	case KindFlee:
		return "flee"
	default:
		return "pass"
	}
}

// Result describes what one action did
type Result struct {
	Kind    Kind
	Outcome Outcome
	// Damage dealt to the defender, never negative
	Damage float64
	// ResourceSpent is the stamina or mana the attacker paid
	ResourceSpent float64
	Attacker      string
	Defender      string
}

// Pass returns the result of an action that does nothing
func Pass(attacker, defender string) *Result {
	return &Result{Kind: KindPass, Outcome: OutcomeNone, Attacker: attacker, Defender: defender}
}

// Message renders the result as a line of combat log
func (r *Result) Message() string {
	damage := strconv.FormatFloat(r.Damage, 'f', -1, 64)

	switch r.Outcome {
	case OutcomeNotEnoughResource:
		if r.Kind == KindSpell {
			return fmt.Sprintf("%s doesn't have enough mana to cast a spell right now!", r.Attacker)
		}
		return fmt.Sprintf("%s doesn't have enough stamina, only dealing %s damage!", r.Attacker, damage)
	case OutcomeCriticalHit:
		return fmt.Sprintf("%s landed a critical hit, dealing %s damage!", r.Attacker, damage)
	case OutcomeDodged:
		if r.Kind == KindSpell {
			return fmt.Sprintf("%s dodged the %s's spell!", r.Defender, r.Attacker)
		}
		return fmt.Sprintf("%s dodged the %s's attack!", r.Defender, r.Attacker)
	case OutcomeHit:
		if r.Kind == KindSpell {
			return fmt.Sprintf("%s cast a spell at the %s, dealing %s damage!", r.Attacker, r.Defender, damage)
		}
		return fmt.Sprintf("%s attacked the %s, dealing %s damage!", r.Attacker, r.Defender, damage)
	case OutcomeFled:
		return fmt.Sprintf("%s ran away from the %s!", r.Attacker, r.Defender)
	case OutcomeCannotFlee:
		return fmt.Sprintf("%s is too slow to run from the %s!", r.Attacker, r.Defender)
	default:
		return fmt.Sprintf("%s hesitates.", r.Attacker)
	}
}
