package entities

import (
	"time"

	"github.com/hunlreev/console-quest-rpg/internal/dice"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

// Player defaults and progression constants
const (
	DefaultLocation             = "Small Town"
	DefaultPlayerName           = "Player"
	StartingExperienceThreshold = 100
	LevelUpPoints               = 5
	LevelThresholdGrowth        = 1.125
	DefeatHealthFraction        = 0.10
	RegenerationRate            = 0.03
)

// Player is the persisted character. The whole struct is the save snapshot.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Sex       string `json:"sex,omitempty"`
	Race      string `json:"race"`
	Birthsign string `json:"birthsign"`
	Class     string `json:"class"`

	Sheet

	Experience      int            `json:"experience"`
	NextExperience  int            `json:"next_experience"`
	AttributePoints int            `json:"attribute_points"`
	Gold            int            `json:"gold"`
	Location        string         `json:"location"`
	Inventory       map[string]int `json:"inventory"`
	Kills           int            `json:"kills"`
	Deaths          int            `json:"deaths"`

	CreatedAt time.Time `json:"created_at"`
	SavedAt   time.Time `json:"saved_at"`
}

// PlayerConfig holds the values chosen at character creation
type PlayerConfig struct {
	ID        string
	Name      string
	Sex       string
	Race      string
	Birthsign string
	Class     string
	// Attributes already include race, birthsign and class adjustments
	Attributes Attributes
	CreatedAt  time.Time
}

// NewPlayer creates a level 1 player with full pools
func NewPlayer(cfg PlayerConfig) *Player {
	name := cfg.Name
	if name == "" {
		name = DefaultPlayerName
	}

	p := &Player{
		ID:        cfg.ID,
		Name:      name,
		Sex:       cfg.Sex,
		Race:      cfg.Race,
		Birthsign: cfg.Birthsign,
		Class:     cfg.Class,
		Sheet: Sheet{
			Level:      1,
			Attributes: cfg.Attributes.Clamped(),
		},
		NextExperience: StartingExperienceThreshold,
		Location:       DefaultLocation,
		Inventory:      make(map[string]int),
		CreatedAt:      cfg.CreatedAt,
	}
	p.RecomputeAndRestore()
	return p
}

// GetID implements core.Entity
func (p *Player) GetID() string { return p.ID }

// GetType implements core.Entity
func (p *Player) GetType() string { return EntityTypePlayer }

// DisplayName is the name shown in combat messages
func (p *Player) DisplayName() string { return p.Name }

// CombatSheet exposes the combat state
func (p *Player) CombatSheet() *Sheet { return &p.Sheet }

// Recompute refreshes maxima and profile from attributes and level
func (p *Player) Recompute() {
	p.recompute(PlayerTuning, 0)
}

// RecomputeAndRestore refreshes everything and fills every pool
func (p *Player) RecomputeAndRestore() {
	p.Recompute()
	p.Resources.FillAll()
}

// RestResult describes one rest
type RestResult struct {
	Health      float64
	Mana        float64
	Stamina     float64
	WaitSeconds float64
}

// Rest restores a random amount to each pool. The amount is drawn between
// half and nine tenths of the Agility/Speed average. WaitSeconds is how
// long the caller should pause; the player never sleeps itself.
func (p *Player) Rest(src dice.Source) RestResult {
	avg := float64(p.Attributes.Agility+p.Attributes.Speed) / 2
	lo := int(avg * 0.5)
	hi := int(avg * 0.9)

	return RestResult{
		Health:      p.Resources.Health.Restore(float64(src.IntRange(lo, hi))),
		Mana:        p.Resources.Mana.Restore(float64(src.IntRange(lo, hi))),
		Stamina:     p.Resources.Stamina.Restore(float64(src.IntRange(lo, hi))),
		WaitSeconds: 100 / float64(max(p.Attributes.Speed, 1)),
	}
}

// Regenerate applies the per-turn combat recovery to mana and stamina
func (p *Player) Regenerate() (mana, stamina float64) {
	mana = p.Resources.Mana.Restore(Round2(float64(p.Attributes.Willpower) * RegenerationRate))
	stamina = p.Resources.Stamina.Restore(Round2(float64(p.Attributes.Endurance) * RegenerationRate))
	return mana, stamina
}

// CanLevelUp reports whether experience has reached the threshold and the
// player is below levelCap. A levelCap of zero or less means uncapped.
func (p *Player) CanLevelUp(levelCap int) bool {
	if levelCap > 0 && p.Level >= levelCap {
		return false
	}
	return p.Experience >= p.NextExperience
}

// GrantLevelUpPoints adds the points awarded for a level
func (p *Player) GrantLevelUpPoints() {
	p.AttributePoints += LevelUpPoints
}

// AllocatePoint spends one attribute point on a. Attributes already at
// the cap are rejected and the point is kept.
func (p *Player) AllocatePoint(a Attribute) error {
	if a == AttributeUnspecified || a > Speed {
		return errors.InvalidArgumentf("unknown attribute %d", a)
	}
	if p.AttributePoints <= 0 {
		return errors.FailedPrecondition("no attribute points to spend")
	}
	if p.Attributes.Get(a) >= AttributeMax {
		return errors.OutOfRangef("%s is already at %d", a, AttributeMax)
	}

	p.Attributes.Add(a, 1)
	p.AttributePoints--
	p.Recompute()
	return nil
}

// CompleteLevelUp carries the experience remainder forward, raises the
// level, grows the threshold and fully restores the player.
func (p *Player) CompleteLevelUp() {
	if p.NextExperience > 0 {
		p.Experience %= p.NextExperience
	}
	p.Level++
	p.NextExperience = int(Round(float64(p.NextExperience) * LevelThresholdGrowth))
	p.RecomputeAndRestore()
}

// DefeatPenalty describes what a loss cost the player
type DefeatPenalty struct {
	ExperienceLost int
	HealthRestored float64
}

// ApplyDefeatPenalty lowers every maximum by one, halves experience and
// brings health back to a tenth of its new maximum (at least 1).
func (p *Player) ApplyDefeatPenalty() DefeatPenalty {
	p.Deaths++

	for _, pool := range []*Pool{&p.Resources.Health, &p.Resources.Mana, &p.Resources.Stamina} {
		pool.Max = max(pool.Max-1, MinPoolMax)
		pool.Current = min(pool.Current, pool.Max)
	}

	p.Resources.Health.Current = max(Round2(p.Resources.Health.Max*DefeatHealthFraction), 1)

	lost := int(Round(float64(p.Experience) * 0.5))
	p.Experience -= lost

	return DefeatPenalty{
		ExperienceLost: lost,
		HealthRestored: p.Resources.Health.Current,
	}
}

// AddItem adds count of an item to the inventory
func (p *Player) AddItem(name string, count int) {
	if name == "" || count <= 0 {
		return
	}
	if p.Inventory == nil {
		p.Inventory = make(map[string]int)
	}
	p.Inventory[name] += count
}

// RemoveItem takes count of an item out of the inventory
func (p *Player) RemoveItem(name string, count int) error {
	if count <= 0 {
		return errors.InvalidArgumentf("count must be positive, got %d", count)
	}
	have := p.Inventory[name]
	if have < count {
		return errors.FailedPreconditionf("only %d %s in inventory", have, name)
	}
	if have == count {
		delete(p.Inventory, name)
		return nil
	}
	p.Inventory[name] = have - count
	return nil
}

// KillDeathRatio returns kills per death, or kills when there are no deaths
func (p *Player) KillDeathRatio() float64 {
	if p.Deaths == 0 {
		return float64(p.Kills)
	}
	return Round2(float64(p.Kills) / float64(p.Deaths))
}
