package entities

// ItemDrop is an item and quantity an enemy yields
type ItemDrop struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Loot is what defeating an enemy grants
type Loot struct {
	Experience int       `json:"experience"`
	Gold       int       `json:"gold"`
	Item       *ItemDrop `json:"item,omitempty"`
}

// Enemy is generated for a single encounter and never saved
type Enemy struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	// PlayerLevel is the level the enemy was generated against
	PlayerLevel int `json:"player_level"`

	Sheet

	Loot Loot `json:"loot"`
}

// EnemyConfig holds the generated values for a new enemy
type EnemyConfig struct {
	ID          string
	Type        string
	Level       int
	PlayerLevel int
	Attributes  Attributes
	Loot        Loot
}

// NewEnemy builds an enemy with full pools
func NewEnemy(cfg EnemyConfig) *Enemy {
	e := &Enemy{
		ID:          cfg.ID,
		Type:        cfg.Type,
		PlayerLevel: cfg.PlayerLevel,
		Sheet: Sheet{
			Level:      max(cfg.Level, 1),
			Attributes: cfg.Attributes.Clamped(),
		},
		Loot: cfg.Loot,
	}
	e.recompute(EnemyTuning, cfg.PlayerLevel)
	e.Resources.FillAll()
	return e
}

// GetID implements core.Entity
func (e *Enemy) GetID() string { return e.ID }

// GetType implements core.Entity
func (e *Enemy) GetType() string { return EntityTypeEnemy }

// DisplayName is the enemy type label
func (e *Enemy) DisplayName() string { return e.Type }

// CombatSheet exposes the combat state
func (e *Enemy) CombatSheet() *Sheet { return &e.Sheet }
