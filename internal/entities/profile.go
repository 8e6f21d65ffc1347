package entities

// CombatProfile holds the values derived from attributes and level.
// It is only ever produced by ComputeProfile.
type CombatProfile struct {
	PhysicalAttack  float64 `json:"physical_attack"`
	MagicalAttack   float64 `json:"magical_attack"`
	CriticalHit     float64 `json:"critical_hit"`
	PhysicalDefense float64 `json:"physical_defense"`
	MagicalDefense  float64 `json:"magical_defense"`
	StaminaCost     float64 `json:"stamina_cost"`
	ManaCost        float64 `json:"mana_cost"`
	DodgeChance     float64 `json:"dodge_chance"`
	CriticalChance  float64 `json:"critical_chance"`
}

// ComputeProfile derives every combat value in one pass.
// opponentLevel only matters when the tuning carries a dodge penalty.
func ComputeProfile(attrs Attributes, level int, t Tuning, opponentLevel int) CombatProfile {
	physical := AttackPower(attrs.Strength, level, t.BaseDamage)

	return CombatProfile{
		PhysicalAttack:  physical,
		MagicalAttack:   AttackPower(attrs.Intelligence, level, t.BaseDamage),
		CriticalHit:     CriticalHit(physical, attrs.Agility, level, t.CritAgilityFactor, t.CritAgilityCoefficient, t.CritLevelCoefficient),
		PhysicalDefense: Defense(attrs.Endurance, level, t.DefenseModifier),
		MagicalDefense:  Defense(attrs.Willpower, level, t.DefenseModifier),
		StaminaCost:     ActionCost(attrs.Endurance, level, t.StaminaCost),
		ManaCost:        ActionCost(attrs.Willpower, level, t.ManaCost),
		DodgeChance: DodgeChance(attrs.Agility, level, t.DodgeLevelCoefficient) -
			t.DodgePenaltyPerOpponentLevel*float64(opponentLevel),
		CriticalChance: CriticalChance(attrs.Agility, level, t.CritChanceLevelCoefficient),
	}
}

// MinPoolMax is the smallest maximum a pool can have
const MinPoolMax = 1

// ComputeMaxima returns the pool maxima for attrs and level. Health comes
// from Endurance, Mana from Intelligence and Stamina from Strength.
func ComputeMaxima(attrs Attributes, level int, t Tuning) (health, mana, stamina float64) {
	health = max(MinPoolMax, ResourceMax(attrs.Endurance, level, t.ResourceMultiplier, t.ResourceLevelScale))
	mana = max(MinPoolMax, ResourceMax(attrs.Intelligence, level, t.ResourceMultiplier, t.ResourceLevelScale))
	stamina = max(MinPoolMax, ResourceMax(attrs.Strength, level, t.ResourceMultiplier, t.ResourceLevelScale))
	return health, mana, stamina
}

// Sheet is the combat state shared by players and enemies
type Sheet struct {
	Level      int           `json:"level"`
	Attributes Attributes    `json:"attributes"`
	Resources  ResourcePool  `json:"resources"`
	Profile    CombatProfile `json:"profile"`
}

// recompute refreshes pool maxima and the profile. Current values are
// clamped to the new maxima but otherwise untouched.
func (s *Sheet) recompute(t Tuning, opponentLevel int) {
	health, mana, stamina := ComputeMaxima(s.Attributes, s.Level, t)
	s.Resources.Health.Max = health
	s.Resources.Mana.Max = mana
	s.Resources.Stamina.Max = stamina
	s.Resources.Health.Current = min(s.Resources.Health.Current, health)
	s.Resources.Mana.Current = min(s.Resources.Mana.Current, mana)
	s.Resources.Stamina.Current = min(s.Resources.Stamina.Current, stamina)
	s.Profile = ComputeProfile(s.Attributes, s.Level, t, opponentLevel)
}
