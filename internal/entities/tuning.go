package entities

// CostTuning parameterizes ActionCost
type CostTuning struct {
	Base          float64
	Scale         float64
	PerLevelScale float64
}

// Tuning holds the per-kind constants fed into the shared formulas
type Tuning struct {
	ResourceMultiplier float64
	ResourceLevelScale float64

	BaseDamage float64

	CritAgilityFactor      float64
	CritAgilityCoefficient float64
	CritLevelCoefficient   float64

	DefenseModifier float64

	StaminaCost CostTuning
	ManaCost    CostTuning

	DodgeLevelCoefficient      float64
	CritChanceLevelCoefficient float64

	// DodgePenaltyPerOpponentLevel is subtracted from the dodge chance
	// once per level of the opponent, after rounding.
	DodgePenaltyPerOpponentLevel float64
}

// PlayerTuning is used for every Player
var PlayerTuning = Tuning{
	ResourceMultiplier:         2,
	ResourceLevelScale:         0.025,
	BaseDamage:                 10.5,
	CritAgilityFactor:          14,
	CritAgilityCoefficient:     2.75,
	CritLevelCoefficient:       0.09,
	DefenseModifier:            100,
	StaminaCost:                CostTuning{Base: 15, Scale: 1.4, PerLevelScale: 0.012},
	ManaCost:                   CostTuning{Base: 30, Scale: 1.4, PerLevelScale: 0.012},
	DodgeLevelCoefficient:      0.002,
	CritChanceLevelCoefficient: 0.002,
}

// EnemyTuning is used for every generated Enemy
var EnemyTuning = Tuning{
	ResourceMultiplier:           1,
	ResourceLevelScale:           0.02,
	BaseDamage:                   10.5,
	CritAgilityFactor:            12,
	CritAgilityCoefficient:       2.5,
	CritLevelCoefficient:         0.08,
	DefenseModifier:              100,
	StaminaCost:                  CostTuning{Base: 15, Scale: 1.4, PerLevelScale: 0.012},
	ManaCost:                     CostTuning{Base: 30, Scale: 1.4, PerLevelScale: 0.012},
	DodgeLevelCoefficient:        0.002,
	CritChanceLevelCoefficient:   0.002,
	DodgePenaltyPerOpponentLevel: 1.0 / 200,
}
