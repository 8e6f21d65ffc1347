package entities

import "math"

// MinActionCost is the floor for stamina and mana costs
const MinActionCost = 8

// Round rounds half away from zero. Every integer-valued stat uses it.
func Round(x float64) float64 {
	return math.Round(x)
}

// Round2 rounds to two decimals, half away from zero
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ResourceMax returns round(attr*(multiplier + level*scale) - 1)
func ResourceMax(attr, level int, multiplier, scale float64) float64 {
	return Round(float64(attr)*(multiplier+float64(level)*scale) - 1)
}

// AttackPower returns round(1 + baseDamage*(attr/100)*(1 + 0.07*level))
func AttackPower(attr, level int, baseDamage float64) float64 {
	return Round(1 + baseDamage*(float64(attr)/100)*(1+0.07*float64(level)))
}

// CriticalHit returns the damage dealt by a critical hit. It is not
// reduced by the defender's defense.
func CriticalHit(physicalAttack float64, agility, level int, agilityFactor, agilityCoefficient, levelCoefficient float64) float64 {
	agilityBonus := float64(agility) * agilityFactor / 100
	return Round(physicalAttack + agilityCoefficient*agilityBonus + levelCoefficient*float64(level))
}

// Defense returns round(attr*2/modifier + 0.2*level)
func Defense(attr, level int, modifier float64) float64 {
	if modifier == 0 {
		modifier = 100
	}
	return Round(float64(attr)*2/modifier + 0.2*float64(level))
}

// ActionCost returns max(8, round(base*(scale - perLevelScale*attr - 0.0005*level)))
func ActionCost(attr, level int, cost CostTuning) float64 {
	raw := cost.Base * (cost.Scale - cost.PerLevelScale*float64(attr) - 0.0005*float64(level))
	return math.Max(MinActionCost, Round(raw))
}

// DodgeChance returns round2(agility/200 + levelCoefficient*level)
func DodgeChance(agility, level int, levelCoefficient float64) float64 {
	return Round2(float64(agility)/200 + levelCoefficient*float64(level))
}

// CriticalChance returns round2(agility/400 + levelCoefficient*level)
func CriticalChance(agility, level int, levelCoefficient float64) float64 {
	return Round2(float64(agility)/400 + levelCoefficient*float64(level))
}
