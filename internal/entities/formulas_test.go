package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
)

func TestResourceMax(t *testing.T) {
	// 50 * 2.025 - 1 = 100.25
	assert.Equal(t, 100.0, entities.ResourceMax(50, 1, 2, 0.025))
	// enemy tuning: 45 * 1.02 - 1 = 44.9
	assert.Equal(t, 45.0, entities.ResourceMax(45, 1, 1, 0.02))
}

func TestAttackPower(t *testing.T) {
	// 1 + 10.5 * 0.4 * 1.07 = 5.494
	assert.Equal(t, 5.0, entities.AttackPower(40, 1, 10.5))
	assert.Equal(t, 1.0, entities.AttackPower(0, 10, 10.5))
}

func TestCriticalHit(t *testing.T) {
	// 5 + 2.75 * 5.6 + 0.09 = 20.49
	assert.Equal(t, 20.0, entities.CriticalHit(5, 40, 1, 14, 2.75, 0.09))
}

func TestDefense(t *testing.T) {
	assert.Equal(t, 1.0, entities.Defense(40, 1, 100))
	assert.Equal(t, 3.0, entities.Defense(100, 5, 100))
	assert.Equal(t, 1.0, entities.Defense(40, 1, 0), "zero modifier falls back to 100")
}

func TestActionCost(t *testing.T) {
	cost := entities.CostTuning{Base: 15, Scale: 1.4, PerLevelScale: 0.012}
	// 15 * (1.4 - 0.48 - 0.0005) = 13.7925
	assert.Equal(t, 14.0, entities.ActionCost(40, 1, cost))
}

func TestActionCostNeverBelowFloor(t *testing.T) {
	for _, cost := range []entities.CostTuning{
		entities.PlayerTuning.StaminaCost,
		entities.PlayerTuning.ManaCost,
		entities.EnemyTuning.StaminaCost,
		entities.EnemyTuning.ManaCost,
	} {
		for attr := entities.AttributeMin; attr <= entities.AttributeMax; attr++ {
			for level := 1; level <= 300; level += 7 {
				assert.GreaterOrEqual(t, entities.ActionCost(attr, level, cost), float64(entities.MinActionCost),
					"attr=%d level=%d", attr, level)
			}
		}
	}
}

func TestChances(t *testing.T) {
	assert.Equal(t, 0.2, entities.DodgeChance(40, 1, 0.002))
	assert.Equal(t, 0.1, entities.CriticalChance(40, 1, 0.002))
	assert.Equal(t, 0.52, entities.DodgeChance(100, 10, 0.002))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.2, entities.Round2(1.2))
	assert.Equal(t, 0.23, entities.Round2(0.231))
	assert.Equal(t, 3.0, entities.Round(2.5))
}
