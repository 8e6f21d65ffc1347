package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

func TestAttributesSetClamps(t *testing.T) {
	var attrs entities.Attributes

	attrs.Set(entities.Strength, 140)
	attrs.Set(entities.Speed, -5)
	attrs.Add(entities.Agility, 30)
	attrs.Add(entities.Agility, 80)

	assert.Equal(t, 100, attrs.Strength)
	assert.Equal(t, 0, attrs.Speed)
	assert.Equal(t, 100, attrs.Agility)
}

func TestAttributesClampedHoldsForEveryValue(t *testing.T) {
	for v := -50; v <= 150; v += 5 {
		attrs := entities.Attributes{
			Strength: v, Endurance: v, Intelligence: v,
			Willpower: v, Agility: v, Speed: v,
		}.Clamped()

		for _, a := range entities.AllAttributes {
			got := attrs.Get(a)
			assert.Equal(t, entities.ClampAttribute(got), got)
		}
	}
}

func TestParseAttribute(t *testing.T) {
	a, err := entities.ParseAttribute(" willpower ")
	require.NoError(t, err)
	assert.Equal(t, entities.Willpower, a)

	_, err = entities.ParseAttribute("charisma")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPoolRestore(t *testing.T) {
	p := entities.Pool{Current: 70, Max: 80}

	assert.Equal(t, 10.0, p.Restore(25))
	assert.Equal(t, 80.0, p.Current)
	assert.Equal(t, 0.0, p.Restore(5))
}
