package progression

import (
	"context"

	"github.com/hunlreev/console-quest-rpg/internal/entities"
)

// ScriptedAllocator replays a fixed list of attributes, then reports done
type ScriptedAllocator struct {
	choices []entities.Attribute
	next    int
}

// NewScriptedAllocator creates an allocator that spends points in order.
// With no choices every point is kept for later.
func NewScriptedAllocator(choices ...entities.Attribute) *ScriptedAllocator {
	return &ScriptedAllocator{choices: choices}
}

// NextAllocation returns the next scripted attribute
func (a *ScriptedAllocator) NextAllocation(_ context.Context, _ *entities.Player) (entities.Attribute, bool, error) {
	if a.next >= len(a.choices) {
		return entities.AttributeUnspecified, false, nil
	}
	attr := a.choices[a.next]
	a.next++
	return attr, true, nil
}
