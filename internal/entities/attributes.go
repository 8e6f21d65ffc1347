package entities

import (
	"strings"

	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

// Attribute bounds
const (
	AttributeMin = 0
	AttributeMax = 100
)

// Attribute identifies one of the six primary attributes
type Attribute int

// Attribute values
const (
	AttributeUnspecified Attribute = iota
	Strength
	Endurance
	Intelligence
	Willpower
	Agility
	Speed
)

// AllAttributes lists the attributes in menu order
var AllAttributes = []Attribute{Strength, Endurance, Intelligence, Willpower, Agility, Speed}

// String returns the display name
func (a Attribute) String() string {
	switch a {
	case Strength:
		return "Strength"
	case Endurance:
		return "Endurance"
	case Intelligence:
		return "Intelligence"
	case Willpower:
		return "Willpower"
	case Agility:
		return "Agility"
	case Speed:
		return "Speed"
	default:
		return "Unspecified"
	}
}

// ParseAttribute resolves a case-insensitive attribute name
func ParseAttribute(name string) (Attribute, error) {
	for _, a := range AllAttributes {
		if strings.EqualFold(strings.TrimSpace(name), a.String()) {
			return a, nil
		}
	}
	return AttributeUnspecified, errors.InvalidArgumentf("unknown attribute %q", name)
}

// Attributes holds the six primary attributes. Values stay in
// [AttributeMin, AttributeMax] when mutated through Set and Add.
type Attributes struct {
	Strength     int `json:"strength"`
	Endurance    int `json:"endurance"`
	Intelligence int `json:"intelligence"`
	Willpower    int `json:"willpower"`
	Agility      int `json:"agility"`
	Speed        int `json:"speed"`
}

// ClampAttribute bounds v to the attribute range
func ClampAttribute(v int) int {
	return max(AttributeMin, min(AttributeMax, v))
}

// Get returns the value of a
func (at Attributes) Get(a Attribute) int {
	switch a {
	case Strength:
		return at.Strength
	case Endurance:
		return at.Endurance
	case Intelligence:
		return at.Intelligence
	case Willpower:
		return at.Willpower
	case Agility:
		return at.Agility
	case Speed:
		return at.Speed
	default:
		return 0
	}
}

// Set assigns a clamped value to a
func (at *Attributes) Set(a Attribute, v int) {
	v = ClampAttribute(v)
	switch a {
	case Strength:
		at.Strength = v
	case Endurance:
		at.Endurance = v
	case Intelligence:
		at.Intelligence = v
	case Willpower:
		at.Willpower = v
	case Agility:
		at.Agility = v
	case Speed:
		at.Speed = v
	}
}

// Add applies delta to a, clamping the result
func (at *Attributes) Add(a Attribute, delta int) {
	at.Set(a, at.Get(a)+delta)
}

// Clamped returns a copy with every value bounded
func (at Attributes) Clamped() Attributes {
	out := at
	for _, a := range AllAttributes {
		out.Set(a, at.Get(a))
	}
	return out
}
