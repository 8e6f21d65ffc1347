package entities

// Resource identifies one of the three pools
type Resource int

// Resource values
const (
	ResourceUnspecified Resource = iota
	Health
	Mana
	Stamina
)

// String returns the display name
func (r Resource) String() string {
	switch r {
	case Health:
		return "Health"
	case Mana:
		return "Mana"
	case Stamina:
		return "Stamina"
	default:
		return "Unspecified"
	}
}

// Pool is a current/max pair. Current may drop to zero or below only
// transiently, to signal defeat.
type Pool struct {
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
}

// Restore adds amount and clamps to Max. Returns the amount actually gained.
func (p *Pool) Restore(amount float64) float64 {
	before := p.Current
	p.Current = min(p.Max, p.Current+amount)
	return p.Current - before
}

// Spend subtracts amount
func (p *Pool) Spend(amount float64) {
	p.Current -= amount
}

// Fill sets Current to Max
func (p *Pool) Fill() {
	p.Current = p.Max
}

// Depleted reports whether the pool is at or below zero
func (p *Pool) Depleted() bool {
	return p.Current <= 0
}

// ResourcePool holds the three pools of a combatant
type ResourcePool struct {
	Health  Pool `json:"health"`
	Mana    Pool `json:"mana"`
	Stamina Pool `json:"stamina"`
}

// Get returns a pointer to the pool for r, or nil for an unknown resource
func (rp *ResourcePool) Get(r Resource) *Pool {
	switch r {
	case Health:
		return &rp.Health
	case Mana:
		return &rp.Mana
	case Stamina:
		return &rp.Stamina
	default:
		return nil
	}
}

// FillAll sets every pool to its maximum
func (rp *ResourcePool) FillAll() {
	rp.Health.Fill()
	rp.Mana.Fill()
	rp.Stamina.Fill()
}
