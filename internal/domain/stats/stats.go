// Package stats defines the canonical resource vector for one run and the
// clamping rules that every mutation must respect. This package is PURE and
// must NOT import any infrastructure packages.
package stats

// Bounds for the differently-bounded fields.
const (
	ValuationMin = 50
	ValuationMax = 150
)

// Vector is the mutable resource state for one run.
type Vector struct {
	Health        int `json:"health"`        // 0-100, 0 = dead
	Money         int `json:"money"`         // unbounded, negative = debt
	Loyalty       int `json:"loyalty"`       // 0-100, 0 = the files leak
	Support       int `json:"support"`       // 0-100, public approval
	Luck          int `json:"luck"`          // 0-100, biases the slot machine
	Chaos         int `json:"chaos"`         // 0-100, instability, lowers the re-election bar
	CoinValuation int `json:"coinValuation"` // 50-150, scales costs and debt interest
	FreeBots      int `json:"freeBots"`      // unbounded, granted periodically
}

// Initial returns the stat vector every new run starts from.
func Initial() Vector {
	return Vector{
		Health:        70,
		Money:         1500,
		Loyalty:       65,
		Support:       40,
		Luck:          50,
		Chaos:         20,
		CoinValuation: 100,
		FreeBots:      1,
	}
}

// Effect is a partial delta over a Vector. A zero field is a no-op.
type Effect struct {
	Health        int `json:"health,omitempty"`
	Money         int `json:"money,omitempty"`
	Loyalty       int `json:"loyalty,omitempty"`
	Support       int `json:"support,omitempty"`
	Luck          int `json:"luck,omitempty"`
	Chaos         int `json:"chaos,omitempty"`
	CoinValuation int `json:"coinValuation,omitempty"`
	FreeBots      int `json:"freeBots,omitempty"`
}

// IsZero reports whether the effect changes nothing.
func (e Effect) IsZero() bool {
	return e == Effect{}
}

// Apply adds the effect to the vector field by field, clamping each bounded
// field to its range. Money is unbounded and may go negative. The returned
// Effect holds the ACTUAL post-clamp delta per field, which can be smaller in
// magnitude than the requested one; callers surface that to the player.
func (v *Vector) Apply(e Effect) Effect {
	var actual Effect

	actual.Health = applyBounded(&v.Health, e.Health, 0, 100)
	actual.Loyalty = applyBounded(&v.Loyalty, e.Loyalty, 0, 100)
	actual.Support = applyBounded(&v.Support, e.Support, 0, 100)
	actual.Luck = applyBounded(&v.Luck, e.Luck, 0, 100)
	actual.Chaos = applyBounded(&v.Chaos, e.Chaos, 0, 100)
	actual.CoinValuation = applyBounded(&v.CoinValuation, e.CoinValuation, ValuationMin, ValuationMax)

	v.Money += e.Money
	actual.Money = e.Money
	v.FreeBots += e.FreeBots
	actual.FreeBots = e.FreeBots

	return actual
}

func applyBounded(field *int, delta, min, max int) int {
	if delta == 0 {
		return 0
	}
	old := *field
	next := old + delta
	if next < min {
		next = min
	}
	if next > max {
		next = max
	}
	*field = next
	return next - old
}

// Debt is the derived debt figure: money below zero, reported positive.
func (v Vector) Debt() int {
	if v.Money < 0 {
		return -v.Money
	}
	return 0
}

// Tier returns the health tier, 4 (healthy) down to 1 (very sick).
func (v Vector) Tier() int {
	switch {
	case v.Health >= 76:
		return 4
	case v.Health >= 51:
		return 3
	case v.Health >= 26:
		return 2
	default:
		return 1
	}
}

// MaxCards is the number of action cards offered at the current health tier.
func (v Vector) MaxCards() int {
	return v.Tier()
}

// ResearchMultiplier scales research costs at the current health tier.
// A sicker player pays more to inspect each card.
func (v Vector) ResearchMultiplier() float64 {
	switch v.Tier() {
	case 4:
		return 1.0
	case 3:
		return 1.5
	case 2:
		return 2.0
	default:
		return 3.0
	}
}

// Map returns a copy of the effect with fn applied to every field.
// Used by the situation modifier, which scales positive and negative
// components differently.
func (e Effect) Map(fn func(int) int) Effect {
	return Effect{
		Health:        fn(e.Health),
		Money:         fn(e.Money),
		Loyalty:       fn(e.Loyalty),
		Support:       fn(e.Support),
		Luck:          fn(e.Luck),
		Chaos:         fn(e.Chaos),
		CoinValuation: fn(e.CoinValuation),
		FreeBots:      fn(e.FreeBots),
	}
}
