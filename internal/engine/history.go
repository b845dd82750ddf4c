package engine

import (
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/platform/entropy"
)

// FinancialSnapshot is one immutable row of the run's financial history.
type FinancialSnapshot struct {
	Turn          int     `json:"turn"`
	Money         int     `json:"money"`
	Debt          int     `json:"debt"`
	CoinValuation int     `json:"coinValuation"`
	Chaos         int     `json:"chaos"`
	InterestRate  float64 `json:"interestRate"`
	Loyalty       int     `json:"loyalty"`
	Support       int     `json:"support"`
}

// History accumulates financial snapshots for one run, including the
// fabricated pre-game year the charts open with.
type History struct {
	snapshots []FinancialSnapshot
}

func NewHistory() *History {
	return &History{snapshots: make([]FinancialSnapshot, 0, 64)}
}

// Record appends the snapshot for the given turn.
func (h *History) Record(turn int, v *stats.Vector, interestRate float64) {
	h.snapshots = append(h.snapshots, FinancialSnapshot{
		Turn:          turn,
		Money:         v.Money,
		Debt:          v.Debt(),
		CoinValuation: v.CoinValuation,
		Chaos:         v.Chaos,
		InterestRate:  interestRate,
		Loyalty:       v.Loyalty,
		Support:       v.Support,
	})
}

// Snapshots returns a copy of the history, oldest first.
func (h *History) Snapshots() []FinancialSnapshot {
	return append([]FinancialSnapshot(nil), h.snapshots...)
}

// Reset drops all history for a new run.
func (h *History) Reset() {
	h.snapshots = h.snapshots[:0]
}

// SeedPregame fabricates the twelve months before taking office: modest
// money growth, the coin climbing to par, chaos settling. Turns are negative
// so the real run starts clean at turn zero.
func (h *History) SeedPregame(rng entropy.Source, initial stats.Vector) {
	money := 400
	valuation := 80.0
	chaos := 10

	for month := -12; month < 0; month++ {
		money += 15 + rng.Intn(11)
		valuation += (100 - valuation) * 0.08
		if chaos > 5 && rng.Float64() < 0.4 {
			chaos--
		}
		h.snapshots = append(h.snapshots, FinancialSnapshot{
			Turn:          month,
			Money:         money,
			Debt:          0,
			CoinValuation: int(valuation),
			Chaos:         chaos,
			InterestRate:  0.05,
			Loyalty:       initial.Loyalty,
			Support:       initial.Support,
		})
	}
}
