package engine

import (
	"fmt"

	"github.com/satiregames/orangenotlemons/server/internal/domain/rules"
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/entropy"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// TreasurySystem handles debt interest and coin-valuation drift.
type TreasurySystem struct {
	eventLog *events.EventLog
	logger   *logger.Logger
	rng      entropy.Source
}

func NewTreasurySystem(eventLog *events.EventLog, log *logger.Logger, rng entropy.Source) *TreasurySystem {
	return &TreasurySystem{eventLog: eventLog, logger: log, rng: rng}
}

// ApplyInterest charges one turn of interest when money is negative and
// applies the heavy-debt loyalty penalty. Returns the interest charged.
func (ts *TreasurySystem) ApplyInterest(turn int, v *stats.Vector, baseRate float64) int {
	debt := v.Debt()
	if debt == 0 {
		return 0
	}

	rate := rules.EffectiveInterestRate(baseRate, v.Chaos, v.CoinValuation)
	interest := rules.Interest(debt, rate)
	delta := stats.Effect{Money: -interest}
	if penalty := rules.DebtLoyaltyPenalty(debt); penalty > 0 {
		delta.Loyalty = -penalty
	}
	actual := v.Apply(delta)

	ts.logger.Event(string(events.EventTypeDebtInterest), turn,
		fmt.Sprintf("Debt %d at rate %.3f: interest %d", debt, rate, interest))
	ts.eventLog.Emit(events.EventTypeDebtInterest, turn,
		fmt.Sprintf("The lenders collect %d in interest.", interest),
		map[string]interface{}{
			"debt":     debt,
			"rate":     rate,
			"interest": interest,
			"actual":   actual,
		})
	return interest
}

// ApplyValuationDrift moves coin valuation by a bounded random step, pushed
// down by high chaos and nudged up by a calm, loyal quarter.
func (ts *TreasurySystem) ApplyValuationDrift(turn int, v *stats.Vector) {
	drift := ts.rng.Intn(7) - 3 // -3..+3
	if v.Chaos > 50 {
		drift -= (v.Chaos - 50) / 25
	}
	if v.Chaos < 30 && v.Loyalty > 60 {
		drift++
	}
	if drift == 0 {
		return
	}
	actual := v.Apply(stats.Effect{CoinValuation: drift})
	if actual.IsZero() {
		return
	}
	ts.eventLog.Emit(events.EventTypeValuationDrift, turn,
		fmt.Sprintf("The coin drifts %+d to %d.", actual.CoinValuation, v.CoinValuation),
		map[string]interface{}{"drift": actual.CoinValuation, "valuation": v.CoinValuation})
}
