package engine

import (
	"fmt"

	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/entropy"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// DriftSystem applies the passive per-turn stat movement: chaos-tier decay,
// loyalty recovery cooldowns and the extreme-chaos health drain.
type DriftSystem struct {
	eventLog *events.EventLog
	logger   *logger.Logger
	rng      entropy.Source

	turnsSinceRecovery     int
	turnsSinceSlowRecovery int
}

func NewDriftSystem(eventLog *events.EventLog, log *logger.Logger, rng entropy.Source) *DriftSystem {
	return &DriftSystem{
		eventLog: eventLog,
		logger:   log,
		rng:      rng,
	}
}

// Reset clears the recovery cooldowns for a new run.
func (ds *DriftSystem) Reset() {
	ds.turnsSinceRecovery = 0
	ds.turnsSinceSlowRecovery = 0
}

// ApplyChaosDrift applies the chaos-tier effects for one turn. High chaos
// erodes support, loyalty and health; moderate chaos decays on its own, with
// extra decay chances stacked when support or loyalty are high.
func (ds *DriftSystem) ApplyChaosDrift(turn int, v *stats.Vector) {
	var delta stats.Effect

	switch {
	case v.Chaos > 80:
		delta.Support -= 2
		if ds.rng.Float64() < 0.75 {
			delta.Loyalty--
		}
		delta.Health--
	case v.Chaos > 60:
		delta.Support--
		if ds.rng.Float64() < 0.5 {
			delta.Loyalty--
		}
	case v.Chaos > 40:
		if ds.rng.Float64() < 0.5 {
			delta.Support--
		}
	}

	// Self-stabilization: chaos decays only in the moderate band, faster
	// when the rest of the position is healthy.
	if v.Chaos > 10 && v.Chaos < 50 {
		if ds.rng.Float64() < 0.3 {
			delta.Chaos--
		}
		if v.Support > 60 && ds.rng.Float64() < 0.2 {
			delta.Chaos--
		}
		if v.Loyalty > 70 && ds.rng.Float64() < 0.2 {
			delta.Chaos--
		}
	}

	// Collapse pressure from the bottom of the approval scale.
	if v.Support < 15 {
		delta.Chaos += 2
	}
	if v.Support < 10 {
		delta.Loyalty -= 2
	}
	// Suspiciously perfect loyalty drifts back down.
	if v.Loyalty > 95 && ds.rng.Float64() < 0.5 {
		delta.Loyalty--
	}

	if delta.IsZero() {
		return
	}
	actual := v.Apply(delta)
	if !actual.IsZero() {
		ds.eventLog.Emit(events.EventTypeStatChange, turn, "The quarter grinds on.",
			map[string]interface{}{"source": "chaos_drift", "actual": actual})
	}
}

// ApplyLoyaltyRecovery grants +1 loyalty under calm, popular conditions, on
// a cooldown. A looser second condition recovers more slowly.
func (ds *DriftSystem) ApplyLoyaltyRecovery(turn int, v *stats.Vector) {
	ds.turnsSinceRecovery++
	ds.turnsSinceSlowRecovery++

	if v.Support > 60 && v.Chaos < 30 && ds.turnsSinceRecovery >= 3 {
		actual := v.Apply(stats.Effect{Loyalty: 1})
		ds.turnsSinceRecovery = 0
		if !actual.IsZero() {
			ds.eventLog.Emit(events.EventTypeStatChange, turn, "The inner circle relaxes a little.",
				map[string]interface{}{"source": "loyalty_recovery", "actual": actual})
		}
		return
	}

	if v.Support > 75 && v.Chaos < 50 && ds.turnsSinceSlowRecovery >= 4 {
		if ds.rng.Float64() < 0.5 {
			actual := v.Apply(stats.Effect{Loyalty: 1})
			ds.turnsSinceSlowRecovery = 0
			if !actual.IsZero() {
				ds.eventLog.Emit(events.EventTypeStatChange, turn, "Popularity papers over the cracks.",
					map[string]interface{}{"source": "loyalty_recovery", "actual": actual})
			}
		}
	}
}

// ApplyStressDrain bleeds health above the extreme chaos threshold.
func (ds *DriftSystem) ApplyStressDrain(turn int, v *stats.Vector) {
	if v.Chaos <= 75 {
		return
	}
	drain := (v.Chaos - 75) / 20
	if drain < 1 {
		drain = 1
	}
	actual := v.Apply(stats.Effect{Health: -drain})
	if !actual.IsZero() {
		ds.logger.Event(string(events.EventTypeStatChange), turn,
			fmt.Sprintf("Stress drain: health %+d at chaos %d", actual.Health, v.Chaos))
		ds.eventLog.Emit(events.EventTypeStatChange, turn, "The stress is visible from orbit.",
			map[string]interface{}{"source": "stress_drain", "actual": actual})
	}
}
