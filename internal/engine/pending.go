package engine

import (
	"fmt"

	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// ScheduledEffect is one future consequence bound to an absolute turn.
type ScheduledEffect struct {
	ID          string       `json:"id"`
	PlanID      string       `json:"planId"`
	Description string       `json:"description"`
	TriggerTurn int          `json:"triggerTurn"`
	Effects     stats.Effect `json:"effects"`
}

// EffectQueue holds pending delayed effects for one run. Drain fires on exact
// turn equality only; nothing is ever applied retroactively.
type EffectQueue struct {
	eventLog *events.EventLog
	logger   *logger.Logger
	pending  []ScheduledEffect
}

func NewEffectQueue(eventLog *events.EventLog, log *logger.Logger) *EffectQueue {
	return &EffectQueue{
		eventLog: eventLog,
		logger:   log,
		pending:  make([]ScheduledEffect, 0),
	}
}

// Schedule binds a delayed effect. A delay of zero fires on the next turn
// boundary, so it is coerced to one.
func (q *EffectQueue) Schedule(currentTurn int, planID, description string, turnsDelay int, effects stats.Effect) {
	if turnsDelay < 1 {
		turnsDelay = 1
	}
	effect := ScheduledEffect{
		ID:          fmt.Sprintf("%s-%d-%d", planID, currentTurn, turnsDelay),
		PlanID:      planID,
		Description: description,
		TriggerTurn: currentTurn + turnsDelay,
		Effects:     effects,
	}
	q.pending = append(q.pending, effect)
	q.logger.Event(string(events.EventTypeDelayedEffect), currentTurn,
		fmt.Sprintf("Scheduled %s for turn %d", effect.ID, effect.TriggerTurn))
}

// Drain applies every effect whose trigger turn equals currentTurn, in
// insertion order, and removes them from the queue. Returns the actual
// applied deltas paired with their effects.
func (q *EffectQueue) Drain(currentTurn int, v *stats.Vector) []ScheduledEffect {
	var triggered []ScheduledEffect
	remaining := q.pending[:0]

	for _, effect := range q.pending {
		if effect.TriggerTurn == currentTurn {
			triggered = append(triggered, effect)
		} else {
			remaining = append(remaining, effect)
		}
	}
	q.pending = remaining

	for _, effect := range triggered {
		actual := v.Apply(effect.Effects)
		q.eventLog.Emit(events.EventTypeDelayedEffect, currentTurn, effect.Description,
			map[string]interface{}{
				"planId": effect.PlanID,
				"actual": actual,
			})
	}
	return triggered
}

// Pending returns a copy of the outstanding effects.
func (q *EffectQueue) Pending() []ScheduledEffect {
	return append([]ScheduledEffect(nil), q.pending...)
}

// Reset drops everything; used on run reset.
func (q *EffectQueue) Reset() {
	q.pending = q.pending[:0]
}
