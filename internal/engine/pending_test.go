package engine

import (
	"testing"

	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

func newTestQueue() *EffectQueue {
	return NewEffectQueue(events.NewEventLog(nil), logger.NewLogger())
}

func TestDelayedEffectFiresExactlyOnce(t *testing.T) {
	q := newTestQueue()
	v := stats.Initial()

	q.Schedule(5, "tariffs", "retaliation", 2, stats.Effect{Money: -100})

	if fired := q.Drain(6, &v); len(fired) != 0 {
		t.Fatalf("Effect fired one turn early: %v", fired)
	}
	fired := q.Drain(7, &v)
	if len(fired) != 1 {
		t.Fatalf("Expected exactly one effect at trigger turn, got %d", len(fired))
	}
	if v.Money != 1400 {
		t.Errorf("Expected money 1400 after -100, got %d", v.Money)
	}
	if fired = q.Drain(7, &v); len(fired) != 0 {
		t.Errorf("Effect fired twice: %v", fired)
	}
	if len(q.Pending()) != 0 {
		t.Errorf("Queue should be empty after firing")
	}
}

func TestDelayZeroFiresNextBoundary(t *testing.T) {
	q := newTestQueue()
	v := stats.Initial()

	q.Schedule(5, "press-crackdown", "immediate fallout", 0, stats.Effect{Support: -4})

	if fired := q.Drain(5, &v); len(fired) != 0 {
		t.Fatalf("Zero-delay effect must not fire on the scheduling turn")
	}
	if fired := q.Drain(6, &v); len(fired) != 1 {
		t.Fatalf("Zero-delay effect must fire on the next boundary, got %d", len(fired))
	}
}

func TestMissedTurnsAreNeverRetroactive(t *testing.T) {
	q := newTestQueue()
	v := stats.Initial()

	q.Schedule(5, "tariffs", "retaliation", 1, stats.Effect{Money: -100})

	// Skip straight past the trigger turn.
	if fired := q.Drain(10, &v); len(fired) != 0 {
		t.Errorf("Exact-match drain must not fire past effects: %v", fired)
	}
	if v.Money != 1500 {
		t.Errorf("Money should be untouched, got %d", v.Money)
	}
}

func TestDrainAppliesInInsertionOrder(t *testing.T) {
	q := newTestQueue()
	v := stats.Initial()

	q.Schedule(1, "a", "first", 1, stats.Effect{Loyalty: 40})
	q.Schedule(1, "b", "second", 1, stats.Effect{Loyalty: 40})

	fired := q.Drain(2, &v)
	if len(fired) != 2 || fired[0].PlanID != "a" || fired[1].PlanID != "b" {
		t.Fatalf("Expected insertion order a,b; got %v", fired)
	}
	if v.Loyalty != 100 {
		t.Errorf("Expected loyalty clamped at 100, got %d", v.Loyalty)
	}
}
