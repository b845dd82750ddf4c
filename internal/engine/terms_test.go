package engine

import (
	"testing"

	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

func newTestTerms() *TermSystem {
	return NewTermSystem(events.NewEventLog(nil), logger.NewLogger())
}

func TestDeathBeatsLeak(t *testing.T) {
	ts := newTestTerms()
	v := stats.Vector{Health: 0, Loyalty: 0}

	outcome := ts.Evaluate(10, &v, Term1, Term1MaxTurns, 0)
	if !outcome.Over || outcome.Reason != ReasonDeath {
		t.Errorf("Death must take priority over leak, got %+v", outcome)
	}
}

func TestLeakBeatsTermAccounting(t *testing.T) {
	ts := newTestTerms()
	v := stats.Vector{Health: 50, Loyalty: 0, Support: 80, Chaos: 10}

	outcome := ts.Evaluate(Term1MaxTurns+1, &v, Term1, Term1MaxTurns, 500)
	if !outcome.Over || outcome.Reason != ReasonLeaked {
		t.Errorf("Leak must take priority over term end, got %+v", outcome)
	}
}

func TestNoTerminalMidTerm(t *testing.T) {
	ts := newTestTerms()
	v := stats.Vector{Health: 50, Loyalty: 50, Support: 50}

	outcome := ts.Evaluate(20, &v, Term1, Term1MaxTurns, 0)
	if outcome.Over {
		t.Errorf("No terminal condition should fire mid-term, got %+v", outcome)
	}
}

func TestHighChaosLowersReelectionBar(t *testing.T) {
	ts := newTestTerms()
	// Chaos 100 drops the loyalty bar to 65; loyalty 70 and support 45 win
	// Term2 even with zero score.
	v := stats.Vector{Health: 50, Loyalty: 70, Support: 45, Chaos: 100}

	outcome := ts.Evaluate(Term1MaxTurns+1, &v, Term1, Term1MaxTurns, 0)
	if outcome.Over {
		t.Fatalf("Expected Term2 transition, got game over: %+v", outcome)
	}
	if outcome.NewTerm != Term2 {
		t.Errorf("Expected Term2, got %v", outcome.NewTerm)
	}
}

func TestLowSupportBlocksTerm2Only(t *testing.T) {
	ts := newTestTerms()
	v := stats.Vector{Health: 50, Loyalty: 90, Support: 30, Chaos: 50}

	outcome := ts.Evaluate(Term1MaxTurns+1, &v, Term1, Term1MaxTurns, 500)
	if !outcome.Over || outcome.Reason != ReasonTermEnded {
		t.Fatalf("Support below 40 must block Term1 re-election, got %+v", outcome)
	}

	// The same support is irrelevant at the end of Term2.
	outcome = ts.Evaluate(Term2MaxTurns+1, &v, Term2, Term2MaxTurns, 500)
	if !outcome.Over || outcome.Reason != ReasonVictory {
		t.Errorf("Term2 end with good loyalty/score must be victory, got %+v", outcome)
	}
	if outcome.ScoreFactor != 2 {
		t.Errorf("Victory must double the score, got factor %d", outcome.ScoreFactor)
	}
}

func TestMinimumScoreRequiredWhenCalmAndDisloyal(t *testing.T) {
	ts := newTestTerms()
	// chaos 10, loyalty 95: threshold satisfied, but chaos<30 needs
	// loyalty<50 for a minimum score, which 95 is not.
	v := stats.Vector{Health: 50, Loyalty: 95, Support: 60, Chaos: 10}
	outcome := ts.Evaluate(Term1MaxTurns+1, &v, Term1, Term1MaxTurns, 0)
	if outcome.Over {
		t.Errorf("High loyalty should not require a minimum score, got %+v", outcome)
	}
}

func TestTransitionPackage(t *testing.T) {
	ts := newTestTerms()
	v := stats.Vector{Health: 90, Loyalty: 85, Support: 50, Chaos: 95}

	maxTurns := ts.Transition(48, &v)
	if maxTurns != Term2MaxTurns {
		t.Errorf("Expected max turns %d, got %d", Term2MaxTurns, maxTurns)
	}
	if v.Health != 100 {
		t.Errorf("Health +20 should clamp at 100, got %d", v.Health)
	}
	if v.Loyalty != 65 {
		t.Errorf("Loyalty should drop 20 to 65, got %d", v.Loyalty)
	}
	if v.Chaos != 100 {
		t.Errorf("Chaos +10 should clamp at 100, got %d", v.Chaos)
	}

	// The loyalty reduction has a floor at 50.
	v2 := stats.Vector{Health: 50, Loyalty: 55, Support: 50, Chaos: 20}
	ts.Transition(48, &v2)
	if v2.Loyalty != 50 {
		t.Errorf("Loyalty floor on transition is 50, got %d", v2.Loyalty)
	}
}
