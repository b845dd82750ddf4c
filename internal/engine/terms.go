package engine

import (
	"fmt"

	"github.com/satiregames/orangenotlemons/server/internal/domain/rules"
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// Term identifies which term the run is in.
type Term int

const (
	Term1 Term = 1
	Term2 Term = 2
)

// Term lengths in turns (quarters).
const (
	Term1MaxTurns = 48
	Term2MaxTurns = 96
)

// Term2SupportFloor is the approval needed to win re-election out of Term1.
const Term2SupportFloor = 40

// GameOverReason is the closed set of terminal outcomes.
type GameOverReason string

const (
	ReasonNone      GameOverReason = ""
	ReasonDeath     GameOverReason = "death"
	ReasonLeaked    GameOverReason = "leaked"
	ReasonTermEnded GameOverReason = "term_ended"
	ReasonVictory   GameOverReason = "victory"
)

// TermOutcome is the result of one terminal-condition evaluation.
type TermOutcome struct {
	Over        bool
	Reason      GameOverReason
	Detail      string
	NewTerm     Term
	ScoreFactor int // multiplier applied to the running score on victory
}

// TermSystem evaluates terminal conditions and performs term transitions.
type TermSystem struct {
	eventLog *events.EventLog
	logger   *logger.Logger
}

func NewTermSystem(eventLog *events.EventLog, log *logger.Logger) *TermSystem {
	return &TermSystem{eventLog: eventLog, logger: log}
}

// Evaluate checks the terminal conditions in strict priority order: death
// beats leak beats term accounting. At most one outcome fires per boundary.
func (tsys *TermSystem) Evaluate(turn int, v *stats.Vector, term Term, maxTurns, score int) TermOutcome {
	if v.Health <= 0 {
		return TermOutcome{Over: true, Reason: ReasonDeath, Detail: "Too many hamberders.", NewTerm: term}
	}
	if v.Loyalty <= 0 {
		return TermOutcome{Over: true, Reason: ReasonLeaked, Detail: "Everyone had a copy of the files.", NewTerm: term}
	}
	if turn <= maxTurns {
		return TermOutcome{NewTerm: term}
	}

	threshold := rules.LoyaltyThreshold(v.Chaos)
	minimum := rules.MinimumScore(v.Chaos, v.Loyalty)

	switch {
	case v.Loyalty < threshold:
		return TermOutcome{Over: true, Reason: ReasonTermEnded, NewTerm: term,
			Detail: fmt.Sprintf("Loyalty %d fell short of the %d needed.", v.Loyalty, threshold)}
	case score < minimum:
		return TermOutcome{Over: true, Reason: ReasonTermEnded, NewTerm: term,
			Detail: fmt.Sprintf("Score %d fell short of the %d needed.", score, minimum)}
	case term == Term1 && v.Support < Term2SupportFloor:
		return TermOutcome{Over: true, Reason: ReasonTermEnded, NewTerm: term,
			Detail: fmt.Sprintf("Support %d fell short of the %d needed.", v.Support, Term2SupportFloor)}
	case term == Term1:
		return TermOutcome{NewTerm: Term2}
	default:
		return TermOutcome{Over: true, Reason: ReasonVictory, NewTerm: term, ScoreFactor: 2,
			Detail: "Two full terms. The library will be extremely gold."}
	}
}

// Transition applies the Term2 inauguration package: fresh legs, a wary
// inner circle and a louder country. Returns the new turn ceiling.
func (tsys *TermSystem) Transition(turn int, v *stats.Vector) int {
	v.Apply(stats.Effect{Health: 20, Chaos: 10})
	// Loyalty drops 20 but never below 50; the clamp floor here is custom.
	loyalty := v.Loyalty - 20
	if loyalty < 50 {
		loyalty = 50
	}
	v.Loyalty = loyalty

	tsys.logger.Event(string(events.EventTypeTermTransition), turn, "Sworn in for a second term")
	tsys.eventLog.Emit(events.EventTypeTermTransition, turn,
		"Four more years. The hand on the book was definitely touching it.",
		map[string]interface{}{"term": 2})
	return Term2MaxTurns
}
