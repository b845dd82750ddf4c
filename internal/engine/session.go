// Package engine implements the turn/state core: one GameSession owns the
// stat vector, the delayed-effect queue, the per-turn subsystems and the
// market, and every state transition happens under its lock.
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/satiregames/orangenotlemons/server/internal/content"
	"github.com/satiregames/orangenotlemons/server/internal/domain/plan"
	"github.com/satiregames/orangenotlemons/server/internal/domain/rules"
	"github.com/satiregames/orangenotlemons/server/internal/domain/situation"
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/market"
	"github.com/satiregames/orangenotlemons/server/internal/platform/entropy"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
	"github.com/satiregames/orangenotlemons/server/internal/platform/metrics"
)

// BotGrantInterval is how often a free bot shows up for duty.
const BotGrantInterval = 5

// HighScoreStore persists the single best-score record across runs.
type HighScoreStore interface {
	Best() (int, error)
	Save(score int) error
}

// Session is one game run plus its per-turn transient state. All public
// methods are safe for concurrent use; the game logic itself is single
// threaded under the session lock.
type Session struct {
	mu sync.Mutex

	ID      string
	catalog *content.Catalog

	eventLog *events.EventLog
	logger   *logger.Logger
	rng      entropy.Source

	queue    *EffectQueue
	drift    *DriftSystem
	treasury *TreasurySystem
	slots    *SlotMachine
	terms    *TermSystem
	feed     *FeedSystem
	history  *History
	timer    *TurnTimer

	exchange  *market.Exchange
	portfolio *market.Portfolio
	research  *market.ResearchDesk

	highScores HighScoreStore
	bestScore  int

	// Run state.
	stats      stats.Vector
	turn       int
	term       Term
	maxTurns   int
	score      int
	baseRate   float64
	over       GameOverReason
	overDetail string

	// Per-turn transient state, reset by every turn setup.
	offered        []plan.Card
	situation      situation.Situation
	selectedPlan   *plan.Card
	spinsRemaining int
	spinTotal      int
	revealed       map[string]map[string]string
	turnDeadline   time.Time
}

// NewSession wires a session against a validated catalog. The run is not
// started; call StartRun.
func NewSession(catalog *content.Catalog, eventLog *events.EventLog, log *logger.Logger, rng entropy.Source, highScores HighScoreStore) (*Session, error) {
	exchange, err := market.NewExchange(catalog.Instruments, catalog.StockEffects, eventLog, log)
	if err != nil {
		return nil, fmt.Errorf("build exchange: %w", err)
	}

	s := &Session{
		ID:       events.GenerateEventID(),
		catalog:  catalog,
		eventLog: eventLog,
		logger:   log,
		rng:      rng,

		queue:    NewEffectQueue(eventLog, log),
		drift:    NewDriftSystem(eventLog, log, rng),
		treasury: NewTreasurySystem(eventLog, log, rng),
		slots:    NewSlotMachine(catalog.SlotSymbols, eventLog, log, rng),
		terms:    NewTermSystem(eventLog, log),
		feed:     NewFeedSystem(catalog.Feed, eventLog, log, rng),
		history:  NewHistory(),

		exchange:   exchange,
		portfolio:  market.NewPortfolio(),
		research:   market.NewResearchDesk(),
		highScores: highScores,
	}
	s.timer = NewTurnTimer(s.onTimerExpiry)
	return s, nil
}

// StartRun resets everything and begins turn one.
func (s *Session) StartRun() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = stats.Initial()
	s.turn = 1
	s.term = Term1
	s.maxTurns = Term1MaxTurns
	s.score = 0
	s.baseRate = rules.BaseInterestRate
	s.over = ReasonNone
	s.overDetail = ""

	s.queue.Reset()
	s.drift.Reset()
	s.feed.Reset()
	s.history.Reset()

	if s.highScores != nil {
		if best, err := s.highScores.Best(); err == nil {
			s.bestScore = best
		} else {
			s.logger.Error("Could not load high score: " + err.Error())
		}
	}

	s.history.SeedPregame(s.rng, s.stats)
	s.history.Record(0, &s.stats, s.baseRate)

	metrics.Get().RecordRunStart()
	s.logger.Infof("Run %s started", s.ID)
	s.eventLog.Emit(events.EventTypeRunStarted, 0, "Inauguration day. The crowd was the biggest in history, allegedly.",
		map[string]interface{}{"sessionId": s.ID})

	s.beginTurnLocked()
}

// SkipTurn is the player explicitly passing on the quarter.
func (s *Session) SkipTurn() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over != ReasonNone {
		return fmt.Errorf("run is over (%s)", s.over)
	}
	s.skipLocked(false)
	return nil
}

// skipLocked applies the skip penalty and advances.
func (s *Session) skipLocked(forced bool) {
	actual := s.stats.Apply(stats.Effect{Loyalty: -4, Support: -3})
	metrics.Get().RecordSkip(forced)

	text := "A quarter of executive time. Nothing was decided, aggressively."
	if forced {
		text = "The decision window closed on its own. The staff pretends not to notice."
	}
	s.eventLog.Emit(events.EventTypeTurnSkipped, s.turn, text, map[string]interface{}{
		"forced": forced,
		"actual": actual,
	})
	s.advanceLocked()
}

// onTimerExpiry is the countdown callback. A stale generation means the turn
// already advanced through a player action; that expiry must do nothing.
func (s *Session) onTimerExpiry(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.timer.Current() || s.over != ReasonNone {
		return
	}
	s.logger.Event(string(events.EventTypeTurnSkipped), s.turn, "Countdown expired, forcing skip")
	s.skipLocked(true)
}

// advanceLocked moves to the next turn and runs the turn pipeline.
func (s *Session) advanceLocked() {
	s.turn++
	s.beginTurnLocked()
}

// beginTurnLocked is the per-turn sequence. Order matters: pending effects
// fire before drift, interest before valuation, the snapshot before the
// terminal check, and turn setup only if the run survives.
func (s *Session) beginTurnLocked() {
	started := time.Now()

	s.queue.Drain(s.turn, &s.stats)
	s.drift.ApplyChaosDrift(s.turn, &s.stats)
	s.drift.ApplyLoyaltyRecovery(s.turn, &s.stats)
	s.drift.ApplyStressDrain(s.turn, &s.stats)
	s.treasury.ApplyInterest(s.turn, &s.stats, s.baseRate)
	s.treasury.ApplyValuationDrift(s.turn, &s.stats)
	s.feed.CheckScandals(s.turn, &s.stats)

	s.history.Record(s.turn, &s.stats, rules.EffectiveInterestRate(s.baseRate, s.stats.Chaos, s.stats.CoinValuation))

	outcome := s.terms.Evaluate(s.turn, &s.stats, s.term, s.maxTurns, s.score)
	if outcome.Over {
		s.finishLocked(outcome)
		metrics.Get().RecordTurn(time.Since(started))
		return
	}
	if outcome.NewTerm == Term2 && s.term == Term1 {
		s.term = Term2
		s.maxTurns = s.terms.Transition(s.turn, &s.stats)
	}

	s.dealLocked()
	metrics.Get().RecordTurn(time.Since(started))
}

// dealLocked sets up the decision state for the new turn.
func (s *Session) dealLocked() {
	s.offered = s.drawPlans(s.stats.MaxCards())
	s.situation = s.catalog.Situations[s.rng.Intn(len(s.catalog.Situations))]
	s.selectedPlan = nil
	s.spinsRemaining = 0
	s.spinTotal = 0
	s.revealed = make(map[string]map[string]string)

	if s.turn%BotGrantInterval == 0 {
		s.stats.Apply(stats.Effect{FreeBots: 1})
		s.eventLog.Emit(events.EventTypeBotsGranted, s.turn, "A fresh bot reports for posting duty.",
			map[string]interface{}{"freeBots": s.stats.FreeBots})
	}

	s.feed.GenerateTurnChatter(s.turn)

	s.eventLog.Emit(events.EventTypeSituationDrawn, s.turn, s.situation.Description,
		map[string]interface{}{"situationId": s.situation.ID})
	s.eventLog.Emit(events.EventTypeTurnStarted, s.turn,
		fmt.Sprintf("Quarter %d of %d begins.", s.turn, s.maxTurns),
		map[string]interface{}{"term": int(s.term)})

	s.timer.Start(TurnSeconds * time.Second)
	s.turnDeadline = time.Now().Add(TurnSeconds * time.Second)
}

// drawPlans picks n distinct cards from the catalog.
func (s *Session) drawPlans(n int) []plan.Card {
	pool := s.catalog.Plans
	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]plan.Card, 0, n)
	used := make(map[int]bool, n)
	for len(picked) < n {
		i := s.rng.Intn(len(pool))
		if used[i] {
			continue
		}
		used[i] = true
		picked = append(picked, pool[i])
	}
	return picked
}

// finishLocked seals the run and persists the best score.
func (s *Session) finishLocked(outcome TermOutcome) {
	s.over = outcome.Reason
	s.overDetail = outcome.Detail
	if outcome.Reason == ReasonVictory && outcome.ScoreFactor > 1 {
		s.score *= outcome.ScoreFactor
	}
	s.timer.Stop()

	if s.score > s.bestScore {
		s.bestScore = s.score
		if s.highScores != nil {
			if err := s.highScores.Save(s.score); err != nil {
				s.logger.Error("Could not persist high score: " + err.Error())
			}
		}
		s.eventLog.Emit(events.EventTypeHighScore, s.turn, "A new personal best. Tremendous.",
			map[string]interface{}{"score": s.score})
	}

	metrics.Get().RecordRunEnd()
	s.logger.Event(string(events.EventTypeGameOver), s.turn,
		fmt.Sprintf("Reason: %s | Score: %d", outcome.Reason, s.score))
	s.eventLog.Emit(events.EventTypeGameOver, s.turn, outcome.Detail, map[string]interface{}{
		"reason": string(outcome.Reason),
		"score":  s.score,
	})
}

// CardView is the player-facing projection of an offered card: costs are
// pre-adjusted and outcome bands stay hidden.
type CardView struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   plan.Category     `json:"category"`
	Cost       int               `json:"cost"`
	Revealed   map[string]string `json:"revealed,omitempty"`
	Selected   bool              `json:"selected"`
	Researched []string          `json:"researched,omitempty"`
}

// State is the full snapshot handed to the presentation layer.
type State struct {
	SessionID    string               `json:"sessionId"`
	Turn         int                  `json:"turn"`
	MaxTurns     int                  `json:"maxTurns"`
	Term         int                  `json:"term"`
	Score        int                  `json:"score"`
	BestScore    int                  `json:"bestScore"`
	Stats        stats.Vector         `json:"stats"`
	Debt         int                  `json:"debt"`
	InterestRate float64              `json:"interestRate"`
	Over         bool                 `json:"over"`
	Reason       string               `json:"reason,omitempty"`
	Detail       string               `json:"detail,omitempty"`
	Situation    situation.Situation  `json:"situation"`
	Offered      []CardView           `json:"offered"`
	SelectedPlan string               `json:"selectedPlan,omitempty"`
	Spins        int                  `json:"spinsRemaining"`
	SpinTotal    int                  `json:"spinTotal"`
	Pending      int                  `json:"pendingEffects"`
	TurnEndsAt   time.Time            `json:"turnEndsAt"`
	Feed         []FeedMessage        `json:"feed"`
	Instruments  []market.Instrument  `json:"instruments"`
	Positions    []market.Position    `json:"positions"`
	RealizedPL   int                  `json:"realizedPL"`
	History      []FinancialSnapshot  `json:"history"`
}

// Snapshot returns the current state for the API and the WS broadcaster.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	offered := make([]CardView, 0, len(s.offered))
	for i := range s.offered {
		card := &s.offered[i]
		view := CardView{
			ID:       card.ID,
			Name:     card.Name,
			Category: card.Category,
			Cost:     rules.AdjustedCost(card.BaseCost, s.stats.CoinValuation, s.stats.Support),
			Revealed: s.revealed[card.ID],
			Selected: s.selectedPlan != nil && s.selectedPlan.ID == card.ID,
		}
		for attr := range s.revealed[card.ID] {
			view.Researched = append(view.Researched, attr)
		}
		offered = append(offered, view)
	}

	state := State{
		SessionID:    s.ID,
		Turn:         s.turn,
		MaxTurns:     s.maxTurns,
		Term:         int(s.term),
		Score:        s.score,
		BestScore:    s.bestScore,
		Stats:        s.stats,
		Debt:         s.stats.Debt(),
		InterestRate: rules.EffectiveInterestRate(s.baseRate, s.stats.Chaos, s.stats.CoinValuation),
		Over:         s.over != ReasonNone,
		Reason:       string(s.over),
		Detail:       s.overDetail,
		Situation:    s.situation,
		Offered:      offered,
		Spins:        s.spinsRemaining,
		SpinTotal:    s.spinTotal,
		Pending:      len(s.queue.Pending()),
		TurnEndsAt:   s.turnDeadline,
		Feed:         s.feed.Messages(),
		Instruments:  s.exchange.Instruments(),
		Positions:    s.portfolio.Positions(),
		RealizedPL:   s.portfolio.Realized(),
		History:      s.history.Snapshots(),
	}
	if s.selectedPlan != nil {
		state.SelectedPlan = s.selectedPlan.ID
	}
	return state
}

// ShareText renders the brag line for the end-of-run screen.
func (s *Session) ShareText() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.over {
	case ReasonVictory:
		return fmt.Sprintf("Two full terms, %d points, zero mistakes acknowledged. Presidential.", s.score)
	case ReasonDeath:
		return fmt.Sprintf("Gave everything for the country, including a pulse. %d quarters, %d points.", s.turn, s.score)
	case ReasonLeaked:
		return fmt.Sprintf("The files were fake but the resignation was real. %d quarters, %d points.", s.turn, s.score)
	case ReasonTermEnded:
		return fmt.Sprintf("Robbed by the electorate after %d quarters. %d points, rigged.", s.turn, s.score)
	default:
		return fmt.Sprintf("Quarter %d and still in charge. %d points and climbing.", s.turn, s.score)
	}
}

// EventLog exposes the log for the network layer's pollers.
func (s *Session) EventLog() *events.EventLog {
	return s.eventLog
}

// Close stops the turn timer. The session is unusable afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer.Stop()
}
