package engine

import (
	"strings"
	"testing"

	"github.com/satiregames/orangenotlemons/server/internal/content"
	"github.com/satiregames/orangenotlemons/server/internal/domain/plan"
	"github.com/satiregames/orangenotlemons/server/internal/domain/situation"
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/market"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// fixedSource makes every probabilistic branch deterministic: Float64 never
// satisfies a `< p` check and Intn always lands mid-range.
type fixedSource struct{ f float64 }

func (s fixedSource) Float64() float64 { return s.f }
func (s fixedSource) Intn(n int) int   { return n / 2 }

type memoryScores struct{ best int }

func (m *memoryScores) Best() (int, error)   { return m.best, nil }
func (m *memoryScores) Save(score int) error { m.best = score; return nil }

func decreeCard() plan.Card {
	return plan.Card{
		ID:       "decree",
		Name:     "Executive Decree",
		Category: plan.CategoryPolitics,
		BaseCost: 0,
		Outcomes: []plan.OutcomeBand{
			{MinScore: 50, MaxScore: 100, Title: "Triumph",
				Immediate: stats.Effect{Loyalty: 25, Support: 10, Chaos: 8}},
			{MinScore: -100, MaxScore: 49, Title: "Backfire",
				Immediate: stats.Effect{Loyalty: -5, Support: -5, Chaos: 10}},
		},
	}
}

func testCatalog(sit situation.Situation) *content.Catalog {
	def, _ := content.Load()
	return &content.Catalog{
		Plans:        []plan.Card{decreeCard()},
		Situations:   []situation.Situation{sit},
		Instruments:  []market.Instrument{{ID: "maga-media", Symbol: "TRTH", Name: "Truth Megaphone Corp", Sector: "media", Price: 50}},
		StockEffects: map[string][]market.Shock{},
		SlotSymbols:  def.SlotSymbols,
		Feed:         def.Feed,
	}
}

func neutralSituation() situation.Situation {
	return situation.Situation{ID: "calm", Name: "Calm", BonusMultiplier: 1.3, PenaltyFactor: 1.4}
}

func newTestSession(t *testing.T, sit situation.Situation) *Session {
	t.Helper()
	s, err := NewSession(testCatalog(sit), events.NewEventLog(nil), logger.NewLogger(), fixedSource{f: 0.99}, &memoryScores{})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	t.Cleanup(s.Close)
	s.StartRun()
	return s
}

func TestStartRunDealsByHealthTier(t *testing.T) {
	s := newTestSession(t, neutralSituation())
	state := s.Snapshot()

	if state.Turn != 1 {
		t.Errorf("Expected turn 1, got %d", state.Turn)
	}
	// Catalog has a single plan, so the tier-3 offer caps at 1.
	if len(state.Offered) != 1 {
		t.Errorf("Expected 1 offered card, got %d", len(state.Offered))
	}
	if state.Over {
		t.Errorf("Fresh run must not be over")
	}
	if len(state.History) < 13 {
		t.Errorf("Expected pregame plus turn snapshots, got %d rows", len(state.History))
	}
}

func TestNeutralExecutionWorkedExample(t *testing.T) {
	s := newTestSession(t, neutralSituation())

	if err := s.SelectPlan("decree"); err != nil {
		t.Fatalf("SelectPlan failed: %v", err)
	}
	s.mu.Lock()
	s.spinTotal = 60
	s.mu.Unlock()
	if err := s.ExecutePlan(); err != nil {
		t.Fatalf("ExecutePlan failed: %v", err)
	}

	state := s.Snapshot()
	if state.Stats.Loyalty != 90 {
		t.Errorf("Expected loyalty 90 (65+25), got %d", state.Stats.Loyalty)
	}
	if state.Score != 60 {
		t.Errorf("Neutral verdict: expected score 60, got %d", state.Score)
	}
	if state.Turn != 2 {
		t.Errorf("Execution must advance the turn, got %d", state.Turn)
	}
	if state.SelectedPlan != "" {
		t.Errorf("Selection must reset on the new turn")
	}
}

func TestIdealExecutionWorkedExample(t *testing.T) {
	ideal := situation.Situation{
		ID: "tailwind", Name: "Tailwind",
		IdealCategories: []plan.Category{plan.CategoryPolitics},
		BonusMultiplier: 1.5, PenaltyFactor: 2.0,
	}
	s := newTestSession(t, ideal)

	if err := s.SelectPlan("decree"); err != nil {
		t.Fatalf("SelectPlan failed: %v", err)
	}
	s.mu.Lock()
	s.spinTotal = 60
	s.mu.Unlock()
	if err := s.ExecutePlan(); err != nil {
		t.Fatalf("ExecutePlan failed: %v", err)
	}

	state := s.Snapshot()
	// floor(25*1.5)=37; 65+37=102 clamps to 100.
	if state.Stats.Loyalty != 100 {
		t.Errorf("Expected loyalty clamped to 100, got %d", state.Stats.Loyalty)
	}
	if state.Score != 90 {
		t.Errorf("Ideal verdict: expected score floor(60*1.5)=90, got %d", state.Score)
	}
}

func TestSkipTurnPenalty(t *testing.T) {
	s := newTestSession(t, neutralSituation())

	if err := s.SkipTurn(); err != nil {
		t.Fatalf("SkipTurn failed: %v", err)
	}
	state := s.Snapshot()
	if state.Stats.Loyalty != 61 {
		t.Errorf("Expected loyalty 61 after skip, got %d", state.Stats.Loyalty)
	}
	if state.Stats.Support != 37 {
		t.Errorf("Expected support 37 after skip, got %d", state.Stats.Support)
	}
	if state.Turn != 2 {
		t.Errorf("Skip must advance the turn, got %d", state.Turn)
	}
}

func TestStaleTimerExpiryDoesNothing(t *testing.T) {
	s := newTestSession(t, neutralSituation())

	before := s.Snapshot()
	s.onTimerExpiry(0) // generation 0 predates the armed timer
	after := s.Snapshot()

	if after.Turn != before.Turn || after.Stats.Loyalty != before.Stats.Loyalty {
		t.Errorf("Stale expiry must be a no-op: before %+v after %+v", before.Stats, after.Stats)
	}

	s.onTimerExpiry(s.timer.Current())
	state := s.Snapshot()
	if state.Turn != before.Turn+1 {
		t.Errorf("Live expiry must force exactly one skip, got turn %d", state.Turn)
	}
}

func TestDebtInterestWorkedExample(t *testing.T) {
	s := newTestSession(t, neutralSituation())

	s.mu.Lock()
	s.stats.Money = -1000
	s.stats.Chaos = 100
	s.stats.CoinValuation = 50
	s.mu.Unlock()

	if err := s.SkipTurn(); err != nil {
		t.Fatalf("SkipTurn failed: %v", err)
	}
	state := s.Snapshot()
	// rate 0.08+0.05+0.03 = 0.16, interest floor(1000*0.16) = 160.
	if state.Stats.Money != -1160 {
		t.Errorf("Expected money -1160 after interest, got %d", state.Stats.Money)
	}
	if state.Debt != 1160 {
		t.Errorf("Expected derived debt 1160, got %d", state.Debt)
	}
}

func TestGameOverSealsTheRun(t *testing.T) {
	s := newTestSession(t, neutralSituation())

	s.mu.Lock()
	s.stats.Health = 1
	s.stats.Chaos = 100 // drift and stress drain finish the job
	s.score = 500
	s.mu.Unlock()

	if err := s.SkipTurn(); err != nil {
		t.Fatalf("SkipTurn failed: %v", err)
	}
	state := s.Snapshot()
	if !state.Over || state.Reason != string(ReasonDeath) {
		t.Fatalf("Expected death, got %+v", state)
	}
	if state.BestScore != 500 {
		t.Errorf("Expected high score 500 persisted, got %d", state.BestScore)
	}
	if err := s.SkipTurn(); err == nil {
		t.Errorf("Actions after game over must be rejected")
	}
	if err := s.SelectPlan("decree"); err == nil {
		t.Errorf("Selection after game over must be rejected")
	}
	if text := s.ShareText(); !strings.Contains(text, "pulse") {
		t.Errorf("Expected the death brag line, got %q", text)
	}
}

func TestSpinRequiresSelection(t *testing.T) {
	s := newTestSession(t, neutralSituation())

	if _, err := s.SpinSlot(); err == nil {
		t.Fatalf("Spin without a selected plan must fail")
	}
	if err := s.SelectPlan("decree"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < SpinsPerPlan; i++ {
		if _, err := s.SpinSlot(); err != nil {
			t.Fatalf("Spin %d failed: %v", i, err)
		}
	}
	if _, err := s.SpinSlot(); err == nil {
		t.Errorf("Fourth spin must be refused")
	}
}

func TestTradeRoundTrip(t *testing.T) {
	s := newTestSession(t, neutralSituation())

	receipt, err := s.Trade(TradeBuy, "maga-media", 10)
	if err != nil {
		t.Fatalf("Buy failed: %v", err)
	}
	if receipt.CashDelta != -500 {
		t.Errorf("Expected cash delta -500, got %d", receipt.CashDelta)
	}
	state := s.Snapshot()
	if state.Stats.Money != 1000 {
		t.Errorf("Expected money 1000 after buy, got %d", state.Stats.Money)
	}

	receipt, err = s.Trade(TradeSell, "maga-media", 10)
	if err != nil {
		t.Fatalf("Sell failed: %v", err)
	}
	// Sells execute at 80%: 10*50*0.8 = 400, realized -100.
	if receipt.CashDelta != 400 || receipt.Realized != -100 {
		t.Errorf("Expected proceeds 400 realized -100, got %+v", receipt)
	}
}

func TestBuyBeyondCashRefused(t *testing.T) {
	s := newTestSession(t, neutralSituation())

	if _, err := s.Trade(TradeBuy, "maga-media", 1000); err == nil {
		t.Errorf("Expected refusal to buy beyond available cash")
	}
}

func TestFeedModeration(t *testing.T) {
	s := newTestSession(t, neutralSituation())

	state := s.Snapshot()
	if len(state.Feed) == 0 {
		t.Fatalf("Expected turn chatter on the feed")
	}
	target := state.Feed[0].ID

	if err := s.ModerateFeed(target, "delete"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	after := s.Snapshot()
	if after.Stats.Money != 1450 {
		t.Errorf("Expected money 1450 after delete fee, got %d", after.Stats.Money)
	}
	if after.Stats.Loyalty != 62 {
		t.Errorf("Expected loyalty 62 after delete, got %d", after.Stats.Loyalty)
	}
	if err := s.ModerateFeed(target, "delete"); err == nil {
		t.Errorf("Double moderation must be rejected")
	}
}
