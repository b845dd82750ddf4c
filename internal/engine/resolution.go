package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/satiregames/orangenotlemons/server/internal/domain/plan"
	"github.com/satiregames/orangenotlemons/server/internal/domain/rules"
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/metrics"
)

// Plan research pricing.
const (
	researchMoneyCost  = 50
	researchHealthBase = 5
)

// SelectPlan commits to one of the offered cards, pays its adjusted cost
// (borrowing if short) and arms the slot machine.
func (s *Session) SelectPlan(planID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over != ReasonNone {
		return fmt.Errorf("run is over (%s)", s.over)
	}
	if s.selectedPlan != nil {
		return fmt.Errorf("plan %q already selected this turn", s.selectedPlan.ID)
	}
	card := s.offeredPlan(planID)
	if card == nil {
		return fmt.Errorf("plan %q is not on offer", planID)
	}

	cost := rules.AdjustedCost(card.BaseCost, s.stats.CoinValuation, s.stats.Support)
	if s.stats.Money < cost {
		// Borrowing: the lenders always say yes, at a price.
		s.baseRate = minRate(s.baseRate+rules.BorrowRateIncrease, rules.MaxInterestRate)
	}
	s.stats.Apply(stats.Effect{Money: -cost})

	s.selectedPlan = card
	s.spinsRemaining = SpinsPerPlan
	s.spinTotal = 0

	s.eventLog.Emit(events.EventTypePlanSelected, s.turn,
		fmt.Sprintf("%s is happening. Cost: %d.", card.Name, cost),
		map[string]interface{}{
			"planId": card.ID,
			"cost":   cost,
			"rate":   s.baseRate,
		})
	return nil
}

// ResearchPlan reveals one attribute of an offered card, paid in money or in
// health (scaled by the health-tier multiplier).
func (s *Session) ResearchPlan(planID, attr, payWith string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over != ReasonNone {
		return "", fmt.Errorf("run is over (%s)", s.over)
	}
	card := s.offeredPlan(planID)
	if card == nil {
		return "", fmt.Errorf("plan %q is not on offer", planID)
	}
	if attr == "" {
		attr = s.randomHiddenAttr(card)
		if attr == "" {
			return "", fmt.Errorf("plan %q has nothing left to reveal", planID)
		}
	}
	text, ok := card.Revealable[attr]
	if !ok {
		return "", fmt.Errorf("plan %q has no %q attribute to reveal", planID, attr)
	}
	if _, done := s.revealed[planID][attr]; done {
		return "", fmt.Errorf("plan %q attribute %q already revealed", planID, attr)
	}

	switch payWith {
	case "health":
		cost := int(math.Ceil(researchHealthBase * s.stats.ResearchMultiplier()))
		s.stats.Apply(stats.Effect{Health: -cost})
	case "money", "":
		s.stats.Apply(stats.Effect{Money: -researchMoneyCost})
		if s.stats.Money < 0 {
			s.baseRate = minRate(s.baseRate+rules.BorrowRateIncrease, rules.MaxInterestRate)
		}
	default:
		return "", fmt.Errorf("unknown payment method %q", payWith)
	}

	if s.revealed[planID] == nil {
		s.revealed[planID] = make(map[string]string)
	}
	s.revealed[planID][attr] = text

	s.eventLog.Emit(events.EventTypePlanResearched, s.turn,
		fmt.Sprintf("Opposition research on %s: %s", card.Name, text),
		map[string]interface{}{"planId": planID, "attr": attr})
	return text, nil
}

// SpinSlot pulls the machine once and accumulates the outcome score.
func (s *Session) SpinSlot() (SpinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over != ReasonNone {
		return SpinResult{}, fmt.Errorf("run is over (%s)", s.over)
	}
	if s.selectedPlan == nil {
		return SpinResult{}, fmt.Errorf("no plan selected")
	}
	if s.spinsRemaining <= 0 {
		return SpinResult{}, fmt.Errorf("no spins remaining")
	}

	result := s.slots.Spin(s.turn, s.stats.Luck)
	s.spinTotal += result.Total
	s.spinsRemaining--
	return result, nil
}

// ExecutePlan resolves the selected plan against the accumulated spin score.
func (s *Session) ExecutePlan() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over != ReasonNone {
		return fmt.Errorf("run is over (%s)", s.over)
	}
	if s.selectedPlan == nil {
		return fmt.Errorf("no plan selected")
	}
	s.executeLocked(s.selectedPlan, s.spinTotal, false)
	return nil
}

// ExecuteBlind resolves the selected plan without gambling: the score is a
// deterministic read of the current position, minus the blind penalty.
func (s *Session) ExecuteBlind() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over != ReasonNone {
		return 0, fmt.Errorf("run is over (%s)", s.over)
	}
	if s.selectedPlan == nil {
		return 0, fmt.Errorf("no plan selected")
	}

	score := rules.BlindScore(s.stats.Chaos, s.stats.Support, s.stats.Loyalty, s.rng.Float64())
	s.executeLocked(s.selectedPlan, score, true)
	return score, nil
}

// executeLocked is the shared resolution path: verdict, band, modified
// immediate effects, market reaction, score accrual, delayed scheduling, and
// the turn advance.
func (s *Session) executeLocked(card *plan.Card, score int, blind bool) {
	verdict := s.situation.Evaluate(card.Category)
	band := card.Resolve(score)

	modified := s.situation.ModifyEffect(band.Immediate, verdict)
	actual := s.stats.Apply(modified)

	shocks := s.exchange.ApplyActionEffects(s.turn, card.ID)
	for range shocks {
		metrics.Get().RecordMarketShock()
	}

	gained := int(math.Floor(float64(score) * s.situation.ScoreModifier(verdict)))
	if gained < 0 {
		gained = 0
	}
	s.score += gained

	for _, tmpl := range band.Delayed {
		effects := s.situation.ModifyDelayed(tmpl.Effects, verdict)
		s.queue.Schedule(s.turn, card.ID, tmpl.Description, tmpl.TurnsDelay, effects)
	}

	metrics.Get().RecordPlanExecuted(blind)
	s.eventLog.Emit(events.EventTypeOutcomeResolved, s.turn, band.Title+": "+band.Description,
		map[string]interface{}{
			"planId":  card.ID,
			"verdict": string(verdict),
			"score":   score,
			"gained":  gained,
			"blind":   blind,
			"actual":  actual,
		})

	s.advanceLocked()
}

// randomHiddenAttr picks an unrevealed attribute of the card, deterministically
// under the session's entropy source.
func (s *Session) randomHiddenAttr(card *plan.Card) string {
	hidden := make([]string, 0, len(card.Revealable))
	for attr := range card.Revealable {
		if _, done := s.revealed[card.ID][attr]; !done {
			hidden = append(hidden, attr)
		}
	}
	if len(hidden) == 0 {
		return ""
	}
	sort.Strings(hidden)
	return hidden[s.rng.Intn(len(hidden))]
}

// offeredPlan finds a card in the current offer.
func (s *Session) offeredPlan(planID string) *plan.Card {
	for i := range s.offered {
		if s.offered[i].ID == planID {
			return &s.offered[i]
		}
	}
	return nil
}
