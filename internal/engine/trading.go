package engine

import (
	"fmt"

	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/market"
	"github.com/satiregames/orangenotlemons/server/internal/platform/metrics"
)

// TradeAction is the closed set of market orders.
type TradeAction string

const (
	TradeBuy   TradeAction = "buy"
	TradeSell  TradeAction = "sell"
	TradeShort TradeAction = "short"
	TradeClose TradeAction = "close"
)

// TradeReceipt reports one filled order.
type TradeReceipt struct {
	Action       TradeAction `json:"action"`
	InstrumentID string      `json:"instrumentId"`
	Shares       int         `json:"shares"`
	Price        int         `json:"price"`
	CashDelta    int         `json:"cashDelta"`
	Realized     int         `json:"realized"`
}

// Trade executes a market order against the current quote and settles the
// cash into the stat vector. Buying with money you do not have is refused;
// the lenders draw the line at margin.
func (s *Session) Trade(action TradeAction, instrumentID string, shares int) (TradeReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over != ReasonNone {
		return TradeReceipt{}, fmt.Errorf("run is over (%s)", s.over)
	}

	price, err := s.exchange.Price(instrumentID)
	if err != nil {
		return TradeReceipt{}, err
	}

	receipt := TradeReceipt{Action: action, InstrumentID: instrumentID, Shares: shares, Price: price}
	switch action {
	case TradeBuy:
		cost := shares * price
		if s.stats.Money < cost {
			return TradeReceipt{}, fmt.Errorf("insufficient funds: need %d, have %d", cost, s.stats.Money)
		}
		cost, err = s.portfolio.Buy(instrumentID, shares, price)
		receipt.CashDelta = -cost
	case TradeSell:
		var proceeds, realized int
		proceeds, realized, err = s.portfolio.Sell(instrumentID, shares, price)
		receipt.CashDelta = proceeds
		receipt.Realized = realized
	case TradeShort:
		var proceeds int
		proceeds, err = s.portfolio.Short(instrumentID, shares, price)
		receipt.CashDelta = proceeds
	case TradeClose:
		if need := shares * price; s.stats.Money < need {
			return TradeReceipt{}, fmt.Errorf("insufficient funds to cover: need %d, have %d", need, s.stats.Money)
		}
		var cost, realized int
		cost, realized, err = s.portfolio.CloseShort(instrumentID, shares, price)
		receipt.CashDelta = -cost
		receipt.Realized = realized
	default:
		return TradeReceipt{}, fmt.Errorf("unknown trade action %q", action)
	}
	if err != nil {
		return TradeReceipt{}, err
	}

	s.stats.Apply(stats.Effect{Money: receipt.CashDelta})
	metrics.Get().RecordTrade()
	s.eventLog.Emit(events.EventTypeTradeExecuted, s.turn,
		fmt.Sprintf("%s %d x %s at %d", action, shares, instrumentID, price),
		receipt)
	return receipt, nil
}

// ResearchStock buys one research level on an instrument and returns what
// the new level reveals about the currently offered plans.
func (s *Session) ResearchStock(instrumentID string) (int, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over != ReasonNone {
		return 0, nil, fmt.Errorf("run is over (%s)", s.over)
	}
	if _, err := s.exchange.Price(instrumentID); err != nil {
		return 0, nil, err
	}
	if s.stats.Money < market.ResearchCost {
		return 0, nil, fmt.Errorf("insufficient funds: research costs %d", market.ResearchCost)
	}

	level, raised := s.research.Raise(instrumentID)
	if !raised {
		return level, nil, fmt.Errorf("instrument %q already fully researched", instrumentID)
	}
	s.stats.Apply(stats.Effect{Money: -market.ResearchCost})

	hints := s.stockOutlookLocked(instrumentID, level)
	s.eventLog.Emit(events.EventTypeStockResearched, s.turn,
		fmt.Sprintf("Analyst coverage on %s upgraded to level %d.", instrumentID, level),
		map[string]interface{}{"instrumentId": instrumentID, "level": level})
	return level, hints, nil
}

// StockOutlook reports what current research levels reveal about how the
// offered plans would move an instrument.
func (s *Session) StockOutlook(instrumentID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stockOutlookLocked(instrumentID, s.research.Level(instrumentID))
}

func (s *Session) stockOutlookLocked(instrumentID string, level int) []string {
	var hints []string
	for i := range s.offered {
		for _, shock := range s.catalog.StockEffects[s.offered[i].ID] {
			if shock.InstrumentID != instrumentID {
				continue
			}
			hints = append(hints, fmt.Sprintf("%s: %s", s.offered[i].Name, market.EffectHint(level, shock)))
		}
	}
	return hints
}

// ModerateFeed deletes a post or bans its author.
func (s *Session) ModerateFeed(messageID, action string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over != ReasonNone {
		return fmt.Errorf("run is over (%s)", s.over)
	}

	var err error
	switch action {
	case "delete":
		s.baseRate, err = s.feed.DeletePost(s.turn, messageID, &s.stats, s.baseRate)
	case "ban":
		s.baseRate, err = s.feed.BanUser(s.turn, messageID, &s.stats, s.baseRate)
	default:
		return fmt.Errorf("unknown moderation action %q", action)
	}
	return err
}

// Rant posts as the player, spending a bot or petty cash.
func (s *Session) Rant() (FeedMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over != ReasonNone {
		return FeedMessage{}, false, fmt.Errorf("run is over (%s)", s.over)
	}
	msg, success := s.feed.Rant(s.turn, &s.stats)
	return msg, success, nil
}
