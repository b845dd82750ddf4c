package market

import (
	"fmt"
	"math"
	"sync"
)

// Spread: sells and short entries execute at 80% of the quoted price, buys
// and short covers at 100%.
const sellSpread = 0.8

// Position is the player's holding in one instrument. Shares is signed:
// positive long, negative short. AvgCost is the weighted-average entry price
// per share (the entry credit for shorts).
type Position struct {
	InstrumentID string  `json:"instrumentId"`
	Shares       int     `json:"shares"`
	AvgCost      float64 `json:"avgCost"`
}

// Portfolio tracks positions and realized profit/loss across one run.
// Cash itself lives in the stat vector; trade methods return the cash delta
// for the caller to apply.
type Portfolio struct {
	mu        sync.Mutex
	positions map[string]*Position
	realized  int
}

func NewPortfolio() *Portfolio {
	return &Portfolio{positions: make(map[string]*Position)}
}

// Buy opens or extends a long position at full price and returns the cash
// cost. The cost basis is the weighted average across fills.
func (p *Portfolio) Buy(instrumentID string, shares, price int) (int, error) {
	if shares <= 0 {
		return 0, fmt.Errorf("buy %q: share count must be positive, got %d", instrumentID, shares)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	pos := p.positions[instrumentID]
	if pos != nil && pos.Shares < 0 {
		return 0, fmt.Errorf("buy %q: close the short position first", instrumentID)
	}
	cost := shares * price
	if pos == nil {
		p.positions[instrumentID] = &Position{InstrumentID: instrumentID, Shares: shares, AvgCost: float64(price)}
		return cost, nil
	}
	total := pos.AvgCost*float64(pos.Shares) + float64(cost)
	pos.Shares += shares
	pos.AvgCost = total / float64(pos.Shares)
	return cost, nil
}

// Sell closes part or all of a long position at 80% of the quoted price.
// Returns the cash proceeds and the realized profit or loss on the fill.
func (p *Portfolio) Sell(instrumentID string, shares, price int) (proceeds, realized int, err error) {
	if shares <= 0 {
		return 0, 0, fmt.Errorf("sell %q: share count must be positive, got %d", instrumentID, shares)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	pos := p.positions[instrumentID]
	if pos == nil || pos.Shares < shares {
		return 0, 0, fmt.Errorf("sell %q: not enough shares held", instrumentID)
	}
	proceeds = int(math.Floor(float64(shares) * float64(price) * sellSpread))
	realized = proceeds - int(math.Floor(float64(shares)*pos.AvgCost))
	pos.Shares -= shares
	if pos.Shares == 0 {
		delete(p.positions, instrumentID)
	}
	p.realized += realized
	return proceeds, realized, nil
}

// Short opens or extends a short position, crediting 80% of the quoted price
// per share. The cost basis records the per-share entry credit.
func (p *Portfolio) Short(instrumentID string, shares, price int) (int, error) {
	if shares <= 0 {
		return 0, fmt.Errorf("short %q: share count must be positive, got %d", instrumentID, shares)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	pos := p.positions[instrumentID]
	if pos != nil && pos.Shares > 0 {
		return 0, fmt.Errorf("short %q: sell the long position first", instrumentID)
	}
	credit := float64(price) * sellSpread
	proceeds := int(math.Floor(float64(shares) * credit))
	if pos == nil {
		p.positions[instrumentID] = &Position{InstrumentID: instrumentID, Shares: -shares, AvgCost: credit}
		return proceeds, nil
	}
	held := -pos.Shares
	total := pos.AvgCost*float64(held) + float64(shares)*credit
	held += shares
	pos.Shares = -held
	pos.AvgCost = total / float64(held)
	return proceeds, nil
}

// CloseShort buys back part or all of a short position at full price.
// Returns the cash cost and the realized profit or loss.
func (p *Portfolio) CloseShort(instrumentID string, shares, price int) (cost, realized int, err error) {
	if shares <= 0 {
		return 0, 0, fmt.Errorf("close %q: share count must be positive, got %d", instrumentID, shares)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	pos := p.positions[instrumentID]
	if pos == nil || -pos.Shares < shares {
		return 0, 0, fmt.Errorf("close %q: not enough shares short", instrumentID)
	}
	cost = shares * price
	realized = int(math.Floor(float64(shares)*pos.AvgCost)) - cost
	pos.Shares += shares
	if pos.Shares == 0 {
		delete(p.positions, instrumentID)
	}
	p.realized += realized
	return cost, realized, nil
}

// Position returns a copy of the current position, if any.
func (p *Portfolio) Position(instrumentID string) (Position, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pos, ok := p.positions[instrumentID]
	if !ok {
		return Position{}, false
	}
	return *pos, true
}

// Positions returns a copy of every open position.
func (p *Portfolio) Positions() []Position {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Position, 0, len(p.positions))
	for _, pos := range p.positions {
		out = append(out, *pos)
	}
	return out
}

// Realized is the total realized profit/loss for the run.
func (p *Portfolio) Realized() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.realized
}
