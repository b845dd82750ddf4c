// Package market implements the stock exchange that reacts to executed plans,
// plus the player's portfolio bookkeeping.
package market

import (
	"fmt"
	"math"
	"sync"

	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// PriceFloor is the absolute minimum any instrument can trade at.
const PriceFloor = 10

// HistoryCap bounds each instrument's price-history ring.
const HistoryCap = 10

// Instrument is one tradable stock. Price is always >= PriceFloor.
type Instrument struct {
	ID      string `json:"id"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Sector  string `json:"sector"`
	Price   int    `json:"price"`
	History []int  `json:"history"`
}

// Shock is one entry of the static plan -> price effect table.
type Shock struct {
	InstrumentID  string `json:"instrumentId"`
	PercentChange int    `json:"percentChange"`
	Reason        string `json:"reason"`
	Hint          string `json:"hint"`
}

// Exchange owns the instrument set for one run. The instrument set is fixed
// at construction and only prices mutate.
type Exchange struct {
	mu          sync.Mutex
	instruments map[string]*Instrument
	order       []string
	effects     map[string][]Shock

	eventLog *events.EventLog
	logger   *logger.Logger
}

// NewExchange copies the given instruments so each run gets fresh prices.
func NewExchange(instruments []Instrument, effects map[string][]Shock, eventLog *events.EventLog, log *logger.Logger) (*Exchange, error) {
	ex := &Exchange{
		instruments: make(map[string]*Instrument, len(instruments)),
		order:       make([]string, 0, len(instruments)),
		effects:     effects,
		eventLog:    eventLog,
		logger:      log,
	}
	for _, inst := range instruments {
		if inst.ID == "" {
			return nil, fmt.Errorf("instrument has empty id")
		}
		if inst.Price < PriceFloor {
			return nil, fmt.Errorf("instrument %q: initial price %d below floor", inst.ID, inst.Price)
		}
		if _, dup := ex.instruments[inst.ID]; dup {
			return nil, fmt.Errorf("duplicate instrument id %q", inst.ID)
		}
		copied := inst
		copied.History = []int{inst.Price}
		ex.instruments[inst.ID] = &copied
		ex.order = append(ex.order, inst.ID)
	}
	for actionID, shocks := range effects {
		for _, shock := range shocks {
			if _, ok := ex.instruments[shock.InstrumentID]; !ok {
				return nil, fmt.Errorf("action %q: shock references unknown instrument %q", actionID, shock.InstrumentID)
			}
		}
	}
	return ex, nil
}

// ApplyActionEffects applies the static shock table for the executed plan and
// returns the shocks that fired. Unknown plan ids shock nothing.
func (ex *Exchange) ApplyActionEffects(turn int, actionID string) []Shock {
	shocks, ok := ex.effects[actionID]
	if !ok {
		return nil
	}

	ex.mu.Lock()
	defer ex.mu.Unlock()
	for _, shock := range shocks {
		inst := ex.instruments[shock.InstrumentID]
		old := inst.Price
		next := int(math.Ceil(float64(old) * (1 + float64(shock.PercentChange)/100)))
		if next < PriceFloor {
			next = PriceFloor
		}
		inst.Price = next
		inst.History = append(inst.History, next)
		if len(inst.History) > HistoryCap {
			inst.History = inst.History[len(inst.History)-HistoryCap:]
		}

		ex.logger.Event(string(events.EventTypeMarketShock), turn,
			fmt.Sprintf("%s %d -> %d (%+d%%)", inst.Symbol, old, next, shock.PercentChange))
		ex.eventLog.Emit(events.EventTypeMarketShock, turn,
			fmt.Sprintf("%s: %s", inst.Symbol, shock.Reason),
			map[string]interface{}{
				"instrumentId":  inst.ID,
				"oldPrice":      old,
				"newPrice":      next,
				"percentChange": shock.PercentChange,
			})
	}
	return shocks
}

// Price returns the current price of an instrument.
func (ex *Exchange) Price(instrumentID string) (int, error) {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	inst, ok := ex.instruments[instrumentID]
	if !ok {
		return 0, fmt.Errorf("unknown instrument %q", instrumentID)
	}
	return inst.Price, nil
}

// Instruments returns a snapshot of every instrument in catalog order.
func (ex *Exchange) Instruments() []Instrument {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	out := make([]Instrument, 0, len(ex.order))
	for _, id := range ex.order {
		inst := *ex.instruments[id]
		inst.History = append([]int(nil), inst.History...)
		out = append(out, inst)
	}
	return out
}
