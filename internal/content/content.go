// Package content ships the authored game catalog: action cards, situations,
// market instruments, the plan/stock shock table, slot symbols and feed text.
// Everything is validated once at load time; malformed content is a
// programming error, never a runtime condition.
package content

import (
	"fmt"

	"github.com/satiregames/orangenotlemons/server/internal/domain/plan"
	"github.com/satiregames/orangenotlemons/server/internal/domain/situation"
	"github.com/satiregames/orangenotlemons/server/internal/market"
)

// Catalog is the full content set one run is played against.
type Catalog struct {
	Plans        []plan.Card
	Situations   []situation.Situation
	Instruments  []market.Instrument
	StockEffects map[string][]market.Shock
	SlotSymbols  []SlotSymbol
	Feed         FeedTables
}

// Load returns the validated default catalog.
func Load() (*Catalog, error) {
	c := &Catalog{
		Plans:        defaultPlans(),
		Situations:   defaultSituations(),
		Instruments:  defaultInstruments(),
		StockEffects: defaultStockEffects(),
		SlotSymbols:  defaultSlotSymbols(),
		Feed:         defaultFeedTables(),
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("content validation: %w", err)
	}
	return c, nil
}

// Validate enforces the whole content-authoring contract.
func (c *Catalog) Validate() error {
	if len(c.Plans) == 0 {
		return fmt.Errorf("empty plan catalog")
	}
	planIDs := make(map[string]bool, len(c.Plans))
	for i := range c.Plans {
		card := &c.Plans[i]
		if err := card.Validate(); err != nil {
			return err
		}
		if planIDs[card.ID] {
			return fmt.Errorf("duplicate plan id %q", card.ID)
		}
		planIDs[card.ID] = true
	}

	if len(c.Situations) == 0 {
		return fmt.Errorf("empty situation pool")
	}
	situationIDs := make(map[string]bool, len(c.Situations))
	for i := range c.Situations {
		s := &c.Situations[i]
		if err := s.Validate(); err != nil {
			return err
		}
		if situationIDs[s.ID] {
			return fmt.Errorf("duplicate situation id %q", s.ID)
		}
		situationIDs[s.ID] = true
	}

	if len(c.Instruments) == 0 {
		return fmt.Errorf("empty instrument set")
	}
	instrumentIDs := make(map[string]bool, len(c.Instruments))
	for _, inst := range c.Instruments {
		if inst.ID == "" || inst.Symbol == "" {
			return fmt.Errorf("instrument missing id or symbol: %+v", inst)
		}
		if inst.Price < market.PriceFloor {
			return fmt.Errorf("instrument %q: initial price %d below floor %d", inst.ID, inst.Price, market.PriceFloor)
		}
		if instrumentIDs[inst.ID] {
			return fmt.Errorf("duplicate instrument id %q", inst.ID)
		}
		instrumentIDs[inst.ID] = true
	}

	for actionID, shocks := range c.StockEffects {
		if !planIDs[actionID] {
			return fmt.Errorf("stock effects reference unknown plan %q", actionID)
		}
		for _, shock := range shocks {
			if !instrumentIDs[shock.InstrumentID] {
				return fmt.Errorf("plan %q: shock references unknown instrument %q", actionID, shock.InstrumentID)
			}
		}
	}

	if len(c.SlotSymbols) < 2 {
		return fmt.Errorf("slot reel needs at least two symbols")
	}
	positive := false
	for _, sym := range c.SlotSymbols {
		if sym.ID == "" {
			return fmt.Errorf("slot symbol with empty id")
		}
		if sym.Value > 0 {
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("slot reel has no positive symbol")
	}

	pools := map[string][]string{
		"news": c.Feed.News, "rumors": c.Feed.Rumors, "nonsense": c.Feed.Nonsense,
		"critical": c.Feed.Critical, "praise": c.Feed.Praise, "rants": c.Feed.Rants,
		"mockery": c.Feed.Mockery,
	}
	for name, pool := range pools {
		if len(pool) == 0 {
			return fmt.Errorf("empty feed pool %q", name)
		}
	}
	return nil
}

// Plan returns a card by id.
func (c *Catalog) Plan(id string) (*plan.Card, bool) {
	for i := range c.Plans {
		if c.Plans[i].ID == id {
			return &c.Plans[i], true
		}
	}
	return nil, false
}
