package market

import (
	"testing"

	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

func testExchange(t *testing.T, effects map[string][]Shock) *Exchange {
	t.Helper()
	instruments := []Instrument{
		{ID: "maga-media", Symbol: "TRTH", Name: "Truth Media", Sector: "media", Price: 50},
		{ID: "wall-builders", Symbol: "WALL", Name: "Wall Builders", Sector: "construction", Price: 20},
	}
	ex, err := NewExchange(instruments, effects, events.NewEventLog(nil), logger.NewLogger())
	if err != nil {
		t.Fatalf("NewExchange failed: %v", err)
	}
	return ex
}

func TestApplyActionEffectsMovesPrice(t *testing.T) {
	ex := testExchange(t, map[string][]Shock{
		"tariffs": {{InstrumentID: "maga-media", PercentChange: 20, Reason: "base loves it"}},
	})

	shocks := ex.ApplyActionEffects(1, "tariffs")
	if len(shocks) != 1 {
		t.Fatalf("Expected 1 shock, got %d", len(shocks))
	}
	price, _ := ex.Price("maga-media")
	if price != 60 {
		t.Errorf("Expected price 60 after +20%%, got %d", price)
	}
}

func TestPriceFloorEnforced(t *testing.T) {
	ex := testExchange(t, map[string][]Shock{
		"crash": {{InstrumentID: "wall-builders", PercentChange: -60, Reason: "collapse"}},
	})

	ex.ApplyActionEffects(1, "crash")
	price, _ := ex.Price("wall-builders")
	if price != 10 {
		t.Errorf("Expected price floored at 10 (ceil(20*0.4)=8), got %d", price)
	}
}

func TestHistoryBounded(t *testing.T) {
	ex := testExchange(t, map[string][]Shock{
		"pump": {{InstrumentID: "maga-media", PercentChange: 1, Reason: "steady"}},
	})

	for turn := 1; turn <= 20; turn++ {
		ex.ApplyActionEffects(turn, "pump")
	}
	insts := ex.Instruments()
	for _, inst := range insts {
		if len(inst.History) > HistoryCap {
			t.Errorf("Instrument %s history length %d exceeds cap", inst.ID, len(inst.History))
		}
	}
}

func TestUnknownActionShocksNothing(t *testing.T) {
	ex := testExchange(t, nil)

	if shocks := ex.ApplyActionEffects(1, "nonexistent"); shocks != nil {
		t.Errorf("Expected no shocks for unknown action, got %v", shocks)
	}
}

func TestNewExchangeRejectsUnknownShockTarget(t *testing.T) {
	instruments := []Instrument{{ID: "a", Symbol: "A", Price: 50}}
	effects := map[string][]Shock{"x": {{InstrumentID: "ghost", PercentChange: 5}}}

	if _, err := NewExchange(instruments, effects, events.NewEventLog(nil), logger.NewLogger()); err == nil {
		t.Errorf("Expected error for shock referencing unknown instrument")
	}
}
