package engine

import (
	"fmt"

	"github.com/satiregames/orangenotlemons/server/internal/content"
	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/entropy"
	"github.com/satiregames/orangenotlemons/server/internal/platform/logger"
)

// SpinsPerPlan is how many slot spins a selected plan grants.
const SpinsPerPlan = 3

// SpinResult is one pull of the three-reel machine.
type SpinResult struct {
	Symbols [3]content.SlotSymbol `json:"symbols"`
	Total   int                   `json:"total"`
	Jackpot bool                  `json:"jackpot"`
}

// SlotMachine resolves the gambling mechanic. Luck gives a chance to reroll
// each negative symbol into one of the safe ones.
type SlotMachine struct {
	eventLog *events.EventLog
	logger   *logger.Logger
	rng      entropy.Source
	symbols  []content.SlotSymbol
}

func NewSlotMachine(symbols []content.SlotSymbol, eventLog *events.EventLog, log *logger.Logger, rng entropy.Source) *SlotMachine {
	return &SlotMachine{
		eventLog: eventLog,
		logger:   log,
		rng:      rng,
		symbols:  symbols,
	}
}

// Spin pulls three reels. Each negative symbol is rerolled into a safe one
// with probability (luck/100)*0.3. Three of a kind triples the total.
func (sm *SlotMachine) Spin(turn, luck int) SpinResult {
	var result SpinResult
	rerollChance := float64(luck) / 100.0 * 0.3

	safeCount := 0
	for _, sym := range sm.symbols {
		if sym.Value >= 0 {
			safeCount++
		} else {
			break
		}
	}
	if safeCount == 0 {
		safeCount = len(sm.symbols)
	}

	for i := 0; i < 3; i++ {
		sym := sm.symbols[sm.rng.Intn(len(sm.symbols))]
		if sym.Value < 0 && sm.rng.Float64() < rerollChance {
			sym = sm.symbols[sm.rng.Intn(safeCount)]
		}
		result.Symbols[i] = sym
		result.Total += sym.Value
	}

	if result.Symbols[0].ID == result.Symbols[1].ID && result.Symbols[1].ID == result.Symbols[2].ID {
		result.Jackpot = true
		result.Total *= 3
	}

	sm.eventLog.Emit(events.EventTypeSlotSpin, turn,
		fmt.Sprintf("%s | %s | %s = %+d", result.Symbols[0].Label, result.Symbols[1].Label, result.Symbols[2].Label, result.Total),
		result)
	return result
}
