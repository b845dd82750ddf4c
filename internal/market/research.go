package market

import (
	"fmt"
	"sync"
)

// Research levels per instrument: 0 none, 3 full insider read.
const MaxResearchLevel = 3

// ResearchCost is the cash price of one research level on one instrument.
const ResearchCost = 100

// ResearchDesk tracks how deeply the player has researched each instrument.
type ResearchDesk struct {
	mu     sync.Mutex
	levels map[string]int
}

func NewResearchDesk() *ResearchDesk {
	return &ResearchDesk{levels: make(map[string]int)}
}

// Level returns the current research level for an instrument.
func (d *ResearchDesk) Level(instrumentID string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.levels[instrumentID]
}

// Raise bumps an instrument's research level by one, capped at
// MaxResearchLevel. Returns the new level and whether anything changed.
func (d *ResearchDesk) Raise(instrumentID string) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	level := d.levels[instrumentID]
	if level >= MaxResearchLevel {
		return level, false
	}
	level++
	d.levels[instrumentID] = level
	return level, true
}

// EffectHint renders what the player learns about a pending shock at the
// given research level. Higher levels reveal direction and then magnitude.
func EffectHint(level int, shock Shock) string {
	switch {
	case level >= 3:
		return fmt.Sprintf("%s: %s", direction(shock.PercentChange), magnitude(shock.PercentChange))
	case level >= 2:
		return direction(shock.PercentChange)
	case level >= 1:
		return shock.Hint
	default:
		return "unknown"
	}
}

func direction(pct int) string {
	if pct >= 0 {
		return "likely up"
	}
	return "likely down"
}

func magnitude(pct int) string {
	abs := pct
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 25:
		return "significant move"
	case abs >= 15:
		return "moderate move"
	default:
		return "minor move"
	}
}
