// Package situation implements the per-turn modifier context: each turn a
// situation rewards some action categories and punishes others. This package
// is PURE and must NOT import any infrastructure packages.
package situation

import (
	"fmt"
	"math"

	"github.com/satiregames/orangenotlemons/server/internal/domain/plan"
	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
)

// Verdict classifies an action against the current situation.
type Verdict string

const (
	VerdictIdeal   Verdict = "ideal"
	VerdictWorst   Verdict = "worst"
	VerdictNeutral Verdict = "neutral"
)

// Situation is recreated every turn; it never persists across turns.
type Situation struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Hints           []string        `json:"hints"`
	IdealCategories []plan.Category `json:"idealCategories"`
	WorstCategories []plan.Category `json:"worstCategories"`
	BonusMultiplier float64         `json:"bonusMultiplier"`
	PenaltyFactor   float64         `json:"penaltyFactor"`
}

// Validate enforces the content-authoring contract.
func (s *Situation) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("situation has empty id")
	}
	for _, c := range s.IdealCategories {
		if !c.Valid() {
			return fmt.Errorf("situation %q: unknown ideal category %q", s.ID, c)
		}
	}
	for _, c := range s.WorstCategories {
		if !c.Valid() {
			return fmt.Errorf("situation %q: unknown worst category %q", s.ID, c)
		}
	}
	if s.BonusMultiplier < 1.0 {
		return fmt.Errorf("situation %q: bonus multiplier %v below 1.0", s.ID, s.BonusMultiplier)
	}
	if s.PenaltyFactor < 1.0 {
		return fmt.Errorf("situation %q: penalty factor %v below 1.0", s.ID, s.PenaltyFactor)
	}
	return nil
}

// Evaluate classifies the action category against this situation.
func (s *Situation) Evaluate(category plan.Category) Verdict {
	for _, c := range s.IdealCategories {
		if c == category {
			return VerdictIdeal
		}
	}
	for _, c := range s.WorstCategories {
		if c == category {
			return VerdictWorst
		}
	}
	return VerdictNeutral
}

// ModifyEffect scales an immediate effect by the verdict. Ideal amplifies
// gains and damps losses to 70% magnitude; worst damps gains to 50% and
// amplifies losses by the penalty factor. The result still goes through the
// normal clamping path.
func (s *Situation) ModifyEffect(e stats.Effect, verdict Verdict) stats.Effect {
	switch verdict {
	case VerdictIdeal:
		return e.Map(func(v int) int {
			if v > 0 {
				return scale(v, s.BonusMultiplier)
			}
			return scale(v, 0.7)
		})
	case VerdictWorst:
		return e.Map(func(v int) int {
			if v > 0 {
				return scale(v, 0.5)
			}
			return scale(v, s.PenaltyFactor)
		})
	default:
		return e
	}
}

// ModifyDelayed scales a future consequence by the verdict: only the negative
// fields move, damped to 70% on ideal and amplified to 150% on worst.
func (s *Situation) ModifyDelayed(e stats.Effect, verdict Verdict) stats.Effect {
	var factor float64
	switch verdict {
	case VerdictIdeal:
		factor = 0.7
	case VerdictWorst:
		factor = 1.5
	default:
		return e
	}
	return e.Map(func(v int) int {
		if v < 0 {
			return scale(v, factor)
		}
		return v
	})
}

// ScoreModifier returns the running-score multiplier for the verdict.
func (s *Situation) ScoreModifier(verdict Verdict) float64 {
	switch verdict {
	case VerdictIdeal:
		return 1.5
	case VerdictWorst:
		return 0.5
	default:
		return 1.0
	}
}

// scale multiplies preserving sign direction: positive values floor toward
// zero, negative values round away from zero so a damped penalty never flips
// sign or vanishes prematurely.
func scale(v int, factor float64) int {
	if v == 0 {
		return 0
	}
	scaled := float64(v) * factor
	if v > 0 {
		return int(math.Floor(scaled))
	}
	return -int(math.Floor(-scaled))
}
