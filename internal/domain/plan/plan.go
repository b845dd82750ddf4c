// Package plan defines the action-card catalog entries and the score-band
// resolution rules. This package is PURE and must NOT import any
// infrastructure packages.
package plan

import (
	"fmt"

	"github.com/satiregames/orangenotlemons/server/internal/domain/stats"
)

// Category is the closed set of action-card categories. Content referencing
// anything else is rejected at load time.
type Category string

const (
	CategoryEconomy  Category = "economy"
	CategoryPolitics Category = "politics"
	CategoryMedia    Category = "media"
	CategoryForeign  Category = "foreign"
	CategoryPersonal Category = "personal"
)

// Valid reports whether the category belongs to the closed set.
func (c Category) Valid() bool {
	switch c {
	case CategoryEconomy, CategoryPolitics, CategoryMedia, CategoryForeign, CategoryPersonal:
		return true
	}
	return false
}

// Revealable attribute keys for plan research.
const (
	AttrRisk   = "risk"
	AttrReward = "reward"
	AttrTiming = "timing"
	AttrSecret = "secret"
)

// DelayedTemplate is a future consequence attached to an outcome band.
// TurnsDelay is bound to an absolute trigger turn at execution time;
// a delay of 0 fires on the next turn boundary, not immediately.
type DelayedTemplate struct {
	TurnsDelay  int          `json:"turnsDelay"`
	Description string       `json:"description"`
	Effects     stats.Effect `json:"effects"`
}

// OutcomeBand covers a closed score interval [MinScore, MaxScore].
type OutcomeBand struct {
	MinScore    int               `json:"minScore"`
	MaxScore    int               `json:"maxScore"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Immediate   stats.Effect      `json:"immediate"`
	Delayed     []DelayedTemplate `json:"delayed,omitempty"`
}

// Card is a catalog entry for one selectable action.
type Card struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   Category          `json:"category"`
	BaseCost   int               `json:"baseCost"`
	Revealable map[string]string `json:"revealable,omitempty"`
	// Outcomes is ordered best to worst: descending, non-overlapping intervals.
	Outcomes []OutcomeBand `json:"outcomes"`
}

// Validate enforces the content-authoring contract. A card that fails here is
// malformed content, never a runtime condition.
func (c *Card) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("plan card has empty id")
	}
	if !c.Category.Valid() {
		return fmt.Errorf("plan %q: unknown category %q", c.ID, c.Category)
	}
	if c.BaseCost < 0 {
		return fmt.Errorf("plan %q: negative base cost %d", c.ID, c.BaseCost)
	}
	if len(c.Outcomes) == 0 {
		return fmt.Errorf("plan %q: empty outcomes list", c.ID)
	}
	for i, band := range c.Outcomes {
		if band.MinScore > band.MaxScore {
			return fmt.Errorf("plan %q: band %d inverted [%d,%d]", c.ID, i, band.MinScore, band.MaxScore)
		}
		if i > 0 {
			prev := c.Outcomes[i-1]
			if band.MaxScore >= prev.MinScore {
				return fmt.Errorf("plan %q: band %d overlaps or is out of order with band %d", c.ID, i, i-1)
			}
		}
	}
	for key := range c.Revealable {
		switch key {
		case AttrRisk, AttrReward, AttrTiming, AttrSecret:
		default:
			return fmt.Errorf("plan %q: unknown revealable attribute %q", c.ID, key)
		}
	}
	return nil
}

// Resolve maps a score to exactly one outcome band. Overshoot above every
// band's max falls back to the first (best) band; undershoot or a gap falls
// back to the last (worst) band. Resolve never fails on a validated card.
func (c *Card) Resolve(score int) OutcomeBand {
	for _, band := range c.Outcomes {
		if score >= band.MinScore && score <= band.MaxScore {
			return band
		}
	}
	if score > c.Outcomes[0].MaxScore {
		return c.Outcomes[0]
	}
	return c.Outcomes[len(c.Outcomes)-1]
}
