// State here is a pure function of the ledger: replaying the events of a run
// reproduces its score trajectory and its ending without touching the engine.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Reconstructor rebuilds run summaries from the persisted event ledger.
// This is used for:
// 1. The post-game recap screen
// 2. Auditing a finished run without a live session
// 3. Debugging engine behavior from production databases
type Reconstructor struct {
	eventRepo EventRepository
}

// NewReconstructor creates a new ledger reconstructor.
func NewReconstructor(eventRepo EventRepository) *Reconstructor {
	return &Reconstructor{eventRepo: eventRepo}
}

// RunSummary holds the reconstructed trajectory of a run.
type RunSummary struct {
	Turns          int    `json:"turns"`
	PlansExecuted  int    `json:"plans_executed"`
	BlindPlays     int    `json:"blind_plays"`
	TurnsSkipped   int    `json:"turns_skipped"`
	TradesExecuted int    `json:"trades_executed"`
	ScandalsFired  int    `json:"scandals_fired"`
	FinalScore     int    `json:"final_score"`
	Over           bool   `json:"over"`
	Reason         string `json:"reason,omitempty"`
}

// RecapEvent is a simplified event for the post-game recap screen.
type RecapEvent struct {
	Timestamp string `json:"timestamp"`
	EventType string `json:"event_type"`
	Turn      int    `json:"turn"`
	Summary   string `json:"summary"`
	Impact    string `json:"impact"` // "POSITIVE", "NEGATIVE", "NEUTRAL"
}

// RebuildRunSummary folds the full ledger into a run summary.
func (r *Reconstructor) RebuildRunSummary(ctx context.Context) (*RunSummary, error) {
	records, err := r.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load event ledger: %w", err)
	}

	var summary RunSummary
	for _, rec := range records {
		r.applyRecord(&summary, rec)
	}
	return &summary, nil
}

// GenerateRecap builds the recap timeline from a turn onwards.
func (r *Reconstructor) GenerateRecap(ctx context.Context, sinceTurn int) ([]RecapEvent, error) {
	records, err := r.eventRepo.GetSince(ctx, sinceTurn)
	if err != nil {
		return nil, err
	}

	var recap []RecapEvent
	for _, rec := range records {
		recap = append(recap, RecapEvent{
			Timestamp: rec.Timestamp.Format("15:04:05"),
			EventType: rec.EventType,
			Turn:      rec.Turn,
			Summary:   rec.Text,
			Impact:    r.determineImpact(rec.EventType),
		})
	}
	return recap, nil
}

// applyRecord folds one ledger row into the summary.
func (r *Reconstructor) applyRecord(summary *RunSummary, rec EventRecord) {
	if rec.Turn > summary.Turns {
		summary.Turns = rec.Turn
	}

	switch rec.EventType {
	case "OUTCOME_RESOLVED":
		summary.PlansExecuted++
		var payload struct {
			Score int  `json:"score"`
			Blind bool `json:"blind"`
		}
		if err := json.Unmarshal([]byte(rec.Payload), &payload); err == nil && payload.Blind {
			summary.BlindPlays++
		}
	case "TURN_SKIPPED":
		summary.TurnsSkipped++
	case "TRADE_EXECUTED":
		summary.TradesExecuted++
	case "SCANDAL_IGNORED":
		summary.ScandalsFired++
	case "GAME_OVER":
		summary.Over = true
		var payload struct {
			Reason string `json:"reason"`
			Score  int    `json:"score"`
		}
		if err := json.Unmarshal([]byte(rec.Payload), &payload); err == nil {
			summary.Reason = payload.Reason
			summary.FinalScore = payload.Score
		}
	}
}

// determineImpact classifies the event for the recap screen.
func (r *Reconstructor) determineImpact(eventType string) string {
	switch eventType {
	case "SCANDAL_IGNORED", "DEBT_INTEREST", "TURN_SKIPPED", "MARKET_SHOCK":
		return "NEGATIVE"
	case "OUTCOME_RESOLVED", "HIGH_SCORE", "BOTS_GRANTED":
		return "POSITIVE"
	default:
		return "NEUTRAL"
	}
}
