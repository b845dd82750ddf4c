package storage

import (
	"context"
	"testing"
	"time"
)

// stubEventRepo is an in-memory EventRepository for tests.
type stubEventRepo struct {
	records []EventRecord
}

func (s *stubEventRepo) Append(ctx context.Context, event EventRecord) error {
	s.records = append(s.records, event)
	return nil
}

func (s *stubEventRepo) GetAll(ctx context.Context) ([]EventRecord, error) {
	return s.records, nil
}

func (s *stubEventRepo) GetByTurn(ctx context.Context, turn int) ([]EventRecord, error) {
	var out []EventRecord
	for _, r := range s.records {
		if r.Turn == turn {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubEventRepo) GetByEventType(ctx context.Context, eventType string) ([]EventRecord, error) {
	var out []EventRecord
	for _, r := range s.records {
		if r.EventType == eventType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubEventRepo) GetSince(ctx context.Context, turn int) ([]EventRecord, error) {
	var out []EventRecord
	for _, r := range s.records {
		if r.Turn >= turn {
			out = append(out, r)
		}
	}
	return out, nil
}

func ledgerFixture() *stubEventRepo {
	now := time.Now()
	return &stubEventRepo{records: []EventRecord{
		{ID: "1", Timestamp: now, EventType: "RUN_STARTED", Turn: 1, Text: "sworn in", Payload: `{}`},
		{ID: "2", Timestamp: now, EventType: "OUTCOME_RESOLVED", Turn: 1, Text: "Triumph", Payload: `{"score":60,"blind":false}`},
		{ID: "3", Timestamp: now, EventType: "OUTCOME_RESOLVED", Turn: 2, Text: "Backfire", Payload: `{"score":20,"blind":true}`},
		{ID: "4", Timestamp: now, EventType: "TURN_SKIPPED", Turn: 3, Text: "froze", Payload: `{}`},
		{ID: "5", Timestamp: now, EventType: "TRADE_EXECUTED", Turn: 3, Text: "bought", Payload: `{}`},
		{ID: "6", Timestamp: now, EventType: "GAME_OVER", Turn: 4, Text: "leaked", Payload: `{"reason":"leaked","score":80}`},
	}}
}

func TestRebuildRunSummary(t *testing.T) {
	rec := NewReconstructor(ledgerFixture())

	summary, err := rec.RebuildRunSummary(context.Background())
	if err != nil {
		t.Fatalf("RebuildRunSummary failed: %v", err)
	}

	if summary.Turns != 4 {
		t.Errorf("Expected 4 turns, got %d", summary.Turns)
	}
	if summary.PlansExecuted != 2 || summary.BlindPlays != 1 {
		t.Errorf("Expected 2 plans with 1 blind, got %d/%d", summary.PlansExecuted, summary.BlindPlays)
	}
	if summary.TurnsSkipped != 1 || summary.TradesExecuted != 1 {
		t.Errorf("Expected 1 skip and 1 trade, got %d/%d", summary.TurnsSkipped, summary.TradesExecuted)
	}
	if !summary.Over || summary.Reason != "leaked" || summary.FinalScore != 80 {
		t.Errorf("Expected leaked ending with score 80, got %+v", summary)
	}
}

func TestGenerateRecapFiltersByTurn(t *testing.T) {
	rec := NewReconstructor(ledgerFixture())

	recap, err := rec.GenerateRecap(context.Background(), 3)
	if err != nil {
		t.Fatalf("GenerateRecap failed: %v", err)
	}
	if len(recap) != 3 {
		t.Fatalf("Expected 3 recap rows from turn 3, got %d", len(recap))
	}
	if recap[0].Impact != "NEGATIVE" {
		t.Errorf("Skipped turn must read as negative, got %q", recap[0].Impact)
	}
}
