package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/satiregames/orangenotlemons/server/internal/events"
	"github.com/satiregames/orangenotlemons/server/internal/platform/metrics"
)

// persistTimeout bounds each write so a wedged database cannot pile up
// goroutines behind the event log's async write-through.
const persistTimeout = 5 * time.Second

// EventPersisterAdapter bridges the engine's event log to an EventRepository.
// It satisfies events.EventPersister.
type EventPersisterAdapter struct {
	repo EventRepository
}

func NewEventPersisterAdapter(repo EventRepository) *EventPersisterAdapter {
	return &EventPersisterAdapter{repo: repo}
}

// Append serializes the event payload and writes the record through.
func (a *EventPersisterAdapter) Append(event events.GameEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		metrics.Get().RecordEventWrite(err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	err = a.repo.Append(ctx, EventRecord{
		ID:        event.ID,
		Timestamp: event.Timestamp,
		EventType: string(event.Type),
		Turn:      event.Turn,
		Text:      event.Text,
		Payload:   string(payload),
	})
	metrics.Get().RecordEventWrite(err)
	return err
}

var _ events.EventPersister = (*EventPersisterAdapter)(nil)

// HighScoreAdapter exposes a ScoreRepository through the engine's
// high-score interface.
type HighScoreAdapter struct {
	repo ScoreRepository
}

func NewHighScoreAdapter(repo ScoreRepository) *HighScoreAdapter {
	return &HighScoreAdapter{repo: repo}
}

func (a *HighScoreAdapter) Best() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	return a.repo.Best(ctx)
}

func (a *HighScoreAdapter) Save(score int) error {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	return a.repo.Record(ctx, ScoreRecord{Score: score, AchievedAt: time.Now()})
}
