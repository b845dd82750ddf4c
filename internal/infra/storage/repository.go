// Package storage provides the persistence layer for the game server.
// This package implements the repository pattern to keep the engine pure.
package storage

import (
	"context"
	"time"
)

// EventRecord mirrors the engine event structure for persistence.
// The engine package should NOT import this; use interfaces instead.
type EventRecord struct {
	ID        string    `json:"id" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	EventType string    `json:"event_type" db:"event_type"`
	Turn      int       `json:"turn" db:"turn"`
	Text      string    `json:"text" db:"text"`
	Payload   string    `json:"payload" db:"payload"` // JSON-encoded event payload
}

// EventRepository defines the interface for event persistence.
// The engine uses this interface; the implementation is in infra.
type EventRepository interface {
	// Append adds a new event to the immutable ledger.
	Append(ctx context.Context, event EventRecord) error

	// GetAll retrieves the full ledger in chronological order (for replay).
	GetAll(ctx context.Context) ([]EventRecord, error)

	// GetByTurn retrieves all events recorded during a specific turn.
	GetByTurn(ctx context.Context, turn int) ([]EventRecord, error)

	// GetByEventType retrieves all events of a specific type.
	GetByEventType(ctx context.Context, eventType string) ([]EventRecord, error)

	// GetSince retrieves events from a turn onwards.
	GetSince(ctx context.Context, turn int) ([]EventRecord, error)
}

// ScoreRecord is one finished run on the leaderboard.
type ScoreRecord struct {
	ID         int64     `json:"id" db:"id"`
	Score      int       `json:"score" db:"score"`
	Turns      int       `json:"turns" db:"turns"`
	Reason     string    `json:"reason" db:"reason"`
	AchievedAt time.Time `json:"achieved_at" db:"achieved_at"`
}

// ScoreRepository defines the interface for run score persistence.
type ScoreRepository interface {
	// Record stores a finished run's score.
	Record(ctx context.Context, rec ScoreRecord) error

	// Best returns the highest recorded score, 0 when none exists.
	Best(ctx context.Context) (int, error)

	// Top returns the top n scores, highest first.
	Top(ctx context.Context, n int) ([]ScoreRecord, error)
}
