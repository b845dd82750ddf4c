package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresEventRepository implements EventRepository using PostgreSQL.
type PostgresEventRepository struct {
	db *sql.DB
}

// NewPostgresEventRepository creates a new PostgreSQL event repository.
func NewPostgresEventRepository(db *sql.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

// InitPostgresSchema creates the ledger and score tables if they are missing.
func InitPostgresSchema(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS event_log (
			id TEXT PRIMARY KEY,
			timestamp TIMESTAMPTZ NOT NULL,
			event_type TEXT NOT NULL,
			turn INTEGER NOT NULL,
			text TEXT NOT NULL,
			payload JSONB NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS scores (
			id BIGSERIAL PRIMARY KEY,
			score INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			reason TEXT NOT NULL,
			achieved_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_event_log_turn ON event_log(turn);`,
		`CREATE INDEX IF NOT EXISTS idx_event_log_type ON event_log(event_type);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create postgres schema: %w", err)
		}
	}
	return nil
}

// Append inserts a new event into the immutable ledger.
func (r *PostgresEventRepository) Append(ctx context.Context, event EventRecord) error {
	query := `
		INSERT INTO event_log (id, timestamp, event_type, turn, text, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Timestamp,
		event.EventType,
		event.Turn,
		event.Text,
		event.Payload,
	)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

// GetAll retrieves the full ledger (the complete run replay).
func (r *PostgresEventRepository) GetAll(ctx context.Context) ([]EventRecord, error) {
	query := `
		SELECT id, timestamp, event_type, turn, text, payload
		FROM event_log
		ORDER BY timestamp ASC
	`
	return r.queryEvents(ctx, query)
}

// GetByTurn retrieves all events recorded during a specific turn.
func (r *PostgresEventRepository) GetByTurn(ctx context.Context, turn int) ([]EventRecord, error) {
	query := `
		SELECT id, timestamp, event_type, turn, text, payload
		FROM event_log
		WHERE turn = $1
		ORDER BY timestamp ASC
	`
	return r.queryEvents(ctx, query, turn)
}

// GetByEventType retrieves all events of a specific type.
func (r *PostgresEventRepository) GetByEventType(ctx context.Context, eventType string) ([]EventRecord, error) {
	query := `
		SELECT id, timestamp, event_type, turn, text, payload
		FROM event_log
		WHERE event_type = $1
		ORDER BY timestamp ASC
	`
	return r.queryEvents(ctx, query, eventType)
}

// GetSince retrieves events from a turn onwards.
func (r *PostgresEventRepository) GetSince(ctx context.Context, turn int) ([]EventRecord, error) {
	query := `
		SELECT id, timestamp, event_type, turn, text, payload
		FROM event_log
		WHERE turn >= $1
		ORDER BY timestamp ASC
	`
	return r.queryEvents(ctx, query, turn)
}

// queryEvents is a helper to execute queries and scan results.
func (r *PostgresEventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]EventRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var records []EventRecord
	for rows.Next() {
		var e EventRecord
		var text sql.NullString

		err := rows.Scan(&e.ID, &e.Timestamp, &e.EventType, &e.Turn, &text, &e.Payload)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if text.Valid {
			e.Text = text.String
		}
		records = append(records, e)
	}

	return records, rows.Err()
}

// PostgresScoreRepository implements ScoreRepository using PostgreSQL.
type PostgresScoreRepository struct {
	db *sql.DB
}

func NewPostgresScoreRepository(db *sql.DB) *PostgresScoreRepository {
	return &PostgresScoreRepository{db: db}
}

func (r *PostgresScoreRepository) Record(ctx context.Context, rec ScoreRecord) error {
	query := `INSERT INTO scores (score, turns, reason, achieved_at) VALUES ($1, $2, $3, $4)`
	at := rec.AchievedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.ExecContext(ctx, query, rec.Score, rec.Turns, rec.Reason, at)
	if err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}
	return nil
}

func (r *PostgresScoreRepository) Best(ctx context.Context) (int, error) {
	var best sql.NullInt64
	err := r.db.QueryRowContext(ctx, `SELECT MAX(score) FROM scores`).Scan(&best)
	if err != nil {
		return 0, err
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

func (r *PostgresScoreRepository) Top(ctx context.Context, n int) ([]ScoreRecord, error) {
	query := `SELECT id, score, turns, reason, achieved_at FROM scores ORDER BY score DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var rec ScoreRecord
		if err := rows.Scan(&rec.ID, &rec.Score, &rec.Turns, &rec.Reason, &rec.AchievedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Ensure the Postgres implementations satisfy the repository interfaces
var _ EventRepository = (*PostgresEventRepository)(nil)
var _ ScoreRepository = (*PostgresScoreRepository)(nil)
