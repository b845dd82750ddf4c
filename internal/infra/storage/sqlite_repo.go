package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteEventRepository implements EventRepository for SQLite.
type SQLiteEventRepository struct {
	db *sql.DB
}

func NewSQLiteEventRepository(db *sql.DB) *SQLiteEventRepository {
	return &SQLiteEventRepository{db: db}
}

func (r *SQLiteEventRepository) Append(ctx context.Context, event EventRecord) error {
	query := `
		INSERT INTO events (id, timestamp, event_type, turn, text, payload)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.Timestamp, event.EventType, event.Turn, event.Text, event.Payload,
	)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepository) getMany(ctx context.Context, query string, args ...interface{}) ([]EventRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []EventRecord
	for rows.Next() {
		var e EventRecord
		err := rows.Scan(&e.ID, &e.Timestamp, &e.EventType, &e.Turn, &e.Text, &e.Payload)
		if err != nil {
			return nil, err
		}
		records = append(records, e)
	}
	return records, rows.Err()
}

func (r *SQLiteEventRepository) GetAll(ctx context.Context) ([]EventRecord, error) {
	query := `SELECT id, timestamp, event_type, turn, text, payload FROM events ORDER BY timestamp ASC`
	return r.getMany(ctx, query)
}

func (r *SQLiteEventRepository) GetByTurn(ctx context.Context, turn int) ([]EventRecord, error) {
	query := `SELECT id, timestamp, event_type, turn, text, payload FROM events WHERE turn = ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, turn)
}

func (r *SQLiteEventRepository) GetByEventType(ctx context.Context, eventType string) ([]EventRecord, error) {
	query := `SELECT id, timestamp, event_type, turn, text, payload FROM events WHERE event_type = ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, eventType)
}

func (r *SQLiteEventRepository) GetSince(ctx context.Context, turn int) ([]EventRecord, error) {
	query := `SELECT id, timestamp, event_type, turn, text, payload FROM events WHERE turn >= ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, turn)
}

// ---------------------------------------------------------
// SQLiteScoreRepository
// ---------------------------------------------------------

type SQLiteScoreRepository struct {
	db *sql.DB
}

func NewSQLiteScoreRepository(db *sql.DB) *SQLiteScoreRepository {
	return &SQLiteScoreRepository{db: db}
}

func (r *SQLiteScoreRepository) Record(ctx context.Context, rec ScoreRecord) error {
	query := `INSERT INTO scores (score, turns, reason, achieved_at) VALUES (?, ?, ?, ?)`
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

func (r *SQLiteScoreRepository) Best(ctx context.Context) (int, error) {
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

func (r *SQLiteScoreRepository) Top(ctx context.Context, n int) ([]ScoreRecord, error) {
	query := `SELECT id, score, turns, reason, achieved_at FROM scores ORDER BY score DESC LIMIT ?`
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

var _ EventRepository = (*SQLiteEventRepository)(nil)
var _ ScoreRepository = (*SQLiteScoreRepository)(nil)
