// Package history persists answered deals to a SQLite database so that
// logged hands can be analyzed later.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // sqlite driver
)

const createDealsTableSQL = `
CREATE TABLE IF NOT EXISTS deals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	answered_at TIMESTAMP NOT NULL,
	hand TEXT NOT NULL, -- compact card codes, starter first
	user_score INTEGER NOT NULL,
	actual_score INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_deals_session ON deals(session_id)`

// Deal is one answered hand
type Deal struct {
	SessionID   uuid.UUID
	AnsweredAt  time.Time
	Hand        string
	UserScore   int
	ActualScore int
}

// Summary aggregates a session's accuracy
type Summary struct {
	Attempts int
	Correct  int
}

// Store records answered deals
type Store struct {
	db *sql.DB
}

// New opens (or creates) the store at path
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open history database: %w", err)
	}

	if _, err := db.Exec(createDealsTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not create deals table: %w", err)
	}

	return &Store{db: db}, nil
}

// Record stores an answered deal
func (s *Store) Record(ctx context.Context, deal Deal) error {
	const query = `
		INSERT INTO deals (session_id, answered_at, hand, user_score, actual_score)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		deal.SessionID.String(), deal.AnsweredAt, deal.Hand, deal.UserScore, deal.ActualScore)

	return err
}

// Summary returns the attempt and correct-answer counts for a session
func (s *Store) Summary(ctx context.Context, sessionID uuid.UUID) (Summary, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN user_score = actual_score THEN 1 ELSE 0 END), 0)
		FROM deals
		WHERE session_id = ?`

	var summary Summary
	row := s.db.QueryRowContext(ctx, query, sessionID.String())
	if err := row.Scan(&summary.Attempts, &summary.Correct); err != nil {
		return Summary{}, err
	}

	return summary, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
