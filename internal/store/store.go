// Package store provides PostgreSQL persistence for completed interview
// sessions and their feedback. Persistence is optional: the generation
// pipelines never depend on it.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/mock-interview/internal/types"
)

// Store wraps a PostgreSQL connection pool
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the session tables if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS interview_sessions (
			id UUID PRIMARY KEY,
			room_name TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			language TEXT NOT NULL,
			interviewer_guide TEXT NOT NULL,
			problem_description TEXT NOT NULL,
			starter_code TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS interview_feedback (
			session_id UUID PRIMARY KEY REFERENCES interview_sessions(id) ON DELETE CASCADE,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SessionRecord is one stored interview session, with feedback when the
// session has been evaluated.
type SessionRecord struct {
	ID        uuid.UUID                   `json:"id"`
	RoomName  string                      `json:"room_name"`
	Company   string                      `json:"company"`
	Language  string                      `json:"language"`
	Bundle    types.SessionArtifactBundle `json:"bundle"`
	Feedback  *types.FeedbackResult       `json:"feedback,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
}

// SaveSession stores a freshly generated session and returns its ID.
func (s *Store) SaveSession(ctx context.Context, roomName, company, language string, bundle *types.SessionArtifactBundle) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO interview_sessions (id, room_name, company, language, interviewer_guide, problem_description, starter_code)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, roomName, company, language, bundle.InterviewerGuide, bundle.ProblemDescription, bundle.StarterCode,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save session: %w", err)
	}
	return id, nil
}

// SaveFeedback stores the evaluation for a session, replacing any previous
// one.
func (s *Store) SaveFeedback(ctx context.Context, sessionID uuid.UUID, result *types.FeedbackResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO interview_feedback (session_id, result) VALUES ($1, $2)
		 ON CONFLICT (session_id) DO UPDATE SET result = EXCLUDED.result, created_at = NOW()`,
		sessionID, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// GetSession loads one session with its feedback (if any).
func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (*SessionRecord, error) {
	var rec SessionRecord
	var feedbackPayload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT s.id, s.room_name, s.company, s.language,
		        s.interviewer_guide, s.problem_description, s.starter_code,
		        s.created_at, f.result
		 FROM interview_sessions s
		 LEFT JOIN interview_feedback f ON f.session_id = s.id
		 WHERE s.id = $1`,
		id,
	).Scan(&rec.ID, &rec.RoomName, &rec.Company, &rec.Language,
		&rec.Bundle.InterviewerGuide, &rec.Bundle.ProblemDescription, &rec.Bundle.StarterCode,
		&rec.CreatedAt, &feedbackPayload)
	if err == pgx.ErrNoRows {
		return nil, &SessionNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if len(feedbackPayload) > 0 {
		var result types.FeedbackResult
		if err := json.Unmarshal(feedbackPayload, &result); err != nil {
			return nil, fmt.Errorf("failed to decode stored feedback: %w", err)
		}
		rec.Feedback = &result
	}
	return &rec, nil
}

// ListSessions returns the most recent sessions, newest first.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, room_name, company, language, created_at
		 FROM interview_sessions
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(&rec.ID, &rec.RoomName, &rec.Company, &rec.Language, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}
	return records, nil
}

// SessionNotFoundError indicates the requested session does not exist.
type SessionNotFoundError struct {
	ID uuid.UUID
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}
