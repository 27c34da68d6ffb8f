package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lior25659567/emotion-visualizer/internal/affect"
	"github.com/lior25659567/emotion-visualizer/internal/domain"
)

var ErrSegmentNotFound = errors.New("segment not found")

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS segments (
			segment_id TEXT PRIMARY KEY,
			conversation_id TEXT NOT NULL,
			text TEXT NOT NULL,
			descriptor JSONB NOT NULL,
			primary_emotion TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_segments_conversation_created ON segments(conversation_id, created_at);`,
	}

	for _, q := range queries {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// SaveSegment persists one scored segment. A blank segment ID gets a fresh
// UUID; the generated ID is returned either way.
func (s *Store) SaveSegment(ctx context.Context, segmentID, conversationID, text string, d affect.Descriptor) (string, error) {
	if strings.TrimSpace(segmentID) == "" {
		segmentID = uuid.NewString()
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return "", err
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO segments(segment_id, conversation_id, text, descriptor, primary_emotion, confidence)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6)
		ON CONFLICT (segment_id)
		DO UPDATE SET
			conversation_id=EXCLUDED.conversation_id,
			text=EXCLUDED.text,
			descriptor=EXCLUDED.descriptor,
			primary_emotion=EXCLUDED.primary_emotion,
			confidence=EXCLUDED.confidence;
	`, segmentID, conversationID, text, string(raw), d.Primary(), d.Confidence)
	if err != nil {
		return "", err
	}
	return segmentID, nil
}

func (s *Store) GetSegment(ctx context.Context, segmentID string) (domain.SegmentRecord, error) {
	var rec domain.SegmentRecord
	var raw []byte
	var createdAt time.Time
	err := s.pool.QueryRow(ctx, `
		SELECT segment_id, conversation_id, text, descriptor, created_at
		FROM segments
		WHERE segment_id=$1
	`, segmentID).Scan(&rec.SegmentID, &rec.ConversationID, &rec.Text, &raw, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.SegmentRecord{}, ErrSegmentNotFound
	}
	if err != nil {
		return domain.SegmentRecord{}, err
	}
	if err := json.Unmarshal(raw, &rec.Descriptor); err != nil {
		return domain.SegmentRecord{}, err
	}
	rec.CreatedAt = createdAt.UTC()
	return rec, nil
}

// RecentSegments lists the newest records, oldest first, optionally
// restricted to one conversation.
func (s *Store) RecentSegments(ctx context.Context, conversationID string, limit int) ([]domain.SegmentRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT segment_id, conversation_id, text, descriptor, created_at
		FROM (
			SELECT segment_id, conversation_id, text, descriptor, created_at
			FROM segments
			WHERE ($1 = '' OR conversation_id = $1)
			ORDER BY created_at DESC
			LIMIT $2
		) t
		ORDER BY created_at ASC
	`
	rows, err := s.pool.Query(ctx, query, conversationID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.SegmentRecord, 0, limit)
	for rows.Next() {
		var rec domain.SegmentRecord
		var raw []byte
		var createdAt time.Time
		if err := rows.Scan(&rec.SegmentID, &rec.ConversationID, &rec.Text, &raw, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &rec.Descriptor); err != nil {
			return nil, err
		}
		rec.CreatedAt = createdAt.UTC()
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
