package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/thabo/tender-insight/internal/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ScoreRecord is one persisted scoring outcome, keyed by tender reference,
// company reference and timestamp.
type ScoreRecord struct {
	ID         uuid.UUID           `json:"id"`
	TenderRef  string              `json:"tender_ref"`
	CompanyRef string              `json:"company_ref"`
	Result     types.ScoringResult `json:"result"`
	CreatedAt  time.Time           `json:"created_at"`
}

// SaveScore stores a scoring result and returns the new record's ID.
func (db *DB) SaveScore(ctx context.Context, tenderRef, companyRef string, result types.ScoringResult) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal scoring result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO scoring_history (tender_ref, company_ref, result)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		tenderRef, companyRef, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save score: %w", err)
	}
	return id, nil
}

// GetScore fetches a single scoring record by ID.
func (db *DB) GetScore(ctx context.Context, id uuid.UUID) (*ScoreRecord, error) {
	var record ScoreRecord
	var resultJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, tender_ref, company_ref, result, created_at
		 FROM scoring_history WHERE id = $1`,
		id,
	).Scan(&record.ID, &record.TenderRef, &record.CompanyRef, &resultJSON, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get score: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scoring result: %w", err)
	}
	return &record, nil
}

// ListScoresByCompany returns a company's scoring history, newest first.
func (db *DB) ListScoresByCompany(ctx context.Context, companyRef string, limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, tender_ref, company_ref, result, created_at
		 FROM scoring_history
		 WHERE company_ref = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		companyRef, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	records := make([]ScoreRecord, 0)
	for rows.Next() {
		var record ScoreRecord
		var resultJSON []byte
		if err := rows.Scan(&record.ID, &record.TenderRef, &record.CompanyRef, &resultJSON, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scoring result: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate score rows: %w", err)
	}
	return records, nil
}

// EnsureSchema creates the scoring_history table when it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS scoring_history (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			tender_ref TEXT NOT NULL,
			company_ref TEXT NOT NULL,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_scoring_history_company
			ON scoring_history (company_ref, created_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
