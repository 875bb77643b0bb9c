package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/iaso/internal/db"
	"github.com/alexanderramin/iaso/internal/domain"
)

// SQLiteResultRepo implements ResultRepo against SQLite. The per-question
// contribution trail is stored as a JSON column so a report can be
// reprinted without rescoring.
type SQLiteResultRepo struct {
	db db.DBTX
}

func NewSQLiteResultRepo(conn db.DBTX) *SQLiteResultRepo {
	return &SQLiteResultRepo{db: conn}
}

func (r *SQLiteResultRepo) Create(ctx context.Context, sr *StoredResult) error {
	contributionsJSON, err := json.Marshal(sr.Result.Contributions)
	if err != nil {
		return fmt.Errorf("encoding contributions: %w", err)
	}

	query := `INSERT INTO risk_results (id, assessment_id, score, tier, partial, contributions, specialist, urgent, window_days, narrative, narrative_source, computed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		sr.Result.ID,
		sr.Result.SessionID,
		sr.Result.Score,
		string(sr.Result.Tier),
		boolToInt(sr.Result.Partial),
		string(contributionsJSON),
		string(sr.Recommendation.Specialist),
		boolToInt(sr.Recommendation.Urgent),
		sr.Recommendation.WindowDays,
		sr.Narrative,
		sr.NarrativeSource,
		sr.Result.ComputedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting risk result: %w", err)
	}
	return nil
}

func (r *SQLiteResultRepo) GetByAssessment(ctx context.Context, assessmentID string) (*StoredResult, error) {
	query := `SELECT id, assessment_id, score, tier, partial, contributions, specialist, urgent, window_days, narrative, narrative_source, computed_at
		FROM risk_results WHERE assessment_id = ? ORDER BY computed_at DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, assessmentID)

	var sr StoredResult
	var tierStr, contributionsJSON, specialistStr, computedAtStr string
	var partialInt, urgentInt int

	err := row.Scan(
		&sr.Result.ID, &sr.Result.SessionID, &sr.Result.Score,
		&tierStr, &partialInt, &contributionsJSON,
		&specialistStr, &urgentInt, &sr.Recommendation.WindowDays,
		&sr.Narrative, &sr.NarrativeSource, &computedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("risk result for assessment %s: %w", assessmentID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning risk result: %w", err)
	}

	sr.Result.Tier = domain.RiskTier(tierStr)
	sr.Result.Partial = intToBool(partialInt)
	sr.Recommendation.Tier = sr.Result.Tier
	sr.Recommendation.Specialist = domain.Specialist(specialistStr)
	sr.Recommendation.Urgent = intToBool(urgentInt)

	if err := json.Unmarshal([]byte(contributionsJSON), &sr.Result.Contributions); err != nil {
		return nil, fmt.Errorf("decoding contributions: %w", err)
	}
	sr.Result.ComputedAt, err = time.Parse(time.RFC3339, computedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing computed_at: %w", err)
	}

	return &sr, nil
}
