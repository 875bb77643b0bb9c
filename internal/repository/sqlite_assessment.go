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

// SQLiteAssessmentRepo implements AssessmentRepo against SQLite. Answers
// are stored in a child table keyed by (assessment_id, seq) so the
// submission order survives round trips.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssessmentRepo(conn db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: conn}
}

func (r *SQLiteAssessmentRepo) Create(ctx context.Context, s *domain.AssessmentSession) error {
	symptomsJSON, err := json.Marshal(s.Profile.Symptoms)
	if err != nil {
		return fmt.Errorf("encoding symptoms: %w", err)
	}

	query := `INSERT INTO assessments (id, age, sex, symptoms, state, pending_question_id, started_at, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.Profile.Age,
		string(s.Profile.Sex),
		string(symptomsJSON),
		string(s.State),
		s.PendingQuestionID,
		s.StartedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(s.CompletedAt),
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}

	for i, a := range s.Answers {
		if err := r.insertAnswer(ctx, s.ID, i, a); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteAssessmentRepo) GetByID(ctx context.Context, id string) (*domain.AssessmentSession, error) {
	query := `SELECT id, age, sex, symptoms, state, pending_question_id, started_at, completed_at, created_at, updated_at
		FROM assessments WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := r.scanAssessment(row)
	if err != nil {
		return nil, err
	}

	answers, err := r.loadAnswers(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Answers = answers
	return s, nil
}

func (r *SQLiteAssessmentRepo) List(ctx context.Context, limit int) ([]*domain.AssessmentSession, error) {
	query := `SELECT id, age, sex, symptoms, state, pending_question_id, started_at, completed_at, created_at, updated_at
		FROM assessments ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.AssessmentSession
	for rows.Next() {
		s, err := r.scanAssessmentFromRows(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessments: %w", err)
	}

	for _, s := range sessions {
		answers, err := r.loadAnswers(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Answers = answers
	}
	return sessions, nil
}

func (r *SQLiteAssessmentRepo) Update(ctx context.Context, s *domain.AssessmentSession) error {
	query := `UPDATE assessments SET state = ?, pending_question_id = ?, completed_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(s.State),
		s.PendingQuestionID,
		nullableTimeToString(s.CompletedAt),
		s.UpdatedAt.UTC().Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating assessment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating assessment: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("assessment %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) AppendAnswer(ctx context.Context, s *domain.AssessmentSession, a domain.Answer) error {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), -1) + 1 FROM assessment_answers WHERE assessment_id = ?`, s.ID).Scan(&next)
	if err != nil {
		return fmt.Errorf("finding next answer seq: %w", err)
	}

	if err := r.insertAnswer(ctx, s.ID, next, a); err != nil {
		return err
	}
	return r.Update(ctx, s)
}

func (r *SQLiteAssessmentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assessment: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) insertAnswer(ctx context.Context, assessmentID string, seq int, a domain.Answer) error {
	query := `INSERT INTO assessment_answers (assessment_id, seq, question_id, value, answered_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		assessmentID, seq, a.QuestionID, a.Value, a.AnsweredAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting answer: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) loadAnswers(ctx context.Context, assessmentID string) ([]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT question_id, value, answered_at FROM assessment_answers WHERE assessment_id = ? ORDER BY seq`, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var a domain.Answer
		var answeredAtStr string
		if err := rows.Scan(&a.QuestionID, &a.Value, &answeredAtStr); err != nil {
			return nil, fmt.Errorf("scanning answer row: %w", err)
		}
		a.AnsweredAt, err = time.Parse(time.RFC3339, answeredAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing answered_at: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return answers, nil
}

type assessmentScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteAssessmentRepo) scanAssessment(row *sql.Row) (*domain.AssessmentSession, error) {
	s, err := scanAssessmentRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("assessment: %w", ErrNotFound)
	}
	return s, err
}

func (r *SQLiteAssessmentRepo) scanAssessmentFromRows(rows *sql.Rows) (*domain.AssessmentSession, error) {
	return scanAssessmentRow(rows)
}

func scanAssessmentRow(sc assessmentScanner) (*domain.AssessmentSession, error) {
	var s domain.AssessmentSession
	var sexStr, symptomsJSON, stateStr string
	var startedAtStr, createdAtStr, updatedAtStr string
	var completedAtStr sql.NullString

	err := sc.Scan(
		&s.ID, &s.Profile.Age, &sexStr, &symptomsJSON,
		&stateStr, &s.PendingQuestionID,
		&startedAtStr, &completedAtStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}

	s.Profile.Sex = domain.Sex(sexStr)
	s.State = domain.SessionState(stateStr)
	if err := json.Unmarshal([]byte(symptomsJSON), &s.Profile.Symptoms); err != nil {
		return nil, fmt.Errorf("decoding symptoms: %w", err)
	}

	var parseErr error
	s.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	s.CompletedAt = parseNullableTime(completedAtStr)

	return &s, nil
}
