package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/iaso/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type AssessmentRepo interface {
	Create(ctx context.Context, s *domain.AssessmentSession) error
	GetByID(ctx context.Context, id string) (*domain.AssessmentSession, error)
	List(ctx context.Context, limit int) ([]*domain.AssessmentSession, error)
	Update(ctx context.Context, s *domain.AssessmentSession) error
	// AppendAnswer records one answer at the next sequence position and
	// refreshes the session's pending question and state columns.
	AppendAnswer(ctx context.Context, s *domain.AssessmentSession, a domain.Answer) error
	Delete(ctx context.Context, id string) error
}

type ResultRepo interface {
	Create(ctx context.Context, r *StoredResult) error
	GetByAssessment(ctx context.Context, assessmentID string) (*StoredResult, error)
}

// StoredResult bundles a risk result with its routing and narrative for
// persistence as one row.
type StoredResult struct {
	Result          domain.RiskResult
	Recommendation  domain.ConsultationRecommendation
	Narrative       string
	NarrativeSource string
}
