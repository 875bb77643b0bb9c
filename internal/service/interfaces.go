package service

import (
	"context"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/narrative"
)

// Report is the finished deliverable for one assessment: the scored
// result, where to go next, and the prose summary.
type Report struct {
	Session        *domain.AssessmentSession
	Result         *domain.RiskResult
	Recommendation domain.ConsultationRecommendation
	Narrative      narrative.Narrative
}

// Progress describes how far along an active assessment is.
type Progress struct {
	Answered  int
	Remaining int
	Pending   *domain.QuestionDefinition
}

// AssessmentService drives the questionnaire lifecycle from start through
// the persisted final report.
type AssessmentService interface {
	// Start validates the profile, opens a session, and persists it.
	Start(ctx context.Context, profile domain.PatientProfile) (*domain.AssessmentSession, error)

	// Submit records an answer to the pending question. Returns the next
	// pending question, or nil when the questionnaire is complete.
	Submit(ctx context.Context, sessionID, questionID, value string) (*domain.QuestionDefinition, error)

	// Progress reports the pending question and counts for a session.
	Progress(ctx context.Context, sessionID string) (*Progress, error)

	// Abandon marks an active session abandoned.
	Abandon(ctx context.Context, sessionID string) error

	// Finalize scores a completed session, routes the consultation,
	// narrates the outcome, and persists everything as one unit.
	Finalize(ctx context.Context, sessionID string) (*Report, error)

	// PartialReport scores whatever answers exist without requiring
	// completion. Nothing is persisted.
	PartialReport(ctx context.Context, sessionID string) (*Report, error)

	// GetReport reprints a previously finalized report from storage.
	GetReport(ctx context.Context, sessionID string) (*Report, error)

	Get(ctx context.Context, sessionID string) (*domain.AssessmentSession, error)
	List(ctx context.Context, limit int) ([]*domain.AssessmentSession, error)
	Delete(ctx context.Context, sessionID string) error
}
