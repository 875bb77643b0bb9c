package scoring

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/questionbank"
	"github.com/google/uuid"
)

// ErrIncompleteAssessment indicates an attempt to derive a full RiskResult
// from a session that has not completed. Callers that want a best-effort
// snapshot must ask for a partial result explicitly.
var ErrIncompleteAssessment = errors.New("assessment not completed")

// Result derives the full RiskResult for a completed session.
func Result(sess *domain.AssessmentSession, bank *questionbank.Bank, bands Bands) (*domain.RiskResult, error) {
	if sess.State != domain.SessionCompleted {
		return nil, fmt.Errorf("%w: session %s is %s", ErrIncompleteAssessment, sess.ID, sess.State)
	}
	return build(sess, bank, bands, false), nil
}

// PartialResult derives a clearly-labeled result from whatever answers the
// session holds, regardless of its state. Valid on abandoned sessions.
func PartialResult(sess *domain.AssessmentSession, bank *questionbank.Bank, bands Bands) *domain.RiskResult {
	partial := sess.State != domain.SessionCompleted
	return build(sess, bank, bands, partial)
}

func build(sess *domain.AssessmentSession, bank *questionbank.Bank, bands Bands, partial bool) *domain.RiskResult {
	score, contributions := Score(sess, bank)
	return &domain.RiskResult{
		ID:            uuid.New().String(),
		SessionID:     sess.ID,
		Score:         score,
		Tier:          bands.Classify(score),
		Contributions: contributions,
		Partial:       partial,
		ComputedAt:    time.Now().UTC(),
	}
}
