package engine

import (
	"fmt"
	"time"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/questionbank"
	"github.com/google/uuid"
)

// Machine advances assessment sessions through the question bank.
// It holds no per-session state itself; the session is the unit of
// mutability and must be exclusively owned by the calling flow.
type Machine struct {
	bank *questionbank.Bank
}

// NewMachine creates a state machine over a loaded question bank.
func NewMachine(bank *questionbank.Bank) *Machine {
	return &Machine{bank: bank}
}

// Bank returns the catalog this machine asks from.
func (m *Machine) Bank() *questionbank.Bank {
	return m.bank
}

// Start validates the profile, creates a session and asks the first
// applicable question. A profile for which no question applies yields a
// session that is already completed.
func (m *Machine) Start(profile domain.PatientProfile) (*domain.AssessmentSession, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sess := &domain.AssessmentSession{
		ID:        uuid.New().String(),
		Profile:   profile,
		State:     domain.SessionActive,
		StartedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.advance(sess)
	return sess, nil
}

// Pending returns the definition of the question the session is waiting on.
func (m *Machine) Pending(sess *domain.AssessmentSession) (*domain.QuestionDefinition, bool) {
	if sess.State != domain.SessionActive || sess.PendingQuestionID == "" {
		return nil, false
	}
	return m.bank.Get(sess.PendingQuestionID)
}

// SubmitAnswer records a value for the currently pending question and
// advances the session. On any error the session is unchanged: validation
// happens before the first mutation.
func (m *Machine) SubmitAnswer(sess *domain.AssessmentSession, questionID, value string) error {
	if sess.State != domain.SessionActive {
		return fmt.Errorf("%w: session %s is %s", ErrSequence, sess.ID, sess.State)
	}
	if questionID != sess.PendingQuestionID {
		return fmt.Errorf("%w: expected answer for %q, got %q", ErrSequence, sess.PendingQuestionID, questionID)
	}
	q, ok := m.bank.Get(questionID)
	if !ok {
		return fmt.Errorf("%w: unknown question %q", ErrSequence, questionID)
	}
	canonical, err := q.ValidateValue(value)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	sess.Answers = append(sess.Answers, domain.Answer{
		QuestionID: questionID,
		Value:      canonical,
		AnsweredAt: now,
	})
	sess.UpdatedAt = now
	m.advance(sess)
	return nil
}

// Abandon terminates an active session. Abandonment is absorbing: no
// further answers are accepted and no full result may be derived.
func (m *Machine) Abandon(sess *domain.AssessmentSession) error {
	if sess.State != domain.SessionActive {
		return fmt.Errorf("%w: cannot abandon session in state %s", ErrSequence, sess.State)
	}
	sess.State = domain.SessionAbandoned
	sess.PendingQuestionID = ""
	sess.UpdatedAt = time.Now().UTC()
	return nil
}

// Replay rebuilds a session from a stored answer sequence, re-validating
// each step against the bank. Used to audit persisted assessments: a
// sequence that replays yields exactly the score it was recorded with.
func (m *Machine) Replay(profile domain.PatientProfile, answers []domain.Answer) (*domain.AssessmentSession, error) {
	sess, err := m.Start(profile)
	if err != nil {
		return nil, err
	}
	for _, a := range answers {
		if sess.Answered(a.QuestionID) {
			return nil, fmt.Errorf("%w: question %s recorded twice in stored sequence", ErrSequence, a.QuestionID)
		}
		if err := m.SubmitAnswer(sess, a.QuestionID, a.Value); err != nil {
			return nil, fmt.Errorf("replaying answer for %s: %w", a.QuestionID, err)
		}
	}
	return sess, nil
}

// advance recomputes the pending question; when no applicable question
// remains the session transitions to completed.
func (m *Machine) advance(sess *domain.AssessmentSession) {
	next := m.bank.NextApplicable(sess.Profile, sess.Answers)
	if next == nil {
		sess.State = domain.SessionCompleted
		sess.PendingQuestionID = ""
		now := time.Now().UTC()
		sess.CompletedAt = &now
		return
	}
	sess.PendingQuestionID = next.ID
}
