package domain

import "time"

// Answer is one recorded (question, value) pair. Values are stored in
// canonical form as returned by QuestionDefinition.ValidateValue.
type Answer struct {
	QuestionID string    `json:"question_id"`
	Value      string    `json:"value"`
	AnsweredAt time.Time `json:"answered_at"`
}

// AssessmentSession is the mutable, single-owner record of one assessment.
// It is mutated only through the engine's operations; no two concurrent
// flows may hold the same session.
type AssessmentSession struct {
	ID      string
	Profile PatientProfile
	Answers []Answer
	State   SessionState

	// PendingQuestionID is the id of the question currently awaiting an
	// answer. Empty unless State is active.
	PendingQuestionID string

	StartedAt   time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Answered reports whether the question has already been asked and answered
// in this session.
func (s *AssessmentSession) Answered(questionID string) bool {
	_, ok := s.AnswerFor(questionID)
	return ok
}

// AnswerFor returns the recorded value for a question, if present.
func (s *AssessmentSession) AnswerFor(questionID string) (string, bool) {
	return answerValue(s.Answers, questionID)
}
