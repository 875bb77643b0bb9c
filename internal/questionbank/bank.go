package questionbank

import (
	"github.com/alexanderramin/iaso/internal/domain"
)

// Bank is the read-only question catalog. Safe to share across concurrent
// sessions without synchronization: nothing is mutated after load.
type Bank struct {
	// asking order: category priority, then declaration order
	ordered []domain.QuestionDefinition
	byID    map[string]*domain.QuestionDefinition
	bands   *BandsConfig
}

// Get returns the definition for a question id.
func (b *Bank) Get(id string) (*domain.QuestionDefinition, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Len returns the total number of questions in the catalog.
func (b *Bank) Len() int {
	return len(b.ordered)
}

// Questions returns the catalog in asking order. Callers must not mutate
// the returned definitions.
func (b *Bank) Questions() []domain.QuestionDefinition {
	return b.ordered
}

// Bands returns the tier band configuration carried by the bank document,
// or nil when the document left classification to the caller.
func (b *Bank) Bands() *BandsConfig {
	return b.bands
}

// NextApplicable returns the highest-priority question that has not yet
// been answered and whose predicate holds for the given profile and answer
// history. Returns nil when the questionnaire is complete for this branch.
// Deterministic: the same answer prefix always yields the same question.
func (b *Bank) NextApplicable(profile domain.PatientProfile, answers []domain.Answer) *domain.QuestionDefinition {
	answered := make(map[string]bool, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = true
	}
	for i := range b.ordered {
		q := &b.ordered[i]
		if answered[q.ID] {
			continue
		}
		if q.When.Matches(profile, answers) {
			return q
		}
	}
	return nil
}

// Progress reports how many questions have been answered and how many are
// still applicable on the current branch. Remaining is a lower bound: later
// answers can open or close conditional questions.
func (b *Bank) Progress(profile domain.PatientProfile, answers []domain.Answer) (answered, remaining int) {
	answeredSet := make(map[string]bool, len(answers))
	for _, a := range answers {
		answeredSet[a.QuestionID] = true
	}
	for i := range b.ordered {
		q := &b.ordered[i]
		if answeredSet[q.ID] {
			answered++
			continue
		}
		if q.When.Matches(profile, answers) {
			remaining++
		}
	}
	return answered, remaining
}
