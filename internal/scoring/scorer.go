package scoring

import (
	"sort"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/questionbank"
)

// Score sums each answer's weight-table contribution for the value actually
// given. Age-scaled weights resolve against the session's profile at scoring
// time. Recomputing from the same stored answer sequence always reproduces
// the same score.
func Score(sess *domain.AssessmentSession, bank *questionbank.Bank) (float64, []domain.ContributionEntry) {
	var total float64
	contributions := make([]domain.ContributionEntry, 0, len(sess.Answers))

	for _, a := range sess.Answers {
		q, ok := bank.Get(a.QuestionID)
		if !ok {
			// Answers for questions removed from the bank cannot be
			// weighted; they contribute nothing rather than guessing.
			continue
		}
		points := q.Contribution(a.Value, sess.Profile)
		total += points
		contributions = append(contributions, domain.ContributionEntry{
			QuestionID: q.ID,
			Category:   q.Category,
			Value:      a.Value,
			Points:     points,
		})
	}

	// Descending points; ties broken by ascending category priority so
	// equal-magnitude output is stable.
	sort.SliceStable(contributions, func(i, j int) bool {
		if contributions[i].Points != contributions[j].Points {
			return contributions[i].Points > contributions[j].Points
		}
		return domain.CategoryPriority(contributions[i].Category) < domain.CategoryPriority(contributions[j].Category)
	})

	return total, contributions
}
