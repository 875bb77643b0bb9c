package domain

import (
	"fmt"
	"strconv"
)

// AnswerCondition requires a prior question to have been answered with one
// of the listed values. If the referenced question was never asked on this
// branch, the condition fails.
type AnswerCondition struct {
	QuestionID string
	AnyOf      []string
}

// ApplicabilityRule decides whether a question should be asked, given the
// patient profile and the answers recorded so far. All clauses must hold.
// An empty rule means always applicable.
type ApplicabilityRule struct {
	Sexes  []Sex
	MinAge *int
	MaxAge *int
	// AnySymptom gates a follow-up on the symptom flags reported at
	// intake: at least one listed tag must be present on the profile.
	AnySymptom []string
	Requires   []AnswerCondition
}

// Matches evaluates the rule against an immutable snapshot of the session.
func (r ApplicabilityRule) Matches(profile PatientProfile, answers []Answer) bool {
	if len(r.Sexes) > 0 {
		found := false
		for _, s := range r.Sexes {
			if s == profile.Sex {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if r.MinAge != nil && profile.Age < *r.MinAge {
		return false
	}
	if r.MaxAge != nil && profile.Age > *r.MaxAge {
		return false
	}
	if len(r.AnySymptom) > 0 {
		found := false
		for _, tag := range r.AnySymptom {
			if profile.HasSymptom(tag) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, cond := range r.Requires {
		value, ok := answerValue(answers, cond.QuestionID)
		if !ok {
			return false
		}
		matched := false
		for _, v := range cond.AnyOf {
			if v == value {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

func answerValue(answers []Answer, questionID string) (string, bool) {
	for _, a := range answers {
		if a.QuestionID == questionID {
			return a.Value, true
		}
	}
	return "", false
}

// NumberBand maps a numeric answer range [Min, Max] to a risk contribution.
// A nil Max means unbounded above.
type NumberBand struct {
	Min    int
	Max    *int
	Points float64
}

// AgeScale multiplies a question's base contribution when the patient's
// age falls inside [MinAge, MaxAge]. Resolved against the profile at
// scoring time, not at asking time.
type AgeScale struct {
	MinAge int
	MaxAge *int
	Factor float64
}

// QuestionDefinition is an immutable catalog entry. Instances are shared
// read-only across all sessions; nothing here may be mutated after load.
type QuestionDefinition struct {
	ID       string
	Prompt   string
	Kind     AnswerKind
	Choices  []string // choice kind only
	Min, Max int      // number kind only

	Category Category
	When     ApplicabilityRule

	// Weights maps canonical answer values ("yes"/"no" for bool, a choice
	// string for choice) to risk points. Number questions use Bands instead.
	Weights  map[string]float64
	Bands    []NumberBand
	AgeScale []AgeScale
}

// CanonicalBool values accepted for bool questions.
const (
	BoolYes = "yes"
	BoolNo  = "no"
)

// ValidateValue checks a submitted value against the declared answer domain.
// Returns the canonical form of the value, or ErrValidation.
func (q *QuestionDefinition) ValidateValue(value string) (string, error) {
	switch q.Kind {
	case AnswerBool:
		if value == BoolYes || value == BoolNo {
			return value, nil
		}
		return "", fmt.Errorf("%w: question %s expects yes/no, got %q", ErrValidation, q.ID, value)
	case AnswerChoice:
		for _, c := range q.Choices {
			if c == value {
				return value, nil
			}
		}
		return "", fmt.Errorf("%w: question %s has no choice %q", ErrValidation, q.ID, value)
	case AnswerNumber:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", fmt.Errorf("%w: question %s expects a number, got %q", ErrValidation, q.ID, value)
		}
		if n < q.Min || (q.Max > q.Min && n > q.Max) {
			return "", fmt.Errorf("%w: question %s expects %d..%d, got %d", ErrValidation, q.ID, q.Min, q.Max, n)
		}
		return strconv.Itoa(n), nil
	}
	return "", fmt.Errorf("%w: question %s has unknown answer kind %q", ErrValidation, q.ID, q.Kind)
}

// Contribution returns the risk points for a canonical answer value,
// with any age scaling resolved against the given profile.
func (q *QuestionDefinition) Contribution(value string, profile PatientProfile) float64 {
	var base float64
	switch q.Kind {
	case AnswerNumber:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		for _, b := range q.Bands {
			if n >= b.Min && (b.Max == nil || n <= *b.Max) {
				base = b.Points
				break
			}
		}
	default:
		base = q.Weights[value]
	}

	for _, s := range q.AgeScale {
		if profile.Age >= s.MinAge && (s.MaxAge == nil || profile.Age <= *s.MaxAge) {
			base *= s.Factor
			break
		}
	}
	return base
}

// MaxContribution returns the largest points this question can contribute
// for the given profile. The bank catalog view reports it with a zero
// profile, so age scaling does not apply.
func (q *QuestionDefinition) MaxContribution(profile PatientProfile) float64 {
	var max float64
	switch q.Kind {
	case AnswerNumber:
		for _, b := range q.Bands {
			v := q.Contribution(strconv.Itoa(b.Min), profile)
			if v > max {
				max = v
			}
		}
	default:
		for value := range q.Weights {
			v := q.Contribution(value, profile)
			if v > max {
				max = v
			}
		}
	}
	return max
}
