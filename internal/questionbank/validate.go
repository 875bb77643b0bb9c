package questionbank

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/iaso/internal/domain"
)

// ValidateSchema checks a BankSchema for structural errors.
// Returns a slice of errors (empty if valid). A predicate referencing a
// question that cannot have been answered earlier in the asking order is a
// load-time error here, never a runtime one.
func ValidateSchema(schema *BankSchema) []error {
	var errs []error

	if schema.ID == "" {
		errs = append(errs, fmt.Errorf("bank id is required"))
	}
	if len(schema.Questions) == 0 {
		errs = append(errs, fmt.Errorf("at least one question is required"))
	}

	if schema.Bands != nil {
		b := schema.Bands
		if !(b.Moderate < b.High && b.High < b.Urgent) {
			errs = append(errs, fmt.Errorf("tier bands must be strictly increasing: moderate=%.1f high=%.1f urgent=%.1f",
				b.Moderate, b.High, b.Urgent))
		}
		if b.Moderate < 0 {
			errs = append(errs, fmt.Errorf("tier bands must be non-negative"))
		}
	}

	ids := map[string]bool{}
	for i, q := range schema.Questions {
		if q.ID == "" {
			errs = append(errs, fmt.Errorf("question[%d]: id is required", i))
		}
		if q.Prompt == "" {
			errs = append(errs, fmt.Errorf("question[%d]: prompt is required", i))
		}
		if ids[q.ID] {
			errs = append(errs, fmt.Errorf("question[%d]: duplicate id %q", i, q.ID))
		}
		ids[q.ID] = true

		if !domain.ValidAnswerKinds[q.Kind] {
			errs = append(errs, fmt.Errorf("question %s: unknown answer kind %q", q.ID, q.Kind))
		}
		if !domain.ValidCategories[q.Category] {
			errs = append(errs, fmt.Errorf("question %s: unknown category %q", q.ID, q.Category))
		}

		errs = append(errs, validateDomains(&q)...)
		errs = append(errs, validateWhen(&q)...)
	}

	errs = append(errs, validatePredicateOrder(schema)...)
	return errs
}

func validateDomains(q *QuestionConfig) []error {
	var errs []error
	switch domain.AnswerKind(q.Kind) {
	case domain.AnswerBool:
		for v := range q.Weights {
			if v != domain.BoolYes && v != domain.BoolNo {
				errs = append(errs, fmt.Errorf("question %s: weight key %q is not yes/no", q.ID, v))
			}
		}
	case domain.AnswerChoice:
		if len(q.Choices) < 2 {
			errs = append(errs, fmt.Errorf("question %s: choice questions need at least two choices", q.ID))
		}
		choiceSet := map[string]bool{}
		for _, c := range q.Choices {
			if choiceSet[c] {
				errs = append(errs, fmt.Errorf("question %s: duplicate choice %q", q.ID, c))
			}
			choiceSet[c] = true
		}
		for v := range q.Weights {
			if !choiceSet[v] {
				errs = append(errs, fmt.Errorf("question %s: weight key %q is not a declared choice", q.ID, v))
			}
		}
	case domain.AnswerNumber:
		if q.Max > 0 && q.Max < q.Min {
			errs = append(errs, fmt.Errorf("question %s: max %d below min %d", q.ID, q.Max, q.Min))
		}
		if len(q.Weights) > 0 {
			errs = append(errs, fmt.Errorf("question %s: number questions use number_bands, not weights", q.ID))
		}
		for i, b := range q.Bands {
			if b.Max != nil && *b.Max < b.Min {
				errs = append(errs, fmt.Errorf("question %s: number_band[%d] max below min", q.ID, i))
			}
		}
	}
	for i, s := range q.AgeScale {
		if s.Factor < 0 {
			errs = append(errs, fmt.Errorf("question %s: age_scale[%d] factor must be non-negative", q.ID, i))
		}
		if s.MaxAge != nil && *s.MaxAge < s.MinAge {
			errs = append(errs, fmt.Errorf("question %s: age_scale[%d] max_age below min_age", q.ID, i))
		}
	}
	return errs
}

func validateWhen(q *QuestionConfig) []error {
	if q.When == nil {
		return nil
	}
	var errs []error
	for _, s := range q.When.Sexes {
		if !domain.ValidSexes[s] {
			errs = append(errs, fmt.Errorf("question %s: unknown sex %q in predicate", q.ID, s))
		}
	}
	if q.When.MinAge != nil && q.When.MaxAge != nil && *q.When.MaxAge < *q.When.MinAge {
		errs = append(errs, fmt.Errorf("question %s: predicate max_age below min_age", q.ID))
	}
	for _, tag := range q.When.AnySymptom {
		if !domain.ValidSymptomTags[tag] {
			errs = append(errs, fmt.Errorf("question %s: unknown symptom tag %q in predicate", q.ID, tag))
		}
	}
	for _, r := range q.When.Requires {
		if r.Question == "" || len(r.AnyOf) == 0 {
			errs = append(errs, fmt.Errorf("question %s: requires clause needs question and any_of", q.ID))
		}
		if r.Question == q.ID {
			errs = append(errs, fmt.Errorf("question %s: predicate references itself", q.ID))
		}
	}
	return errs
}

// validatePredicateOrder rejects predicates that reference questions asked
// later (or never). Asking order is category priority, then declaration
// order, so a requires clause may only point at a question that sorts
// strictly earlier.
func validatePredicateOrder(schema *BankSchema) []error {
	var errs []error

	order := make([]QuestionConfig, len(schema.Questions))
	copy(order, schema.Questions)
	pos := make(map[string]int, len(order))
	declared := make(map[string]int, len(order))
	for i, q := range schema.Questions {
		declared[q.ID] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		pi := domain.CategoryPriority(domain.Category(order[i].Category))
		pj := domain.CategoryPriority(domain.Category(order[j].Category))
		if pi != pj {
			return pi < pj
		}
		return declared[order[i].ID] < declared[order[j].ID]
	})
	for i, q := range order {
		pos[q.ID] = i
	}

	for _, q := range schema.Questions {
		if q.When == nil {
			continue
		}
		for _, r := range q.When.Requires {
			target, ok := pos[r.Question]
			if !ok {
				errs = append(errs, fmt.Errorf("question %s: predicate references unknown question %q", q.ID, r.Question))
				continue
			}
			if target >= pos[q.ID] {
				errs = append(errs, fmt.Errorf("question %s: predicate references %q which is asked later", q.ID, r.Question))
			}
		}
	}
	return errs
}
