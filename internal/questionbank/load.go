package questionbank

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/alexanderramin/iaso/internal/domain"
)

// LoadFile reads and parses a bank document from disk.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading question bank: %w", err)
	}
	return Parse(data)
}

// Parse builds a Bank from a JSON document. Validation failures are load
// errors; a bank that parses is guaranteed free of malformed predicates.
func Parse(data []byte) (*Bank, error) {
	schema, err := ParseSchema(data)
	if err != nil {
		return nil, err
	}
	return FromSchema(schema)
}

// ParseSchema decodes a bank document without validating it. Callers that
// want the full error list run ValidateSchema themselves.
func ParseSchema(data []byte) (*BankSchema, error) {
	var schema BankSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing question bank: %w", err)
	}
	return &schema, nil
}

// FromSchema validates a schema and converts it into a Bank.
func FromSchema(schema *BankSchema) (*Bank, error) {
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid question bank %q: %d error(s), first: %v", schema.ID, len(errs), errs[0])
	}

	declared := make(map[string]int, len(schema.Questions))
	for i, q := range schema.Questions {
		declared[q.ID] = i
	}

	ordered := make([]domain.QuestionDefinition, 0, len(schema.Questions))
	for _, qc := range schema.Questions {
		ordered = append(ordered, convertQuestion(qc))
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		pi := domain.CategoryPriority(ordered[i].Category)
		pj := domain.CategoryPriority(ordered[j].Category)
		if pi != pj {
			return pi < pj
		}
		return declared[ordered[i].ID] < declared[ordered[j].ID]
	})

	byID := make(map[string]*domain.QuestionDefinition, len(ordered))
	for i := range ordered {
		byID[ordered[i].ID] = &ordered[i]
	}

	return &Bank{ordered: ordered, byID: byID, bands: schema.Bands}, nil
}

func convertQuestion(qc QuestionConfig) domain.QuestionDefinition {
	q := domain.QuestionDefinition{
		ID:       qc.ID,
		Prompt:   qc.Prompt,
		Kind:     domain.AnswerKind(qc.Kind),
		Choices:  qc.Choices,
		Min:      qc.Min,
		Max:      qc.Max,
		Category: domain.Category(qc.Category),
		Weights:  qc.Weights,
	}
	if q.Weights == nil {
		q.Weights = map[string]float64{}
	}
	for _, b := range qc.Bands {
		q.Bands = append(q.Bands, domain.NumberBand{Min: b.Min, Max: b.Max, Points: b.Points})
	}
	for _, s := range qc.AgeScale {
		q.AgeScale = append(q.AgeScale, domain.AgeScale{MinAge: s.MinAge, MaxAge: s.MaxAge, Factor: s.Factor})
	}
	if qc.When != nil {
		for _, s := range qc.When.Sexes {
			q.When.Sexes = append(q.When.Sexes, domain.Sex(s))
		}
		q.When.MinAge = qc.When.MinAge
		q.When.MaxAge = qc.When.MaxAge
		q.When.AnySymptom = qc.When.AnySymptom
		for _, r := range qc.When.Requires {
			q.When.Requires = append(q.When.Requires, domain.AnswerCondition{
				QuestionID: r.Question,
				AnyOf:      r.AnyOf,
			})
		}
	}
	return q
}
