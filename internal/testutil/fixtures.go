package testutil

import (
	"testing"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/questionbank"
)

// NewScreeningBank builds a small three-question bank covering all three
// weight shapes used in tests: a family history factor, a symptom factor,
// and a lifestyle factor that can score zero.
func NewScreeningBank(t *testing.T) *questionbank.Bank {
	t.Helper()
	bank, err := questionbank.FromSchema(ScreeningBankSchema())
	if err != nil {
		t.Fatalf("building screening bank: %v", err)
	}
	return bank
}

// ScreeningBankSchema is the raw schema behind NewScreeningBank, exposed
// for validation tests that want to mutate it.
func ScreeningBankSchema() *questionbank.BankSchema {
	return &questionbank.BankSchema{
		ID:      "screening-test",
		Name:    "Screening test bank",
		Version: "1.0.0",
		Bands:   &questionbank.BandsConfig{Moderate: 30, High: 60, Urgent: 80},
		Questions: []questionbank.QuestionConfig{
			{
				ID:       "lump",
				Prompt:   "Have you noticed any new lumps or swelling?",
				Kind:     "bool",
				Category: "symptom",
				Weights:  map[string]float64{"yes": 40, "no": 0},
			},
			{
				ID:       "family-history",
				Prompt:   "Has a close relative been diagnosed with cancer?",
				Kind:     "bool",
				Category: "family_history",
				Weights:  map[string]float64{"yes": 30, "no": 0},
			},
			{
				ID:       "smoking",
				Prompt:   "Do you currently smoke?",
				Kind:     "bool",
				Category: "lifestyle",
				Weights:  map[string]float64{"yes": 15, "no": 0},
			},
		},
	}
}

// ProfileOption mutates a test profile.
type ProfileOption func(*domain.PatientProfile)

func WithAge(age int) ProfileOption {
	return func(p *domain.PatientProfile) { p.Age = age }
}

func WithSex(sex domain.Sex) ProfileOption {
	return func(p *domain.PatientProfile) { p.Sex = sex }
}

func WithSymptoms(tags ...string) ProfileOption {
	return func(p *domain.PatientProfile) { p.Symptoms = tags }
}

// NewTestProfile returns a valid adult profile; options override fields.
func NewTestProfile(opts ...ProfileOption) domain.PatientProfile {
	p := domain.PatientProfile{
		Age: 45,
		Sex: domain.SexFemale,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}
