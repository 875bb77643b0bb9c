package routing

import (
	"testing"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/stretchr/testify/assert"
)

func result(tier domain.RiskTier, contributions ...domain.ContributionEntry) *domain.RiskResult {
	return &domain.RiskResult{Tier: tier, Contributions: contributions}
}

func TestRoute_HighFamilyHistoryGoesToOncology(t *testing.T) {
	r := result(domain.TierHigh,
		domain.ContributionEntry{QuestionID: "family-history", Category: domain.CategoryFamilyHistory, Points: 30},
		domain.ContributionEntry{QuestionID: "unusual-lumps", Category: domain.CategorySymptom, Points: 18},
	)
	rec := Route(r, domain.PatientProfile{Age: 50, Sex: domain.SexFemale})

	assert.Equal(t, domain.SpecialistOncology, rec.Specialist)
	assert.True(t, rec.Urgent)
	assert.Equal(t, 14, rec.WindowDays)
}

func TestRoute_LowTierStaysWithPrimaryCare(t *testing.T) {
	r := result(domain.TierLow,
		domain.ContributionEntry{QuestionID: "breast-changes", Category: domain.CategorySymptom, Points: 5},
	)
	rec := Route(r, domain.PatientProfile{Age: 45, Sex: domain.SexFemale})

	assert.Equal(t, domain.SpecialistPrimaryCare, rec.Specialist)
	assert.False(t, rec.Urgent)
	assert.Equal(t, 365, rec.WindowDays)
}

func TestRoute_UrgentTierSetsFlag(t *testing.T) {
	r := result(domain.TierUrgent,
		domain.ContributionEntry{QuestionID: "smoking-status", Category: domain.CategoryLifestyle, Points: 20},
	)
	rec := Route(r, domain.PatientProfile{Age: 60, Sex: domain.SexMale})

	assert.True(t, rec.Urgent)
	assert.Equal(t, 1, rec.WindowDays)
}

func TestRoute_ModerateTierNotUrgent(t *testing.T) {
	r := result(domain.TierModerate,
		domain.ContributionEntry{QuestionID: "family-history", Category: domain.CategoryFamilyHistory, Points: 30},
	)
	rec := Route(r, domain.PatientProfile{Age: 40, Sex: domain.SexOther})

	assert.False(t, rec.Urgent)
	assert.Equal(t, 90, rec.WindowDays)
}

func TestRoute_QuestionSpecificSpecialists(t *testing.T) {
	cases := []struct {
		questionID string
		category   domain.Category
		want       domain.Specialist
	}{
		{"persistent-cough", domain.CategorySymptom, domain.SpecialistPulmonology},
		{"blood-in-sputum", domain.CategorySymptom, domain.SpecialistPulmonology},
		{"bowel-changes", domain.CategorySymptom, domain.SpecialistGastroenterology},
		{"swallowing-difficulties", domain.CategorySymptom, domain.SpecialistGastroenterology},
		{"skin-changes", domain.CategorySymptom, domain.SpecialistDermatology},
		{"breast-changes", domain.CategorySymptom, domain.SpecialistBreastClinic},
		{"unusual-bleeding", domain.CategorySymptom, domain.SpecialistGynecology},
		{"prostate-symptoms", domain.CategorySymptom, domain.SpecialistUrology},
		{"testicular-lumps", domain.CategorySymptom, domain.SpecialistUrology},
		{"hpv-status", domain.CategoryScreening, domain.SpecialistGynecology},
	}

	for _, tc := range cases {
		t.Run(tc.questionID, func(t *testing.T) {
			r := result(domain.TierHigh,
				domain.ContributionEntry{QuestionID: tc.questionID, Category: tc.category, Points: 20},
			)
			rec := Route(r, domain.PatientProfile{Age: 55, Sex: domain.SexFemale})
			assert.Equal(t, tc.want, rec.Specialist)
		})
	}
}

func TestRoute_ScreeningFallbackByDemographics(t *testing.T) {
	r := result(domain.TierModerate,
		domain.ContributionEntry{QuestionID: "some-screening-gap", Category: domain.CategoryScreening, Points: 14},
	)

	older := Route(r, domain.PatientProfile{Age: 52, Sex: domain.SexFemale})
	assert.Equal(t, domain.SpecialistBreastClinic, older.Specialist)

	olderMale := Route(r, domain.PatientProfile{Age: 55, Sex: domain.SexMale})
	assert.Equal(t, domain.SpecialistUrology, olderMale.Specialist)

	young := Route(r, domain.PatientProfile{Age: 25, Sex: domain.SexOther})
	assert.Equal(t, domain.SpecialistPrimaryCare, young.Specialist)
}

func TestRoute_ZeroContributionsFallBack(t *testing.T) {
	rec := Route(result(domain.TierHigh), domain.PatientProfile{Age: 40, Sex: domain.SexMale})
	// Nothing contributed, dominant category defaults to lifestyle; a high
	// tier still escalates to oncology.
	assert.Equal(t, domain.SpecialistOncology, rec.Specialist)

	low := Route(result(domain.TierModerate), domain.PatientProfile{Age: 40, Sex: domain.SexMale})
	assert.Equal(t, domain.SpecialistPrimaryCare, low.Specialist)
}

func TestRoute_Deterministic(t *testing.T) {
	r := result(domain.TierHigh,
		domain.ContributionEntry{QuestionID: "persistent-cough", Category: domain.CategorySymptom, Points: 12},
	)
	profile := domain.PatientProfile{Age: 60, Sex: domain.SexMale}

	first := Route(r, profile)
	second := Route(r, profile)
	assert.Equal(t, first, second)
}
