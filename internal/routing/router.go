package routing

import (
	"github.com/alexanderramin/iaso/internal/domain"
)

// specialistByQuestion maps a dominant contributing question to the
// specialist who owns that presentation. Questions without an entry fall
// back to the category table.
var specialistByQuestion = map[string]domain.Specialist{
	"persistent-cough":        domain.SpecialistPulmonology,
	"blood-in-sputum":         domain.SpecialistPulmonology,
	"bowel-changes":           domain.SpecialistGastroenterology,
	"swallowing-difficulties": domain.SpecialistGastroenterology,
	"colonoscopy":             domain.SpecialistGastroenterology,
	"skin-changes":            domain.SpecialistDermatology,
	"sun-exposure":            domain.SpecialistDermatology,
	"breast-changes":          domain.SpecialistBreastClinic,
	"mammogram":               domain.SpecialistBreastClinic,
	"unusual-bleeding":        domain.SpecialistGynecology,
	"pap-smear":               domain.SpecialistGynecology,
	"hpv-status":              domain.SpecialistGynecology,
	"prostate-symptoms":       domain.SpecialistUrology,
	"prostate-screening":      domain.SpecialistUrology,
	"testicular-lumps":        domain.SpecialistUrology,
	"hepatitis-status":        domain.SpecialistGastroenterology,
}

// consultWindowDays is the suggested time-to-consult window per tier.
var consultWindowDays = map[domain.RiskTier]int{
	domain.TierUrgent:   1,
	domain.TierHigh:     14,
	domain.TierModerate: 90,
	domain.TierLow:      365,
}

// Route maps a risk result plus demographic context to a consultation
// pathway. Pure policy table: no I/O, deterministic for a given input.
// The urgent tier always sets the urgency flag regardless of category;
// high does as well, matching the escalation policy the tiers encode.
func Route(result *domain.RiskResult, profile domain.PatientProfile) domain.ConsultationRecommendation {
	rec := domain.ConsultationRecommendation{
		Tier:       result.Tier,
		Urgent:     domain.TierRank(result.Tier) >= domain.TierRank(domain.TierHigh),
		WindowDays: consultWindowDays[result.Tier],
	}
	rec.Specialist = specialist(result, profile)
	return rec
}

func specialist(result *domain.RiskResult, profile domain.PatientProfile) domain.Specialist {
	// Low-tier results stay with primary care whatever dominated; there is
	// nothing to escalate.
	if result.Tier == domain.TierLow {
		return domain.SpecialistPrimaryCare
	}

	if len(result.Contributions) > 0 && result.Contributions[0].Points > 0 {
		if s, ok := specialistByQuestion[result.Contributions[0].QuestionID]; ok {
			return s
		}
	}

	switch result.DominantCategory() {
	case domain.CategorySymptom, domain.CategoryFamilyHistory:
		return domain.SpecialistOncology
	case domain.CategoryScreening:
		// A dominant screening gap without a question-specific owner goes
		// to whoever runs the age-appropriate program.
		if profile.Sex == domain.SexFemale && profile.Age >= 40 {
			return domain.SpecialistBreastClinic
		}
		if profile.Sex == domain.SexMale && profile.Age >= 50 {
			return domain.SpecialistUrology
		}
		return domain.SpecialistPrimaryCare
	default:
		if domain.TierRank(result.Tier) >= domain.TierRank(domain.TierHigh) {
			return domain.SpecialistOncology
		}
		return domain.SpecialistPrimaryCare
	}
}
