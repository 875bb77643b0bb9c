package domain

// RiskTier is the four-step classification of a composite risk score.
// Tiers are ordered: low < moderate < high < urgent.
type RiskTier string

const (
	TierLow      RiskTier = "low"
	TierModerate RiskTier = "moderate"
	TierHigh     RiskTier = "high"
	TierUrgent   RiskTier = "urgent"
)

// TierRank returns the ordinal position of a tier for comparisons.
// Unknown tiers rank below low.
func TierRank(t RiskTier) int {
	switch t {
	case TierLow:
		return 1
	case TierModerate:
		return 2
	case TierHigh:
		return 3
	case TierUrgent:
		return 4
	}
	return 0
}

type Sex string

const (
	SexFemale Sex = "female"
	SexMale   Sex = "male"
	SexOther  Sex = "other"
)

// ValidSexes is the canonical set of accepted sex strings.
var ValidSexes = map[string]bool{
	"female": true, "male": true, "other": true,
}

// Category tags a question with the risk-factor group it belongs to.
// The numeric priority drives question ordering: material risk factors
// surface before lifestyle questions so an early abandonment still
// captures the answers that matter most.
type Category string

const (
	CategorySymptom       Category = "symptom"
	CategoryFamilyHistory Category = "family_history"
	CategoryScreening     Category = "screening"
	CategoryLifestyle     Category = "lifestyle"
)

// CategoryPriority returns the asking priority for a category.
// Lower values are asked first. Unknown categories sort last.
func CategoryPriority(c Category) int {
	switch c {
	case CategorySymptom:
		return 1
	case CategoryFamilyHistory:
		return 2
	case CategoryScreening:
		return 3
	case CategoryLifestyle:
		return 4
	}
	return 5
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"symptom": true, "family_history": true, "screening": true, "lifestyle": true,
}

type SessionState string

const (
	SessionNotStarted SessionState = "not_started"
	SessionActive     SessionState = "active"
	SessionCompleted  SessionState = "completed"
	SessionAbandoned  SessionState = "abandoned"
)

// AnswerKind is the declared answer domain of a question.
type AnswerKind string

const (
	AnswerBool   AnswerKind = "bool"
	AnswerChoice AnswerKind = "choice"
	AnswerNumber AnswerKind = "number"
)

// ValidAnswerKinds is the canonical set of accepted answer kind strings.
var ValidAnswerKinds = map[string]bool{
	"bool": true, "choice": true, "number": true,
}

// Specialist is the consultation pathway a patient is routed to.
type Specialist string

const (
	SpecialistPrimaryCare      Specialist = "primary_care"
	SpecialistOncology         Specialist = "oncology"
	SpecialistPulmonology      Specialist = "pulmonology"
	SpecialistGastroenterology Specialist = "gastroenterology"
	SpecialistDermatology      Specialist = "dermatology"
	SpecialistGynecology       Specialist = "gynecology"
	SpecialistUrology          Specialist = "urology"
	SpecialistBreastClinic     Specialist = "breast_clinic"
)

// ValidSymptomTags is the set of free-form symptom flags accepted on a
// patient profile. Collaborators that extract symptoms upstream (voice,
// OCR) must map onto these tags before the profile reaches the engine.
var ValidSymptomTags = map[string]bool{
	"cough": true, "fatigue": true, "weight_loss": true, "lump": true,
	"pain": true, "bleeding": true, "skin_change": true, "fever": true,
	"appetite_loss": true, "night_sweats": true,
}

// SymptomTagOrder is the display order for symptom tags in intake forms.
var SymptomTagOrder = []string{
	"cough", "fatigue", "weight_loss", "lump", "pain",
	"bleeding", "skin_change", "fever", "appetite_loss", "night_sweats",
}
