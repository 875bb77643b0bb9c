package questionbank

// BankSchema is the top-level JSON document a question bank is loaded from.
// Tier band boundaries are part of the document so they can be recalibrated
// without touching scoring logic.
type BankSchema struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Version     string           `json:"version"`
	Description string           `json:"description,omitempty"`
	Bands       *BandsConfig     `json:"bands,omitempty"`
	Questions   []QuestionConfig `json:"questions"`
}

// BandsConfig holds the lower boundaries of the moderate, high and urgent
// tiers. Scores below Moderate classify as low.
type BandsConfig struct {
	Moderate float64 `json:"moderate"`
	High     float64 `json:"high"`
	Urgent   float64 `json:"urgent"`
}

type QuestionConfig struct {
	ID       string   `json:"id"`
	Prompt   string   `json:"prompt"`
	Kind     string   `json:"kind"` // "bool", "choice", "number"
	Category string   `json:"category"`
	Choices  []string `json:"choices,omitempty"`
	Min      int      `json:"min,omitempty"`
	Max      int      `json:"max,omitempty"`

	When *WhenConfig `json:"when,omitempty"`

	Weights  map[string]float64 `json:"weights,omitempty"`
	Bands    []NumberBandConfig `json:"number_bands,omitempty"`
	AgeScale []AgeScaleConfig   `json:"age_scale,omitempty"`
}

// WhenConfig is the serialized applicability predicate. All clauses must
// hold for the question to be asked.
type WhenConfig struct {
	Sexes  []string `json:"sexes,omitempty"`
	MinAge *int     `json:"min_age,omitempty"`
	MaxAge *int     `json:"max_age,omitempty"`
	// AnySymptom gates the question on the symptom flags reported at
	// intake; at least one listed tag must be present.
	AnySymptom []string        `json:"any_symptom,omitempty"`
	Requires   []RequireConfig `json:"requires,omitempty"`
}

// RequireConfig gates a question on a prior answer.
type RequireConfig struct {
	Question string   `json:"question"`
	AnyOf    []string `json:"any_of"`
}

type NumberBandConfig struct {
	Min    int     `json:"min"`
	Max    *int    `json:"max,omitempty"`
	Points float64 `json:"points"`
}

type AgeScaleConfig struct {
	MinAge int     `json:"min_age"`
	MaxAge *int    `json:"max_age,omitempty"`
	Factor float64 `json:"factor"`
}
