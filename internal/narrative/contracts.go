package narrative

import "github.com/alexanderramin/iaso/internal/domain"

// Summary is the structured request sent to the reasoning collaborator.
// It carries no patient identifiers: the collaborator sees the risk
// picture, never the person.
type Summary struct {
	Tier          domain.RiskTier            `json:"tier"`
	Score         float64                    `json:"score"`
	Partial       bool                       `json:"partial,omitempty"`
	Contributions []domain.ContributionEntry `json:"contributions"`
	Specialist    domain.Specialist          `json:"specialist"`
	Urgent        bool                       `json:"urgent"`
	WindowDays    int                        `json:"window_days"`
}

// BuildSummary assembles the collaborator request from a result and its
// routing recommendation. Only the top contributions travel; the full
// audit trail stays local.
func BuildSummary(result *domain.RiskResult, rec domain.ConsultationRecommendation) Summary {
	contributions := result.Contributions
	if len(contributions) > 5 {
		contributions = contributions[:5]
	}
	return Summary{
		Tier:          result.Tier,
		Score:         result.Score,
		Partial:       result.Partial,
		Contributions: contributions,
		Specialist:    rec.Specialist,
		Urgent:        rec.Urgent,
		WindowDays:    rec.WindowDays,
	}
}

// Narrative is the prose outcome delivered alongside a risk result.
type Narrative struct {
	Text string `json:"text"`
	// Source is "llm" when the collaborator produced the text, "fallback"
	// when the deterministic template did.
	Source string `json:"source"`
	// Notice carries a non-fatal explanation when the collaborator could
	// not be used. Never blocks delivery of the numeric result.
	Notice string `json:"notice,omitempty"`
}

const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// reply is the JSON shape the collaborator is asked to produce.
type reply struct {
	Summary string `json:"summary"`
}
