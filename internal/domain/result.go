package domain

import "time"

// ContributionEntry is one answer's share of the composite score.
type ContributionEntry struct {
	QuestionID string   `json:"question_id"`
	Category   Category `json:"category"`
	Value      string   `json:"value"`
	Points     float64  `json:"points"`
}

// RiskResult is the immutable outcome derived from a session. It is a plain
// structured record so it can cross a process boundary untouched.
type RiskResult struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Score     float64   `json:"score"`
	Tier      RiskTier  `json:"tier"`
	// Contributions are ordered by descending points, ties broken by
	// ascending category priority.
	Contributions []ContributionEntry `json:"contributions"`
	// Partial marks a result derived from an abandoned or in-progress
	// session on explicit request; it reflects only the answers recorded.
	Partial    bool      `json:"partial,omitempty"`
	ComputedAt time.Time `json:"computed_at"`
}

// DominantCategory returns the category of the top contribution, or
// lifestyle when nothing contributed.
func (r *RiskResult) DominantCategory() Category {
	if len(r.Contributions) == 0 || r.Contributions[0].Points == 0 {
		return CategoryLifestyle
	}
	return r.Contributions[0].Category
}

// ConsultationRecommendation is the routing outcome for a risk result.
type ConsultationRecommendation struct {
	Tier       RiskTier   `json:"tier"`
	Urgent     bool       `json:"urgent"`
	Specialist Specialist `json:"specialist"`
	// WindowDays is the suggested time-to-consult window in days.
	WindowDays int `json:"window_days"`
}
