package narrative

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/iaso/internal/domain"
)

// fallbackNarrative builds a narrative directly from the summary data
// without using the LLM. Used when Ollama is unavailable or when the
// LLM output fails validation.
func fallbackNarrative(summary Summary, notice string) Narrative {
	var b strings.Builder

	b.WriteString(tierOpening(summary.Tier, summary.Score))

	if summary.Partial {
		b.WriteString(" This assessment was not completed, so the score reflects only the questions answered and may understate risk.")
	}

	if len(summary.Contributions) > 0 {
		b.WriteString(" The largest contributing factors were ")
		b.WriteString(contributionList(summary.Contributions))
		b.WriteString(".")
	}

	b.WriteString(consultSentence(summary))

	if summary.Tier == domain.TierUrgent {
		b.WriteString(" If you notice rapid worsening, severe pain, or significant bleeding, seek emergency care rather than waiting for an appointment.")
	}

	return Narrative{Text: b.String(), Source: SourceFallback, Notice: notice}
}

func tierOpening(tier domain.RiskTier, score float64) string {
	switch tier {
	case domain.TierUrgent:
		return fmt.Sprintf("Your responses produced a risk score of %.0f, which falls in the urgent range. This is a screening signal, not a diagnosis, but it warrants prompt medical attention.", score)
	case domain.TierHigh:
		return fmt.Sprintf("Your responses produced a risk score of %.0f, which falls in the high range. This is a screening signal, not a diagnosis.", score)
	case domain.TierModerate:
		return fmt.Sprintf("Your responses produced a risk score of %.0f, which falls in the moderate range. This is a screening signal, not a diagnosis.", score)
	default:
		return fmt.Sprintf("Your responses produced a risk score of %.0f, which falls in the low range.", score)
	}
}

func contributionList(entries []domain.ContributionEntry) string {
	names := make([]string, 0, 3)
	for _, e := range entries {
		if e.Points <= 0 {
			continue
		}
		names = append(names, humanizeID(e.QuestionID))
		if len(names) == 3 {
			break
		}
	}
	if len(names) == 0 {
		return "none in particular"
	}
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return names[0] + ", " + names[1] + ", and " + names[2]
	}
}

func consultSentence(summary Summary) string {
	specialist := humanizeSpecialist(summary.Specialist)
	switch {
	case summary.WindowDays <= 1:
		return fmt.Sprintf(" We recommend a consultation with %s within 24 hours.", specialist)
	case summary.WindowDays <= 30:
		return fmt.Sprintf(" We recommend a consultation with %s within %d days.", specialist, summary.WindowDays)
	case summary.WindowDays <= 180:
		return fmt.Sprintf(" We recommend discussing these results with %s within the next %d months.", specialist, summary.WindowDays/30)
	default:
		return fmt.Sprintf(" No urgent action is needed; mention these results to %s at your next routine visit.", specialist)
	}
}

func humanizeID(id string) string {
	return strings.ReplaceAll(id, "-", " ")
}

func humanizeSpecialist(s domain.Specialist) string {
	switch s {
	case domain.SpecialistPrimaryCare:
		return "your primary care physician"
	case domain.SpecialistOncology:
		return "an oncologist"
	case domain.SpecialistPulmonology:
		return "a pulmonologist"
	case domain.SpecialistGastroenterology:
		return "a gastroenterologist"
	case domain.SpecialistDermatology:
		return "a dermatologist"
	case domain.SpecialistGynecology:
		return "a gynecologist"
	case domain.SpecialistUrology:
		return "a urologist"
	case domain.SpecialistBreastClinic:
		return "a breast specialist"
	default:
		return "your primary care physician"
	}
}
