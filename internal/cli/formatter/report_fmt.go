package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/narrative"
	"github.com/alexanderramin/iaso/internal/service"
)

// FormatReport formats a finished assessment report for the terminal.
func FormatReport(report *service.Report) string {
	var b strings.Builder

	b.WriteString(Header("Risk Assessment"))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("%s  score %.0f", TierIndicator(report.Result.Tier), report.Result.Score)
	if report.Result.Partial {
		scoreLine += "  " + StyleYellow.Render("(partial)")
	}
	b.WriteString(scoreLine)
	b.WriteString("\n\n")

	if len(report.Result.Contributions) > 0 {
		headers := []string{"FACTOR", "CATEGORY", "ANSWER", "POINTS"}
		rows := make([][]string, 0, len(report.Result.Contributions))
		for _, c := range report.Result.Contributions {
			points := Dim("0")
			if c.Points > 0 {
				points = StyleFg.Render(fmt.Sprintf("%.0f", c.Points))
			}
			rows = append(rows, []string{
				Bold(strings.ReplaceAll(c.QuestionID, "-", " ")),
				Dim(string(c.Category)),
				StyleFg.Render(c.Value),
				points,
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	b.WriteString(Header("Consultation"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Specialist:  %s\n", Bold(specialistLabel(report.Recommendation.Specialist))))
	b.WriteString(fmt.Sprintf("  Window:      %s\n", windowLabel(report.Recommendation.WindowDays)))
	if report.Recommendation.Urgent {
		b.WriteString(fmt.Sprintf("  Urgency:     %s\n", StyleRed.Render("follow up promptly")))
	}
	b.WriteString("\n")

	if report.Narrative.Text != "" {
		b.WriteString(Header("Summary"))
		b.WriteString("\n\n")
		b.WriteString(wrapIndented(report.Narrative.Text, 2, 78))
		b.WriteString("\n")
		if report.Narrative.Source == narrative.SourceFallback && report.Narrative.Notice != "" {
			b.WriteString("\n")
			b.WriteString(Dim("  " + report.Narrative.Notice))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatSessions formats the assessment history list.
func FormatSessions(sessions []*domain.AssessmentSession) string {
	if len(sessions) == 0 {
		return Dim("No assessments yet.") + "\n"
	}

	headers := []string{"ID", "STARTED", "STATE", "ANSWERED"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			Dim(shortID(s.ID)),
			StyleFg.Render(s.StartedAt.Local().Format("2006-01-02 15:04")),
			statePill(s.State),
			StyleFg.Render(fmt.Sprintf("%d", len(s.Answers))),
		})
	}
	return RenderTable(headers, rows)
}

// FormatProgress renders an answered/remaining progress line.
func FormatProgress(answered, remaining int) string {
	total := answered + remaining
	if total == 0 {
		return ""
	}
	return Dim(fmt.Sprintf("question %d of %d", answered+1, total))
}

func statePill(state domain.SessionState) string {
	switch state {
	case domain.SessionCompleted:
		return StyleGreen.Render("completed")
	case domain.SessionActive:
		return StyleBlue.Render("active")
	case domain.SessionAbandoned:
		return StyleDim.Render("abandoned")
	default:
		return StyleDim.Render(string(state))
	}
}

func specialistLabel(s domain.Specialist) string {
	switch s {
	case domain.SpecialistPrimaryCare:
		return "Primary care"
	case domain.SpecialistOncology:
		return "Oncology"
	case domain.SpecialistPulmonology:
		return "Pulmonology"
	case domain.SpecialistGastroenterology:
		return "Gastroenterology"
	case domain.SpecialistDermatology:
		return "Dermatology"
	case domain.SpecialistGynecology:
		return "Gynecology"
	case domain.SpecialistUrology:
		return "Urology"
	case domain.SpecialistBreastClinic:
		return "Breast clinic"
	default:
		return string(s)
	}
}

func windowLabel(days int) string {
	switch {
	case days <= 1:
		return StyleRed.Render("within 24 hours")
	case days < 30:
		return StyleYellow.Render(fmt.Sprintf("within %d days", days))
	case days < 365:
		return StyleFg.Render(fmt.Sprintf("within %d months", days/30))
	default:
		return Dim("next routine visit")
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// wrapIndented word-wraps text to the given width with a left indent.
func wrapIndented(text string, indent, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	pad := strings.Repeat(" ", indent)

	var b strings.Builder
	lineLen := 0
	b.WriteString(pad)
	for i, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > width-indent {
			b.WriteString("\n")
			b.WriteString(pad)
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
