package formatter

import (
	"fmt"

	"github.com/alexanderramin/iaso/internal/domain"
)

// FormatBank renders a question catalog in asking order, with the most
// points each question can add. Age scaling resolves at scoring time, so
// the column shows the unscaled base.
func FormatBank(questions []domain.QuestionDefinition) string {
	headers := []string{"#", "ID", "CATEGORY", "KIND", "MAX PTS"}
	rows := make([][]string, 0, len(questions))
	for i, q := range questions {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Bold(q.ID),
			Dim(string(q.Category)),
			StyleFg.Render(string(q.Kind)),
			StyleFg.Render(fmt.Sprintf("%.0f", q.MaxContribution(domain.PatientProfile{}))),
		})
	}
	return RenderTable(headers, rows)
}
