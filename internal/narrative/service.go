package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/llm"
)

// Service turns a scored result into prose for the final report.
type Service interface {
	// Narrate produces a narrative for the result. It never fails: when the
	// collaborator is unavailable or produces unusable output, a deterministic
	// fallback narrative is returned with a notice.
	Narrate(ctx context.Context, result *domain.RiskResult, rec domain.ConsultationRecommendation) Narrative
}

type service struct {
	client llm.Client
}

// NewService creates a Service backed by an LLM client. A nil client
// degrades to fallback-only narration.
func NewService(client llm.Client) Service {
	return &service{client: client}
}

func (s *service) Narrate(ctx context.Context, result *domain.RiskResult, rec domain.ConsultationRecommendation) Narrative {
	summary := BuildSummary(result, rec)

	if s.client == nil {
		return fallbackNarrative(summary, "")
	}

	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fallbackNarrative(summary, "")
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskNarrative,
		SystemPrompt: summarySystemPrompt,
		UserPrompt:   "Here is the assessment summary:\n\n" + string(summaryJSON),
	})
	if err != nil {
		return fallbackNarrative(summary, noticeFor(err))
	}

	parsed, err := llm.ExtractJSON[reply](resp.Text, validateReply)
	if err != nil {
		return fallbackNarrative(summary, noticeFor(err))
	}

	return Narrative{Text: strings.TrimSpace(parsed.Summary), Source: SourceLLM}
}

func validateReply(r reply) error {
	if strings.TrimSpace(r.Summary) == "" {
		return errors.New("empty summary")
	}
	return nil
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, llm.ErrTimeout):
		return "narrative assistant timed out; showing a standard summary"
	case errors.Is(err, llm.ErrServerUnavailable):
		return "narrative assistant unavailable; showing a standard summary"
	default:
		return "narrative assistant output was unusable; showing a standard summary"
	}
}
