package service

import (
	"context"

	"github.com/alexanderramin/iaso/internal/db"
	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/alexanderramin/iaso/internal/engine"
	"github.com/alexanderramin/iaso/internal/narrative"
	"github.com/alexanderramin/iaso/internal/repository"
	"github.com/alexanderramin/iaso/internal/routing"
	"github.com/alexanderramin/iaso/internal/scoring"
)

type assessmentService struct {
	machine     *engine.Machine
	bands       scoring.Bands
	assessments repository.AssessmentRepo
	results     repository.ResultRepo
	narrator    narrative.Service
	uow         db.UnitOfWork
	observer    UseCaseObserver
}

// NewAssessmentService wires the questionnaire engine, scoring bands,
// persistence, and narration into one use-case surface.
func NewAssessmentService(
	machine *engine.Machine,
	bands scoring.Bands,
	assessments repository.AssessmentRepo,
	results repository.ResultRepo,
	narrator narrative.Service,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) AssessmentService {
	obs := UseCaseObserver(NoopUseCaseObserver{})
	for _, o := range observers {
		if o != nil {
			obs = o
			break
		}
	}
	return &assessmentService{
		machine:     machine,
		bands:       bands,
		assessments: assessments,
		results:     results,
		narrator:    narrator,
		uow:         uow,
		observer:    obs,
	}
}

func (s *assessmentService) Start(ctx context.Context, profile domain.PatientProfile) (*domain.AssessmentSession, error) {
	var sess *domain.AssessmentSession
	err := observe(ctx, s.observer, "assessment_start", nil, func() error {
		var err error
		sess, err = s.machine.Start(profile)
		if err != nil {
			return err
		}
		return s.assessments.Create(ctx, sess)
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *assessmentService) Submit(ctx context.Context, sessionID, questionID, value string) (*domain.QuestionDefinition, error) {
	var next *domain.QuestionDefinition
	fields := map[string]any{"session_id": sessionID, "question_id": questionID}
	err := observe(ctx, s.observer, "assessment_submit", fields, func() error {
		sess, err := s.assessments.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := s.machine.SubmitAnswer(sess, questionID, value); err != nil {
			return err
		}

		// The engine already appended the canonical answer; persist it
		// together with the refreshed session columns. Both writes land in
		// one transaction: a torn write would leave a stale pending
		// question next to an already-recorded answer, and the same
		// question could then be recorded twice.
		last := sess.Answers[len(sess.Answers)-1]
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteAssessmentRepo(tx).AppendAnswer(ctx, sess, last)
		})
		if err != nil {
			return err
		}

		next, _ = s.machine.Pending(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (s *assessmentService) Progress(ctx context.Context, sessionID string) (*Progress, error) {
	sess, err := s.assessments.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	answered, remaining := s.machine.Bank().Progress(sess.Profile, sess.Answers)
	pending, _ := s.machine.Pending(sess)
	return &Progress{Answered: answered, Remaining: remaining, Pending: pending}, nil
}

func (s *assessmentService) Abandon(ctx context.Context, sessionID string) error {
	return observe(ctx, s.observer, "assessment_abandon", map[string]any{"session_id": sessionID}, func() error {
		sess, err := s.assessments.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if err := s.machine.Abandon(sess); err != nil {
			return err
		}
		return s.assessments.Update(ctx, sess)
	})
}

func (s *assessmentService) Finalize(ctx context.Context, sessionID string) (*Report, error) {
	var report *Report
	err := observe(ctx, s.observer, "assessment_finalize", map[string]any{"session_id": sessionID}, func() error {
		sess, err := s.assessments.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}

		result, err := scoring.Result(sess, s.machine.Bank(), s.bands)
		if err != nil {
			return err
		}
		rec := routing.Route(result, sess.Profile)
		// Narration happens outside the transaction: it may wait on a
		// slow collaborator and never fails anyway.
		story := s.narrator.Narrate(ctx, result, rec)

		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txResults := repository.NewSQLiteResultRepo(tx)
			return txResults.Create(ctx, &repository.StoredResult{
				Result:          *result,
				Recommendation:  rec,
				Narrative:       story.Text,
				NarrativeSource: story.Source,
			})
		})
		if err != nil {
			return err
		}

		report = &Report{Session: sess, Result: result, Recommendation: rec, Narrative: story}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *assessmentService) PartialReport(ctx context.Context, sessionID string) (*Report, error) {
	sess, err := s.assessments.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	result := scoring.PartialResult(sess, s.machine.Bank(), s.bands)
	rec := routing.Route(result, sess.Profile)
	story := s.narrator.Narrate(ctx, result, rec)
	return &Report{Session: sess, Result: result, Recommendation: rec, Narrative: story}, nil
}

func (s *assessmentService) GetReport(ctx context.Context, sessionID string) (*Report, error) {
	sess, err := s.assessments.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	stored, err := s.results.GetByAssessment(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	result := stored.Result
	return &Report{
		Session:        sess,
		Result:         &result,
		Recommendation: stored.Recommendation,
		Narrative: narrative.Narrative{
			Text:   stored.Narrative,
			Source: stored.NarrativeSource,
		},
	}, nil
}

func (s *assessmentService) Get(ctx context.Context, sessionID string) (*domain.AssessmentSession, error) {
	return s.assessments.GetByID(ctx, sessionID)
}

func (s *assessmentService) List(ctx context.Context, limit int) ([]*domain.AssessmentSession, error) {
	return s.assessments.List(ctx, limit)
}

func (s *assessmentService) Delete(ctx context.Context, sessionID string) error {
	return s.assessments.Delete(ctx, sessionID)
}
