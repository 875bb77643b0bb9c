package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/iaso/internal/cli/formatter"
	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newAssessCmd(app *App) *cobra.Command {
	var ageFlag int
	var sexFlag string
	var symptomsFlag []string

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run a risk assessment questionnaire",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("assess needs an interactive terminal")
			}
			ctx := context.Background()

			profile, err := collectProfile(ageFlag, sexFlag, symptomsFlag, cmd.Flags().Changed("age"))
			if err != nil {
				return err
			}

			sess, err := app.Assessments.Start(ctx, profile)
			if err != nil {
				return err
			}

			if err := runQuestionnaire(ctx, app, sess.ID); err != nil {
				return err
			}

			stop := formatter.StartSpinner("Preparing your report...")
			report, err := app.Assessments.Finalize(ctx, sess.ID)
			stop()
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatReport(report))
			fmt.Println(formatter.Dim(fmt.Sprintf("Saved as %s. Reprint anytime with: iaso report %s", sess.ID[:8], sess.ID[:8])))
			return nil
		},
	}

	cmd.Flags().IntVar(&ageFlag, "age", 0, "Age in years (skips the intake form together with --sex)")
	cmd.Flags().StringVar(&sexFlag, "sex", "", "Sex: female, male, or other")
	cmd.Flags().StringSliceVar(&symptomsFlag, "symptom", nil, "Symptom tag, repeatable (e.g. --symptom cough)")

	return cmd
}

// collectProfile builds the intake profile from flags, falling back to the
// interactive form when age/sex were not both provided.
func collectProfile(age int, sex string, symptoms []string, haveAge bool) (domain.PatientProfile, error) {
	if haveAge && sex != "" {
		return domain.PatientProfile{Age: age, Sex: domain.Sex(sex), Symptoms: symptoms}, nil
	}

	var ageStr, sexStr string
	var picked []string
	if err := profileForm(&ageStr, &sexStr, &picked).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.PatientProfile{}, fmt.Errorf("assessment cancelled")
		}
		return domain.PatientProfile{}, err
	}

	parsedAge, err := strconv.Atoi(strings.TrimSpace(ageStr))
	if err != nil {
		return domain.PatientProfile{}, fmt.Errorf("invalid age %q", ageStr)
	}
	return domain.PatientProfile{Age: parsedAge, Sex: domain.Sex(sexStr), Symptoms: picked}, nil
}

// runQuestionnaire asks pending questions one at a time until the engine
// reports completion. Ctrl-C abandons the session so it can be resumed as
// a partial report later.
func runQuestionnaire(ctx context.Context, app *App, sessionID string) error {
	for {
		progress, err := app.Assessments.Progress(ctx, sessionID)
		if err != nil {
			return err
		}
		if progress.Pending == nil {
			return nil
		}

		var value string
		form := questionForm(progress.Pending, formatter.FormatProgress(progress.Answered, progress.Remaining), &value)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				if abErr := app.Assessments.Abandon(ctx, sessionID); abErr != nil {
					return abErr
				}
				return fmt.Errorf("assessment abandoned; partial report: iaso report %s --partial", sessionID[:8])
			}
			return err
		}

		if _, err := app.Assessments.Submit(ctx, sessionID, progress.Pending.ID, value); err != nil {
			return err
		}
	}
}
