package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/iaso/internal/cli/formatter"
	"github.com/alexanderramin/iaso/internal/repository"
	"github.com/alexanderramin/iaso/internal/service"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var partial bool

	cmd := &cobra.Command{
		Use:   "report <assessment-id>",
		Short: "Show the report for an assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var report *service.Report
			if partial {
				report, err = app.Assessments.PartialReport(ctx, id)
			} else {
				report, err = app.Assessments.GetReport(ctx, id)
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("no finalized report for %s (use --partial to score the answers so far)", args[0])
				}
			}
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&partial, "partial", false, "Score the answers given so far, even if unfinished")

	return cmd
}
