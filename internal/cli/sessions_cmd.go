package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/iaso/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage past assessments",
	}

	cmd.AddCommand(
		newSessionsListCmd(app),
		newSessionsAbandonCmd(app),
		newSessionsRemoveCmd(app),
	)

	return cmd
}

func newSessionsListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assessments, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Assessments.List(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSessions(sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of assessments to show (0 for all)")

	return cmd
}

func newSessionsAbandonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <assessment-id>",
		Short: "Mark an active assessment abandoned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Assessments.Abandon(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Abandoned assessment %s\n", id[:8])
			return nil
		},
	}
}

func newSessionsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <assessment-id>",
		Short: "Delete an assessment and its report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSessionID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Assessments.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed assessment %s\n", id[:8])
			return nil
		},
	}
}
