package cli

import (
	"github.com/alexanderramin/iaso/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Assessments service.AssessmentService

	// IsInteractive reports whether stdin is attached to a terminal.
	// The assess command needs a terminal for its forms.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "iaso" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "iaso",
		Short: "Cancer risk screening questionnaire",
		Long:  "Iaso walks through an adaptive screening questionnaire, scores the answers,\nand recommends a consultation path. Screening signal only, never a diagnosis.",
	}

	root.AddCommand(
		newAssessCmd(app),
		newReportCmd(app),
		newSessionsCmd(app),
		newBankCmd(),
	)

	return root
}
