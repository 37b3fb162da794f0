package cli

import (
	"github.com/spf13/cobra"

	"jadval/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions  service.SessionService
	Timetable service.TimetableService

	// IsInteractive reports whether stdin is attached to a terminal.
	// When it is, running jadval with no arguments opens the TUI.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "jadval" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "jadval",
		Short: "Weekly timetable for center sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newSessionCmd(app),
		newWeekCmd(app),
		newDayCmd(app),
		newRelatedCmd(app),
		newWindowCmd(app),
		newTUICmd(app),
	)

	return root
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}
