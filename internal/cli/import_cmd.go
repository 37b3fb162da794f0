package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jadval/internal/importer"
)

func newSessionImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import sessions from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := importer.Validate(schema); err != nil {
				return err
			}

			ctx := context.Background()
			sessions := importer.Convert(schema, time.Local)
			for i, s := range sessions {
				if err := app.Sessions.Create(ctx, s); err != nil {
					return fmt.Errorf("importing session %d: %w", i+1, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sessions\n", len(sessions))
			return nil
		},
	}
}
