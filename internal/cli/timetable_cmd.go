package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"jadval/internal/cli/formatter"
)

func newWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week [N]",
		Short: "Show one week of the timetable (1-based, defaults to the first)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid week number %q", args[0])
				}
				index = n - 1
			}

			week, err := app.Timetable.Week(context.Background(), index)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(week))
			return nil
		},
	}
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day DATE",
		Short: "Show one day's sessions (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(args[0])
			if err != nil {
				return fmt.Errorf("parsing date: %w", err)
			}

			day, err := app.Timetable.Day(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDay(day))
			return nil
		},
	}
}

func newRelatedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "related ID",
		Short: "List a weekly session's sibling slots on other days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			s, err := resolveSession(ctx, app, args[0])
			if err != nil {
				return err
			}
			related, err := app.Timetable.Related(ctx, s.ID)
			if err != nil {
				return err
			}

			if len(related) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weekly siblings.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessions(related))
			return nil
		},
	}
}

func newWindowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Show the navigable timetable range",
		RunE: func(cmd *cobra.Command, args []string) error {
			win, err := app.Timetable.Window(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWindow(win))
			return nil
		},
	}
}
