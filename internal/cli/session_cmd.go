package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jadval/internal/cli/formatter"
	"jadval/internal/domain"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage center sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
		newSessionShowCmd(app),
		newSessionRemoveCmd(app),
		newSessionImportCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	var subject, teacher, teacherID, grade, weekday, timeOfDay, from, until, at string
	var duration int
	var single bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a weekly or one-off session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Session{
				Kind:        domain.KindRecurring,
				Subject:     subject,
				TeacherName: teacher,
				TeacherID:   teacherID,
				Grade:       grade,
				DurationMin: duration,
			}

			if single {
				s.Kind = domain.KindSingle
				startAt, err := parseDateTime(at)
				if err != nil {
					return fmt.Errorf("parsing --at: %w", err)
				}
				s.StartAt = startAt
			} else {
				s.Weekday = domain.ParseWeekday(weekday)
				if !s.Weekday.Valid() {
					return fmt.Errorf("unknown weekday %q", weekday)
				}
				clock, err := domain.ParseClock(timeOfDay)
				if err != nil {
					return err
				}
				s.TimeOfDay = clock

				startAt, err := parseDate(from)
				if err != nil {
					return fmt.Errorf("parsing --from: %w", err)
				}
				s.StartAt = startAt

				if until != "" {
					endAt, err := parseDate(until)
					if err != nil {
						return fmt.Errorf("parsing --until: %w", err)
					}
					s.EndAt = &endAt
				}
			}

			if err := app.Sessions.Create(context.Background(), s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s session %s (%s)\n",
				s.Kind, formatter.Bold(s.Subject), s.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject taught in the session")
	cmd.Flags().StringVar(&teacher, "teacher", "", "Teacher display name")
	cmd.Flags().StringVar(&teacherID, "teacher-id", "", "Optional teacher reference ID")
	cmd.Flags().StringVar(&grade, "grade", "", "Grade or class label")
	cmd.Flags().StringVar(&weekday, "weekday", "", "Weekday for weekly sessions (e.g. mon, Tuesday)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Start time for weekly sessions (HH:MM)")
	cmd.Flags().StringVar(&from, "from", "", "First active date for weekly sessions (YYYY-MM-DD)")
	cmd.Flags().StringVar(&until, "until", "", "Last active date for weekly sessions (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&single, "single", false, "Create a one-off session instead of a weekly one")
	cmd.Flags().StringVar(&at, "at", "", "Date and time for one-off sessions (YYYY-MM-DD HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Session length in minutes (0 uses the default)")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("teacher")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var teacher string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var sessions []domain.Session
			var err error
			if teacher != "" {
				sessions, err = app.Sessions.ListByTeacher(ctx, teacher)
			} else {
				sessions, err = app.Sessions.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessions(sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&teacher, "teacher", "", "Filter by teacher name")

	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a session and its weekly siblings",
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

			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatSessionDetail(s, related, domain.DefaultSessionMinutes))
			return nil
		},
	}
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			s, err := resolveSession(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Sessions.Delete(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", s.DisplayID())
			return nil
		},
	}
}

// resolveSession accepts a full UUID or a unique short prefix.
func resolveSession(ctx context.Context, app *App, idOrPrefix string) (*domain.Session, error) {
	if s, err := app.Sessions.GetByID(ctx, idOrPrefix); err == nil {
		return s, nil
	}

	sessions, err := app.Sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	var match *domain.Session
	for i := range sessions {
		if len(idOrPrefix) >= 4 && len(sessions[i].ID) >= len(idOrPrefix) &&
			sessions[i].ID[:len(idOrPrefix)] == idOrPrefix {
			if match != nil {
				return nil, fmt.Errorf("prefix %q matches more than one session", idOrPrefix)
			}
			match = &sessions[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no session matches %q", idOrPrefix)
	}
	return match, nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func parseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", s, time.Local)
}
