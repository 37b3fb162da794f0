package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"jadval/internal/cli/formatter"
	"jadval/internal/domain"
)

func jadvalHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formView wraps a huh.Form as a View on the navigation stack. When the
// form completes, it sends a formCompleteMsg carrying the done callback's
// command.
type formView struct {
	state    *SharedState
	form     *huh.Form
	titleStr string
	done     func() tea.Cmd
}

func newFormView(state *SharedState, title string, form *huh.Form, done func() tea.Cmd) *formView {
	return &formView{state: state, form: form, titleStr: title, done: done}
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.titleStr }

func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return formCompleteMsg{nextCmd: func() tea.Msg {
				return statusMsg{text: formatter.Dim("Cancelled.")}
			}}
		}
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done()
		}
		return v, func() tea.Msg {
			return formCompleteMsg{nextCmd: tea.Batch(cmd, doneCmd)}
		}
	}

	return v, cmd
}

func (v *formView) View() string {
	return v.form.View()
}

// newSessionFormView builds the add-session form. Weekly and one-off
// sessions share the common fields; the schedule group shown depends on
// the chosen kind.
func newSessionFormView(state *SharedState) View {
	var (
		kind      = string(domain.KindRecurring)
		weekday   = domain.Saturday.String()
		subject   string
		teacher   string
		grade     string
		timeOfDay string
		from      string
		until     string
		at        string
		duration  string
	)

	weekdayOptions := make([]huh.Option[string], 0, 7)
	for i := 0; i < 7; i++ {
		name := domain.Weekday(i).String()
		weekdayOptions = append(weekdayOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Session kind").
				Options(
					huh.NewOption("Weekly", string(domain.KindRecurring)),
					huh.NewOption("One-off", string(domain.KindSingle)),
				).
				Value(&kind),
			huh.NewInput().
				Title("Subject").
				Value(&subject).
				Validate(validateRequired("subject")),
			huh.NewInput().
				Title("Teacher").
				Value(&teacher).
				Validate(validateRequired("teacher")),
			huh.NewInput().
				Title("Grade").
				Value(&grade),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Weekday").
				Options(weekdayOptions...).
				Value(&weekday),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Placeholder("16:00").
				Value(&timeOfDay).
				Validate(validateClock),
			huh.NewInput().
				Title("First active date (YYYY-MM-DD)").
				Placeholder("2026-01-03").
				Value(&from).
				Validate(validateDate),
			huh.NewInput().
				Title("Last active date (optional)").
				Value(&until).
				Validate(validateOptionalDate),
		).WithHideFunc(func() bool { return kind != string(domain.KindRecurring) }),
		huh.NewGroup(
			huh.NewInput().
				Title("Date and time (YYYY-MM-DD HH:MM)").
				Placeholder("2026-02-10 16:30").
				Value(&at).
				Validate(validateDateTime),
		).WithHideFunc(func() bool { return kind != string(domain.KindSingle) }),
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Length in minutes (blank for %d)", domain.DefaultSessionMinutes)).
				Value(&duration).
				Validate(validateOptionalPositiveInt),
		),
	).WithTheme(jadvalHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			s := &domain.Session{
				Kind:        domain.SessionKind(kind),
				Subject:     subject,
				TeacherName: teacher,
				Grade:       grade,
			}
			if duration != "" {
				s.DurationMin, _ = strconv.Atoi(duration)
			}

			if s.Kind == domain.KindSingle {
				startAt, err := parseDateTime(at)
				if err != nil {
					return statusMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
				}
				s.StartAt = startAt
			} else {
				s.Weekday = domain.ParseWeekday(weekday)
				s.TimeOfDay, _ = domain.ParseClock(timeOfDay)
				startAt, err := parseDate(from)
				if err != nil {
					return statusMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
				}
				s.StartAt = startAt
				if until != "" {
					endAt, err := parseDate(until)
					if err != nil {
						return statusMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
					}
					s.EndAt = &endAt
				}
			}

			if err := app.Sessions.Create(context.Background(), s); err != nil {
				return statusMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
			}
			return statusMsg{text: fmt.Sprintf("%s Added %s",
				formatter.StyleGreen.Render("✔"), formatter.Bold(s.Subject))}
		}
	}

	return newFormView(state, "Add Session", form, done)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateClock(s string) error {
	_, err := domain.ParseClock(s)
	return err
}

func validateDate(s string) error {
	_, err := parseDate(s)
	return err
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateDate(s)
}

func validateDateTime(s string) error {
	_, err := parseDateTime(s)
	return err
}

func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
