package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"jadval/internal/cli/formatter"
	"jadval/internal/domain"
)

// detailLoadedMsg signals that session detail has been loaded.
type detailLoadedMsg struct {
	session *domain.Session
	related []domain.Session
	err     error
}

// sessionDeletedMsg reports the outcome of deleting the shown session.
type sessionDeletedMsg struct {
	subject string
	err     error
}

// detailView shows one session with its related weekly siblings in a
// scrollable viewport.
type detailView struct {
	state     *SharedState
	sessionID string

	session *domain.Session
	related []domain.Session
	loading bool
	err     error

	vp      viewport.Model
	vpReady bool

	confirmDelete bool
}

func newDetailView(state *SharedState, sessionID string) *detailView {
	return &detailView{
		state:     state,
		sessionID: sessionID,
		loading:   true,
	}
}

func (v *detailView) ID() ViewID    { return ViewDetail }
func (v *detailView) Title() string { return "Session" }

func (v *detailView) ShortHelp() []key.Binding {
	if v.confirmDelete {
		return []key.Binding{
			key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm delete")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "keep")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *detailView) Init() tea.Cmd {
	return v.loadDetail()
}

func (v *detailView) loadDetail() tea.Cmd {
	app := v.state.App
	id := v.sessionID
	return func() tea.Msg {
		ctx := context.Background()

		s, err := app.Sessions.GetByID(ctx, id)
		if err != nil {
			return detailLoadedMsg{err: err}
		}
		related, err := app.Timetable.Related(ctx, id)
		if err != nil {
			return detailLoadedMsg{err: err}
		}
		return detailLoadedMsg{session: s, related: related}
	}
}

func (v *detailView) deleteSession() tea.Cmd {
	app := v.state.App
	id := v.sessionID
	subject := ""
	if v.session != nil {
		subject = v.session.Subject
	}
	return func() tea.Msg {
		err := app.Sessions.Delete(context.Background(), id)
		return sessionDeletedMsg{subject: subject, err: err}
	}
}

func (v *detailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case detailLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.session = msg.session
		v.related = msg.related
		v.syncViewport()
		return v, nil

	case sessionDeletedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		notice := fmt.Sprintf("%s Removed %s",
			formatter.StyleGreen.Render("✔"), formatter.Bold(msg.subject))
		return v, tea.Batch(
			popView(),
			func() tea.Msg { return refreshViewMsg{} },
			func() tea.Msg { return statusMsg{text: notice} },
		)

	case refreshViewMsg:
		return v, v.loadDetail()

	case tea.WindowSizeMsg:
		v.syncViewport()
		return v, nil

	case tea.KeyMsg:
		if v.confirmDelete {
			switch msg.String() {
			case "y":
				v.confirmDelete = false
				return v, v.deleteSession()
			default:
				v.confirmDelete = false
			}
			return v, nil
		}
		if msg.String() == "x" && v.session != nil {
			v.confirmDelete = true
			return v, nil
		}
	}

	if v.vpReady {
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *detailView) syncViewport() {
	if v.state.Width <= 0 || v.state.Height <= 0 {
		return
	}
	if !v.vpReady {
		v.vp = viewport.New(v.state.Width, v.state.ContentHeight())
		v.vpReady = true
	} else {
		v.vp.Width = v.state.Width
		v.vp.Height = v.state.ContentHeight()
	}
	if v.session != nil {
		v.vp.SetContent(formatter.FormatSessionDetail(
			v.session, v.related, domain.DefaultSessionMinutes))
	}
}

func (v *detailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading session...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.session == nil {
		return ""
	}

	content := formatter.FormatSessionDetail(v.session, v.related, domain.DefaultSessionMinutes)
	if v.vpReady {
		content = v.vp.View()
	}
	if v.confirmDelete {
		content += "\n  " + formatter.StyleRed.Render("Delete this session? (y/n)")
	}
	return content
}
