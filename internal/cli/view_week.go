package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"jadval/internal/cli/formatter"
	"jadval/internal/contract"
)

// weekLoadedMsg signals that a week view has been loaded.
type weekLoadedMsg struct {
	week *contract.WeekView
	err  error
}

// blockRef addresses one block inside a loaded week.
type blockRef struct {
	day   int
	block int
}

// weekView is the home screen of the TUI: the full week grid with a
// movable selection over its blocks.
type weekView struct {
	state   *SharedState
	week    *contract.WeekView
	loading bool
	err     error

	// Flattened selection order over the week's blocks.
	refs   []blockRef
	cursor int

	// firstLoad jumps to the week containing today instead of week zero.
	firstLoad bool
}

func newWeekView(state *SharedState) *weekView {
	return &weekView{
		state:     state,
		loading:   true,
		firstLoad: true,
	}
}

func (v *weekView) ID() ViewID    { return ViewWeek }
func (v *weekView) Title() string { return "Week" }

func (v *weekView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change week")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *weekView) Init() tea.Cmd {
	return v.loadWeek()
}

func (v *weekView) loadWeek() tea.Cmd {
	app := v.state.App
	index := v.state.WeekIndex
	first := v.firstLoad
	return func() tea.Msg {
		ctx := context.Background()

		if first {
			win, err := app.Timetable.Window(ctx)
			if err != nil {
				return weekLoadedMsg{err: err}
			}
			index = todayWeekIndex(win)
		}

		week, err := app.Timetable.Week(ctx, index)
		return weekLoadedMsg{week: week, err: err}
	}
}

// todayWeekIndex estimates the index of the week containing today.
// The service clamps, so an out-of-range estimate is harmless.
func todayWeekIndex(win *contract.WindowView) int {
	days := time.Since(win.WeekZero).Hours() / 24
	return int(math.Floor(days / 7))
}

func (v *weekView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case weekLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.week = msg.week
		v.state.WeekIndex = msg.week.WeekIndex
		v.firstLoad = false
		v.rebuildRefs()
		return v, nil

	case refreshViewMsg:
		return v, v.loadWeek()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *weekView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.week == nil {
		return v, nil
	}

	switch msg.String() {
	case "left", "h":
		if v.week.CanGoPrevious {
			v.state.WeekIndex--
			v.loading = true
			return v, v.loadWeek()
		}
		return v, nil

	case "right", "l":
		if v.week.CanGoNext {
			v.state.WeekIndex++
			v.loading = true
			return v, v.loadWeek()
		}
		return v, nil

	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case "down", "j":
		if v.cursor < len(v.refs)-1 {
			v.cursor++
		}
		return v, nil

	case "r":
		v.loading = true
		return v, v.loadWeek()

	case "a":
		return v, pushView(newSessionFormView(v.state))

	case "enter":
		if blk := v.selectedBlock(); blk != nil {
			return v, pushView(newDetailView(v.state, blk.SessionID))
		}
		return v, nil
	}

	return v, nil
}

func (v *weekView) rebuildRefs() {
	v.refs = v.refs[:0]
	for d, day := range v.week.Days {
		for b := range day.Blocks {
			v.refs = append(v.refs, blockRef{day: d, block: b})
		}
	}
	if v.cursor >= len(v.refs) {
		v.cursor = len(v.refs) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *weekView) selectedBlock() *contract.Block {
	if len(v.refs) == 0 || v.cursor >= len(v.refs) {
		return nil
	}
	ref := v.refs[v.cursor]
	return &v.week.Days[ref.day].Blocks[ref.block]
}

func (v *weekView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading timetable...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.week == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n" + v.caption() + "\n\n")

	shown := false
	ref := 0
	for _, day := range v.week.Days {
		if len(day.Blocks) == 0 {
			continue
		}
		shown = true
		b.WriteString(formatter.Header(fmt.Sprintf("%s %s",
			day.Weekday.String(), day.Date.Format("02 Jan"))) + "\n")
		for _, blk := range day.Blocks {
			b.WriteString(v.renderBlock(blk, ref == v.cursor) + "\n")
			ref++
		}
		b.WriteString("\n")
	}
	if !shown {
		b.WriteString(formatter.Dim("  No sessions this week.") + "\n")
	}

	return b.String()
}

func (v *weekView) caption() string {
	prev := formatter.Dim("◀")
	if v.week.CanGoPrevious {
		prev = formatter.StyleGreen.Render("◀")
	}
	next := formatter.Dim("▶")
	if v.week.CanGoNext {
		next = formatter.StyleGreen.Render("▶")
	}
	return fmt.Sprintf("%s %s %s  %s",
		prev,
		formatter.Bold(fmt.Sprintf("Week %d of %d", v.week.WeekIndex+1, v.week.TotalWeeks)),
		next,
		formatter.Dim("starting "+formatter.HumanDate(v.week.WeekStart)),
	)
}

func (v *weekView) renderBlock(blk contract.Block, selected bool) string {
	marker := "  "
	if selected {
		marker = formatter.StyleHeader.Render("▸ ")
	}

	lane := ""
	if blk.Lanes > 1 {
		lane = "  " + formatter.Dim(fmt.Sprintf("lane %d/%d", blk.Lane+1, blk.Lanes))
	}

	subject := blk.Subject
	if selected {
		subject = formatter.Bold(subject)
	}

	return fmt.Sprintf("%s%s  %s  %s  %s  %s%s",
		marker,
		formatter.StyleYellow.Render(blk.Start.String()),
		subject,
		formatter.Dim("gr "+blk.Grade),
		blk.TeacherName,
		formatter.Dim(formatter.FormatMinutes(blk.DurationMin)),
		lane,
	)
}
