package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jadval/internal/domain"
	"jadval/internal/teatest"
)

// newTUIDriver builds a driver over the full TUI backed by an in-memory DB.
func newTUIDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func TestTUI_WeekViewShowsBlocks(t *testing.T) {
	app := testApp(t)
	seedWeekly(t, app, "Algebra", domain.Saturday, 10)
	seedWeekly(t, app, "Biology", domain.Saturday, 10)

	d := newTUIDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "jadval")
	assert.Contains(t, view, "Week 1 of 1")
	assert.Contains(t, view, "Algebra")
	assert.Contains(t, view, "Biology")
	assert.Contains(t, view, "lane 1/2")
}

func TestTUI_NavigationClampsAtEdges(t *testing.T) {
	app := testApp(t)
	seedWeekly(t, app, "Algebra", domain.Saturday, 10)

	d := newTUIDriver(t, app)

	// Single-week window: arrows must be no-ops, not errors.
	d.PressRight()
	assert.Contains(t, d.View(), "Week 1 of 1")
	d.PressLeft()
	assert.Contains(t, d.View(), "Week 1 of 1")
}

func TestTUI_DetailViewAndBack(t *testing.T) {
	app := testApp(t)
	seedWeekly(t, app, "Algebra", domain.Monday, 16)
	seedWeekly(t, app, "Algebra", domain.Wednesday, 16)

	d := newTUIDriver(t, app)
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "Session", "breadcrumb shows the detail view")
	assert.Contains(t, view, "Also this week")

	d.PressEsc()
	assert.Contains(t, d.View(), "Week 1 of 1")
}

func TestTUI_DeleteSessionFromDetail(t *testing.T) {
	app := testApp(t)
	seedWeekly(t, app, "Algebra", domain.Monday, 16)

	d := newTUIDriver(t, app)
	d.PressEnter()
	d.PressKey('x')
	assert.Contains(t, d.View(), "Delete this session?")

	d.PressKey('y')

	// Back on the week view with the session gone.
	view := d.View()
	assert.Contains(t, view, "No sessions this week.")
	assert.Contains(t, view, "Removed")

	sessions, err := app.Sessions.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestTUI_DeleteDeclined(t *testing.T) {
	app := testApp(t)
	seedWeekly(t, app, "Algebra", domain.Monday, 16)

	d := newTUIDriver(t, app)
	d.PressEnter()
	d.PressKey('x')
	d.PressKey('n')

	sessions, err := app.Sessions.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestTUI_AddFormOpensAndCancels(t *testing.T) {
	app := testApp(t)
	seedWeekly(t, app, "Algebra", domain.Monday, 16)

	d := newTUIDriver(t, app)
	d.PressKey('a')
	assert.Contains(t, d.View(), "Session kind")

	d.PressEsc()
	view := d.View()
	assert.Contains(t, view, "Week 1 of 1")
	assert.Contains(t, view, "Cancelled.")
}

func TestTUI_QuitKey(t *testing.T) {
	app := testApp(t)

	d := newTUIDriver(t, app)
	d.PressKey('q')
	assert.True(t, d.Quitting)
}
