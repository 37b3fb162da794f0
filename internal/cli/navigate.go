package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// refreshViewMsg asks every view on the stack to reload its data.
// Sent after mutations so views below a form pick up the change.
type refreshViewMsg struct{}

// formCompleteMsg is sent when a form finishes or is cancelled.
// The appModel pops the form view, then runs nextCmd.
type formCompleteMsg struct {
	nextCmd tea.Cmd
}

// statusMsg carries a transient one-line notice for the status bar.
type statusMsg struct {
	text string
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}
