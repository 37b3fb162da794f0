// Package contract defines the request/response shapes exchanged between
// the service layer and its callers (CLI and TUI). Contracts carry derived
// view data only; they are never persisted.
package contract

import (
	"time"

	"jadval/internal/domain"
)

// Block is one laid-out occurrence inside a day column.
type Block struct {
	SessionID   string
	Kind        domain.SessionKind
	Subject     string
	TeacherName string
	Grade       string
	Start       domain.ClockTime
	DurationMin int

	// Lane assignment within the block's time-group.
	Lane  int
	Lanes int
}

// DayView is one rendered day: blocks sorted by start time, lanes already
// assigned.
type DayView struct {
	Date    time.Time
	Weekday domain.Weekday
	Blocks  []Block
}

// WeekView is a full displayed week plus the navigation state the UI
// needs to enable or disable its controls.
type WeekView struct {
	WeekIndex int
	WeekStart time.Time
	Days      [7]DayView // index 0 = the week anchor day

	CanGoPrevious bool
	CanGoNext     bool
	TotalWeeks    int
}

// WindowView summarizes the navigable range for display.
type WindowView struct {
	Earliest   time.Time
	Latest     time.Time
	WeekZero   time.Time
	TotalWeeks int
}
