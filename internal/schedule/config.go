package schedule

import (
	"time"

	"jadval/internal/domain"
)

// Config carries the two timetable conventions that are configurable
// rather than hard-coded: which day weeks start on, and the duration
// assumed for sessions that do not state one.
type Config struct {
	// WeekAnchor is the first day of the displayed week.
	WeekAnchor time.Weekday

	// DefaultDurationMin is used for layout height when a session has no
	// explicit duration. It never affects recurrence.
	DefaultDurationMin int
}

// DefaultConfig returns the conventions of the surrounding application:
// Saturday-anchored weeks and 90-minute sessions.
func DefaultConfig() Config {
	return Config{
		WeekAnchor:         time.Saturday,
		DefaultDurationMin: domain.DefaultSessionMinutes,
	}
}
