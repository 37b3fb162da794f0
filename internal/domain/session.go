package domain

import "time"

// DefaultSessionMinutes is the fallback duration used when a session
// carries no explicit duration. It affects layout height only, never
// recurrence.
const DefaultSessionMinutes = 90

// Session is the atomic schedulable unit of a center's timetable.
// A recurring session repeats weekly on Weekday between StartAt and EndAt;
// a single session happens exactly once at StartAt.
type Session struct {
	ID          string
	Kind        SessionKind
	Subject     string
	TeacherName string
	TeacherID   string // optional, opaque
	Grade       string

	// Recurring only. Saturday-anchored; an out-of-range value excludes
	// the session from expansion rather than failing.
	Weekday Weekday

	// Recurring only; single sessions derive their time from StartAt.
	TimeOfDay ClockTime

	// Recurring: the date occurrences begin. Single: the exact date-time
	// of the one occurrence.
	StartAt time.Time

	// Recurring: the date after which no occurrences are generated.
	// Nil means open-ended.
	EndAt *time.Time

	// Zero means DefaultSessionMinutes.
	DurationMin int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartTime returns the wall-clock start time of the session's occurrences,
// regardless of kind.
func (s *Session) StartTime() ClockTime {
	if s.Kind == KindSingle {
		return ClockOf(s.StartAt)
	}
	return s.TimeOfDay
}

// Duration returns the session length in minutes, substituting defaultMin
// when none is set.
func (s *Session) Duration(defaultMin int) int {
	if s.DurationMin > 0 {
		return s.DurationMin
	}
	return defaultMin
}

// DisplayID returns a short identifier for listings: the first 8
// characters of the UUID.
func (s *Session) DisplayID() string {
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// SameOffering reports whether two sessions describe the same taught
// offering: identical subject, grade, and teacher name. Exact string
// equality; the engine never normalizes descriptive attributes.
func (s *Session) SameOffering(other *Session) bool {
	return s.Subject == other.Subject &&
		s.Grade == other.Grade &&
		s.TeacherName == other.TeacherName
}
