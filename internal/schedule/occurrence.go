package schedule

import (
	"time"

	"jadval/internal/domain"
)

// Occurrence is one concrete, dated instance of a session. Occurrences are
// derived per query and never stored; they hold no identity beyond the
// (session, date) pair that produced them.
type Occurrence struct {
	Session domain.Session
	Date    time.Time // midnight of the calendar day
	Start   domain.ClockTime
}

// StartAt returns the full date-time the occurrence begins.
func (o Occurrence) StartAt() time.Time {
	return o.Start.On(o.Date)
}

// Minutes returns the occurrence length, substituting defaultMin when the
// session carries no duration.
func (o Occurrence) Minutes(defaultMin int) int {
	return o.Session.Duration(defaultMin)
}

// OccursOn reports whether the session has an occurrence on the given
// calendar day, and at what wall-clock time. All comparisons are
// calendar-date comparisons; the time-of-day carried by StartAt/EndAt is
// ignored so that a range starting at "2026-01-06 09:00" still matches
// the whole of 2026-01-06.
//
// Malformed sessions (weekday out of range, inverted date range) simply
// never occur; absence of a match is not an error.
func OccursOn(s domain.Session, day time.Time) (domain.ClockTime, bool) {
	if s.Kind == domain.KindSingle {
		if compareDate(s.StartAt, day) == 0 {
			return domain.ClockOf(s.StartAt), true
		}
		return domain.ClockTime{}, false
	}

	if !s.Weekday.Valid() {
		return domain.ClockTime{}, false
	}
	if domain.WeekdayOf(day) != s.Weekday {
		return domain.ClockTime{}, false
	}
	if compareDate(day, s.StartAt) < 0 {
		return domain.ClockTime{}, false
	}
	if s.EndAt != nil && compareDate(day, *s.EndAt) > 0 {
		return domain.ClockTime{}, false
	}
	return s.TimeOfDay, true
}

// DateOf strips the time-of-day from t, keeping its location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// compareDate orders two instants by calendar date only, ignoring both
// time-of-day and location, so a UTC-stored session matches a local query
// for the same calendar day.
func compareDate(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return ay - by
	case am != bm:
		return int(am) - int(bm)
	default:
		return ad - bd
	}
}
