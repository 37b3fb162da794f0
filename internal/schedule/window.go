package schedule

import (
	"math"
	"time"

	"jadval/internal/domain"
)

// Window is the navigable date range derived from a session snapshot.
// Week 0 is the anchor-aligned week containing the earliest date; the
// last navigable week is the one containing the latest date. Navigation
// outside the range is clamped, never rejected.
type Window struct {
	Earliest time.Time
	Latest   time.Time
	// WeekZero is the start (midnight) of the anchor-aligned week
	// containing Earliest.
	WeekZero time.Time

	anchor time.Weekday
}

// Resolve derives the navigable window from a session snapshot.
//
// Earliest is the minimum StartAt across all sessions. Latest is the
// maximum of: EndAt for bounded recurring sessions, StartAt for single
// sessions and for open-ended recurring ones. Open-ended recurring
// sessions deliberately do not extend the upper bound; the window stays
// as far as actual data justifies, keeping navigation finite. An EndAt
// before StartAt counts as StartAt, so Latest never precedes Earliest.
//
// An empty snapshot degenerates to a single week anchored on now.
func Resolve(cfg Config, sessions []domain.Session, now time.Time) Window {
	if len(sessions) == 0 {
		day := DateOf(now)
		return Window{
			Earliest: day,
			Latest:   day,
			WeekZero: WeekStart(cfg.WeekAnchor, day),
			anchor:   cfg.WeekAnchor,
		}
	}

	var earliest, latest time.Time
	for i := range sessions {
		s := &sessions[i]
		start := DateOf(s.StartAt)

		// An inverted range contributes only its start date, keeping
		// Latest >= Earliest and week indexes non-negative.
		end := start
		if s.Kind == domain.KindRecurring && s.EndAt != nil {
			if e := DateOf(*s.EndAt); e.After(start) {
				end = e
			}
		}

		if i == 0 || start.Before(earliest) {
			earliest = start
		}
		if i == 0 || end.After(latest) {
			latest = end
		}
	}

	return Window{
		Earliest: earliest,
		Latest:   latest,
		WeekZero: WeekStart(cfg.WeekAnchor, earliest),
		anchor:   cfg.WeekAnchor,
	}
}

// WeekStart normalizes a date to midnight of the anchor day on or before it.
func WeekStart(anchor time.Weekday, date time.Time) time.Time {
	d := DateOf(date)
	back := (int(d.Weekday()) - int(anchor) + 7) % 7
	return d.AddDate(0, 0, -back)
}

// WeekIndex returns the zero-based week offset of date from WeekZero.
// Dates before WeekZero yield negative indexes; callers clamp via Clamp.
func (w Window) WeekIndex(date time.Time) int {
	start := WeekStart(w.anchor, date)
	// Both ends are midnight-aligned week starts; rounding absorbs the
	// odd hour a DST transition can introduce.
	return int(math.Round(start.Sub(w.WeekZero).Hours() / (24 * 7)))
}

// MaxWeekIndex returns the last navigable week index.
func (w Window) MaxWeekIndex() int {
	return w.WeekIndex(w.Latest)
}

// WeekStartAt returns the first day (midnight) of the given week index.
func (w Window) WeekStartAt(index int) time.Time {
	return w.WeekZero.AddDate(0, 0, index*7)
}

// Clamp forces a week index into the navigable range [0, MaxWeekIndex].
func (w Window) Clamp(index int) int {
	if index < 0 {
		return 0
	}
	if max := w.MaxWeekIndex(); index > max {
		return max
	}
	return index
}

// CanGoPrevious reports whether a week before index is navigable.
func (w Window) CanGoPrevious(index int) bool {
	return index > 0
}

// CanGoNext reports whether a week after index is navigable.
func (w Window) CanGoNext(index int) bool {
	return index < w.MaxWeekIndex()
}

// PreviousWeek returns the week index before current, or ok=false at the
// lower bound. Bounds are never an error; the caller disables its control.
func (w Window) PreviousWeek(current int) (int, bool) {
	if !w.CanGoPrevious(current) {
		return current, false
	}
	return current - 1, true
}

// NextWeek returns the week index after current, or ok=false at the upper
// bound.
func (w Window) NextWeek(current int) (int, bool) {
	if !w.CanGoNext(current) {
		return current, false
	}
	return current + 1, true
}
