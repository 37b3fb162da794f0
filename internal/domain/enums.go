package domain

import (
	"strings"
	"time"
)

type SessionKind string

const (
	KindRecurring SessionKind = "recurring"
	KindSingle    SessionKind = "single"
)

// ValidSessionKinds is the canonical set of accepted session kind strings.
var ValidSessionKinds = map[string]bool{
	"recurring": true, "single": true,
}

// Weekday is a Saturday-anchored weekday index: Saturday=0 … Friday=6.
// This is the canonical ordering for the whole timetable; it differs from
// time.Weekday, which anchors on Sunday.
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayNames = [7]string{
	"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "invalid"
	}
	return weekdayNames[w]
}

// Short returns the three-letter day name.
func (w Weekday) Short() string {
	return w.String()[:3]
}

// Valid reports whether w is within the canonical [Saturday, Friday] range.
func (w Weekday) Valid() bool {
	return w >= Saturday && w <= Friday
}

// WeekdayOf converts a date to its Saturday-anchored weekday index.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 1) % 7)
}

// ToTime converts w to the standard library's Sunday-anchored weekday.
func (w Weekday) ToTime() time.Weekday {
	return time.Weekday((int(w) + 6) % 7)
}

// ParseWeekday resolves a day name (full or three-letter, any case) to its
// canonical index. Returns -1 when the name is not a weekday.
func ParseWeekday(name string) Weekday {
	for i, n := range weekdayNames {
		if strings.EqualFold(name, n) || strings.EqualFold(name, n[:3]) {
			return Weekday(i)
		}
	}
	return Weekday(-1)
}
