package schedule

import (
	"sort"
	"time"

	"jadval/internal/domain"
)

// Bin expands a session snapshot against one calendar day, returning the
// day's occurrences sorted ascending by start time, ties broken by session
// ID. The ordering is total and input-independent, so repeated calls with
// the same snapshot render identically.
func Bin(sessions []domain.Session, day time.Time) []Occurrence {
	date := DateOf(day)
	var out []Occurrence
	for i := range sessions {
		if at, ok := OccursOn(sessions[i], date); ok {
			out = append(out, Occurrence{
				Session: sessions[i],
				Date:    date,
				Start:   at,
			})
		}
	}
	sortOccurrences(out)
	return out
}

// BinWeek bins all seven days of the week starting at weekStart. Every
// weekday key is present, empty days included, so renderers can draw a
// full grid without nil checks.
func BinWeek(sessions []domain.Session, weekStart time.Time) map[domain.Weekday][]Occurrence {
	start := DateOf(weekStart)
	week := make(map[domain.Weekday][]Occurrence, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		week[domain.WeekdayOf(day)] = Bin(sessions, day)
	}
	return week
}

// TimeGroups partitions a day's sorted occurrences into groups sharing an
// identical start time. Only same-time occurrences need lane separation in
// a fixed-row grid, so these groups are the unit the layout engine
// operates on. Input order within each group is preserved.
func TimeGroups(occs []Occurrence) [][]Occurrence {
	var groups [][]Occurrence
	for i := 0; i < len(occs); {
		j := i + 1
		for j < len(occs) && occs[j].Start == occs[i].Start {
			j++
		}
		groups = append(groups, occs[i:j:j])
		i = j
	}
	return groups
}

func sortOccurrences(occs []Occurrence) {
	sort.SliceStable(occs, func(i, j int) bool {
		a, b := occs[i], occs[j]
		if a.Start.Minutes() != b.Start.Minutes() {
			return a.Start.Minutes() < b.Start.Minutes()
		}
		return a.Session.ID < b.Session.ID
	})
}
