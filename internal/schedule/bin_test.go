package schedule

import (
	"testing"
	"time"

	"jadval/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBin_SingleSession(t *testing.T) {
	sessions := []domain.Session{
		single("s1", time.Date(2026, 2, 10, 16, 30, 0, 0, time.UTC)),
	}

	occs := Bin(sessions, date(2026, 2, 10))
	require.Len(t, occs, 1)
	assert.Equal(t, domain.ClockTime{Hour: 16, Minute: 30}, occs[0].Start)
	assert.Equal(t, date(2026, 2, 10), occs[0].Date)

	assert.Empty(t, Bin(sessions, date(2026, 2, 17)))
}

func TestBin_SortsByTimeThenID(t *testing.T) {
	sessions := []domain.Session{
		recurring("b", domain.Saturday, domain.ClockTime{Hour: 10}, date(2026, 1, 1), nil),
		recurring("c", domain.Saturday, domain.ClockTime{Hour: 8}, date(2026, 1, 1), nil),
		recurring("a", domain.Saturday, domain.ClockTime{Hour: 10}, date(2026, 1, 1), nil),
	}

	occs := Bin(sessions, date(2026, 1, 3)) // a Saturday
	require.Len(t, occs, 3)
	assert.Equal(t, "c", occs[0].Session.ID, "earliest time first")
	assert.Equal(t, "a", occs[1].Session.ID, "ties broken by session id")
	assert.Equal(t, "b", occs[2].Session.ID)
}

func TestBin_Deterministic(t *testing.T) {
	sessions := []domain.Session{
		recurring("r2", domain.Saturday, domain.ClockTime{Hour: 10}, date(2026, 1, 1), nil),
		recurring("r1", domain.Saturday, domain.ClockTime{Hour: 10}, date(2026, 1, 1), nil),
		single("s1", time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)),
	}

	first := Bin(sessions, date(2026, 1, 3))
	second := Bin(sessions, date(2026, 1, 3))
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Session.ID, second[i].Session.ID)
		assert.Equal(t, first[i].Start, second[i].Start)
	}
}

func TestBinWeek_AllSevenDaysPresent(t *testing.T) {
	week := BinWeek(nil, date(2026, 1, 3))
	require.Len(t, week, 7)
	for w := domain.Saturday; w <= domain.Friday; w++ {
		occs, ok := week[w]
		assert.True(t, ok, "weekday %s must be present", w)
		assert.Empty(t, occs)
	}
}

func TestBinWeek_PlacesOccurrencesOnTheirWeekday(t *testing.T) {
	sessions := []domain.Session{
		recurring("r1", domain.Tuesday, domain.ClockTime{Hour: 14}, date(2026, 1, 6), nil),
		single("s1", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)), // a Monday
	}

	week := BinWeek(sessions, date(2026, 1, 3))
	assert.Len(t, week[domain.Tuesday], 1)
	assert.Len(t, week[domain.Monday], 1)
	assert.Empty(t, week[domain.Saturday])
}

func TestBinWeek_SameTimeSameDayGrouped(t *testing.T) {
	// Two Saturday 10:00 sessions with different teachers form one
	// time-group of size two.
	s1 := recurring("r1", domain.Saturday, domain.ClockTime{Hour: 10}, date(2026, 1, 1), nil)
	s1.TeacherName = "A. Farid"
	s2 := recurring("r2", domain.Saturday, domain.ClockTime{Hour: 10}, date(2026, 1, 1), nil)
	s2.TeacherName = "B. Omid"

	week := BinWeek([]domain.Session{s1, s2}, date(2026, 1, 3))
	groups := TimeGroups(week[domain.Saturday])
	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}

func TestTimeGroups_SplitsOnStartTime(t *testing.T) {
	occs := Bin([]domain.Session{
		recurring("r1", domain.Saturday, domain.ClockTime{Hour: 8}, date(2026, 1, 1), nil),
		recurring("r2", domain.Saturday, domain.ClockTime{Hour: 10}, date(2026, 1, 1), nil),
		recurring("r3", domain.Saturday, domain.ClockTime{Hour: 10}, date(2026, 1, 1), nil),
		recurring("r4", domain.Saturday, domain.ClockTime{Hour: 10, Minute: 30}, date(2026, 1, 1), nil),
	}, date(2026, 1, 3))

	groups := TimeGroups(occs)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 1)
	assert.Len(t, groups[1], 2)
	assert.Len(t, groups[2], 1)
}

func TestTimeGroups_Empty(t *testing.T) {
	assert.Empty(t, TimeGroups(nil))
}
