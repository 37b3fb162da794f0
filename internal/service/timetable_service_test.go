package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jadval/internal/domain"
	"jadval/internal/repository"
	"jadval/internal/schedule"
	"jadval/internal/testutil"
)

// fixedTimetable wires a timetable service whose clock is pinned, so
// window resolution is reproducible.
func fixedTimetable(t *testing.T, now time.Time) (TimetableService, repository.SessionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	svc := &timetableService{
		sessions: repo,
		cfg:      schedule.DefaultConfig(),
		observer: NoopObserver{},
		now:      func() time.Time { return now },
	}
	return svc, repo
}

func TestTimetableService_EmptyStoreYieldsOneWeek(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	svc, _ := fixedTimetable(t, now)
	ctx := context.Background()

	win, err := svc.Window(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, win.TotalWeeks)

	week, err := svc.Week(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 0, week.WeekIndex, "out-of-range index clamps")
	assert.False(t, week.CanGoPrevious)
	assert.False(t, week.CanGoNext)
	for _, day := range week.Days {
		assert.Empty(t, day.Blocks)
	}
}

func TestTimetableService_Week_CollidingSessionsShareLanes(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	svc, repo := fixedTimetable(t, now)
	ctx := context.Background()

	start := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	a := testutil.NewRecurringSession(
		testutil.WithSubject("Algebra"),
		testutil.WithWeekday(domain.Saturday),
		testutil.WithTimeOfDay(10, 0),
		testutil.WithRange(start, nil),
	)
	b := testutil.NewRecurringSession(
		testutil.WithSubject("Biology"),
		testutil.WithWeekday(domain.Saturday),
		testutil.WithTimeOfDay(10, 0),
		testutil.WithRange(start, nil),
	)
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	week, err := svc.Week(ctx, 0)
	require.NoError(t, err)
	assert.True(t, week.WeekStart.Equal(start))

	saturday := week.Days[0]
	require.Len(t, saturday.Blocks, 2)
	lanes := map[int]bool{}
	for _, blk := range saturday.Blocks {
		assert.Equal(t, 2, blk.Lanes)
		assert.Equal(t, "10:00", blk.Start.String())
		lanes[blk.Lane] = true
	}
	assert.Len(t, lanes, 2, "each block gets its own lane")

	for i := 1; i < 7; i++ {
		assert.Empty(t, week.Days[i].Blocks)
	}
}

func TestTimetableService_Week_MondayAnchor(t *testing.T) {
	now := time.Date(2026, 1, 7, 12, 0, 0, 0, time.UTC)
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSessionRepo(database)
	svc := &timetableService{
		sessions: repo,
		cfg:      schedule.Config{WeekAnchor: time.Monday, DefaultDurationMin: domain.DefaultSessionMinutes},
		observer: NoopObserver{},
		now:      func() time.Time { return now },
	}
	ctx := context.Background()

	s := testutil.NewRecurringSession(
		testutil.WithWeekday(domain.Monday),
		testutil.WithTimeOfDay(9, 0),
		testutil.WithRange(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), nil),
	)
	require.NoError(t, repo.Create(ctx, s))

	week, err := svc.Week(ctx, 0)
	require.NoError(t, err)
	assert.True(t, week.WeekStart.Equal(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)),
		"a Monday anchor starts the week on Monday")

	monday := week.Days[0]
	assert.Equal(t, domain.Monday, monday.Weekday)
	require.Len(t, monday.Blocks, 1)
	assert.Equal(t, "09:00", monday.Blocks[0].Start.String())

	for _, day := range week.Days {
		assert.Equal(t, domain.WeekdayOf(day.Date), day.Weekday,
			"date=%s", day.Date.Format("2006-01-02"))
	}
}

func TestTimetableService_InvertedRangeStaysNavigable(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	svc, repo := fixedTimetable(t, now)
	ctx := context.Background()

	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := testutil.NewRecurringSession(
		testutil.WithWeekday(domain.Monday),
		testutil.WithRange(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), &end),
	)
	require.NoError(t, repo.Create(ctx, s))

	win, err := svc.Window(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, win.TotalWeeks)

	week, err := svc.Week(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, week.WeekIndex)
	assert.True(t, week.WeekStart.Equal(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)),
		"the week containing the session's start, not one before the data")
	for _, day := range week.Days {
		assert.Empty(t, day.Blocks, "an inverted range never occurs")
	}
}

func TestTimetableService_Week_DefaultDurationApplied(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	svc, repo := fixedTimetable(t, now)
	ctx := context.Background()

	start := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	s := testutil.NewRecurringSession(
		testutil.WithWeekday(domain.Monday),
		testutil.WithTimeOfDay(14, 0),
		testutil.WithRange(start, nil),
	)
	require.NoError(t, repo.Create(ctx, s))

	week, err := svc.Week(ctx, 0)
	require.NoError(t, err)
	monday := week.Days[int(domain.Monday)]
	require.Len(t, monday.Blocks, 1)
	assert.Equal(t, domain.DefaultSessionMinutes, monday.Blocks[0].DurationMin)
}

func TestTimetableService_Day_IncludesSingleSession(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	svc, repo := fixedTimetable(t, now)
	ctx := context.Background()

	at := time.Date(2026, 2, 10, 16, 30, 0, 0, time.UTC)
	s := testutil.NewSingleSession(at, testutil.WithDuration(60))
	require.NoError(t, repo.Create(ctx, s))

	day, err := svc.Day(ctx, time.Date(2026, 2, 10, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, domain.Tuesday, day.Weekday)
	require.Len(t, day.Blocks, 1)
	assert.Equal(t, "16:30", day.Blocks[0].Start.String())
	assert.Equal(t, 60, day.Blocks[0].DurationMin)

	other, err := svc.Day(ctx, time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, other.Blocks)
}

func TestTimetableService_Related(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	svc, repo := fixedTimetable(t, now)
	ctx := context.Background()

	start := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)
	mon := testutil.NewRecurringSession(
		testutil.WithWeekday(domain.Monday),
		testutil.WithRange(start, nil),
	)
	wed := testutil.NewRecurringSession(
		testutil.WithWeekday(domain.Wednesday),
		testutil.WithRange(start, nil),
	)
	otherTeacher := testutil.NewRecurringSession(
		testutil.WithWeekday(domain.Thursday),
		testutil.WithTeacher("Someone Else"),
		testutil.WithRange(start, nil),
	)
	require.NoError(t, repo.Create(ctx, mon))
	require.NoError(t, repo.Create(ctx, wed))
	require.NoError(t, repo.Create(ctx, otherTeacher))

	related, err := svc.Related(ctx, mon.ID)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, wed.ID, related[0].ID)
}
