package service

import (
	"context"
	"time"

	"jadval/internal/contract"
	"jadval/internal/domain"
	"jadval/internal/repository"
	"jadval/internal/schedule"
)

type timetableService struct {
	sessions repository.SessionRepo
	cfg      schedule.Config
	observer Observer
	now      func() time.Time
}

func NewTimetableService(sessions repository.SessionRepo, cfg schedule.Config, observers ...Observer) TimetableService {
	return &timetableService{
		sessions: sessions,
		cfg:      cfg,
		observer: observerOrNoop(observers),
		now:      time.Now,
	}
}

func (s *timetableService) Window(ctx context.Context) (*contract.WindowView, error) {
	snapshot, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	w := schedule.Resolve(s.cfg, snapshot, s.now())
	return &contract.WindowView{
		Earliest:   w.Earliest,
		Latest:     w.Latest,
		WeekZero:   w.WeekZero,
		TotalWeeks: w.MaxWeekIndex() + 1,
	}, nil
}

// Week builds the laid-out view for the given week index. Out-of-range
// indexes are clamped, never rejected, so callers can navigate blindly.
func (s *timetableService) Week(ctx context.Context, weekIndex int) (*contract.WeekView, error) {
	start := time.Now()
	view, err := s.week(ctx, weekIndex)
	s.observer.Observe(ctx, "timetable.week", time.Since(start), err, "week_index", weekIndex)
	return view, err
}

func (s *timetableService) week(ctx context.Context, weekIndex int) (*contract.WeekView, error) {
	snapshot, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}

	w := schedule.Resolve(s.cfg, snapshot, s.now())
	weekIndex = w.Clamp(weekIndex)
	weekStart := w.WeekStartAt(weekIndex)

	view := &contract.WeekView{
		WeekIndex:     weekIndex,
		WeekStart:     weekStart,
		CanGoPrevious: w.CanGoPrevious(weekIndex),
		CanGoNext:     w.CanGoNext(weekIndex),
		TotalWeeks:    w.MaxWeekIndex() + 1,
	}

	byDay := schedule.BinWeek(snapshot, weekStart)
	for i := 0; i < 7; i++ {
		dayDate := weekStart.AddDate(0, 0, i)
		// The day's weekday comes from its date, not its position; the
		// two only coincide when the anchor is Saturday.
		wd := domain.WeekdayOf(dayDate)
		day, err := s.buildDay(dayDate, wd, byDay[wd])
		if err != nil {
			return nil, err
		}
		view.Days[i] = day
	}
	return view, nil
}

func (s *timetableService) Day(ctx context.Context, date time.Time) (*contract.DayView, error) {
	snapshot, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	day := schedule.DateOf(date)
	view, err := s.buildDay(day, domain.WeekdayOf(day), schedule.Bin(snapshot, day))
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *timetableService) buildDay(date time.Time, wd domain.Weekday, occs []schedule.Occurrence) (contract.DayView, error) {
	view := contract.DayView{Date: date, Weekday: wd}
	for _, group := range schedule.TimeGroups(occs) {
		placements, err := schedule.Layout(group)
		if err != nil {
			return contract.DayView{}, err
		}
		for _, p := range placements {
			view.Blocks = append(view.Blocks, contract.Block{
				SessionID:   p.Occurrence.Session.ID,
				Kind:        p.Occurrence.Session.Kind,
				Subject:     p.Occurrence.Session.Subject,
				TeacherName: p.Occurrence.Session.TeacherName,
				Grade:       p.Occurrence.Session.Grade,
				Start:       p.Occurrence.Start,
				DurationMin: p.Occurrence.Minutes(s.cfg.DefaultDurationMin),
				Lane:        p.Lane,
				Lanes:       p.Lanes,
			})
		}
	}
	return view, nil
}

func (s *timetableService) Related(ctx context.Context, sessionID string) ([]domain.Session, error) {
	target, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.RelatedTo(snapshot, *target), nil
}
