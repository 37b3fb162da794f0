package service

import (
	"context"
	"time"

	"jadval/internal/contract"
	"jadval/internal/domain"
)

type SessionService interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	ListByTeacher(ctx context.Context, teacherName string) ([]domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}

// TimetableService answers timetable queries against the current session
// snapshot. Every call re-reads the store and recomputes, so results
// always reflect the latest sessions.
type TimetableService interface {
	Window(ctx context.Context) (*contract.WindowView, error)
	Week(ctx context.Context, weekIndex int) (*contract.WeekView, error)
	Day(ctx context.Context, date time.Time) (*contract.DayView, error)
	Related(ctx context.Context, sessionID string) ([]domain.Session, error)
}
