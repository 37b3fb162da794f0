package testutil

import (
	"time"

	"github.com/google/uuid"

	"jadval/internal/domain"
)

// Session options
type SessionOption func(*domain.Session)

func WithSubject(subject string) SessionOption {
	return func(s *domain.Session) {
		s.Subject = subject
	}
}

func WithTeacher(name string) SessionOption {
	return func(s *domain.Session) {
		s.TeacherName = name
	}
}

func WithTeacherID(id string) SessionOption {
	return func(s *domain.Session) {
		s.TeacherID = id
	}
}

func WithGrade(grade string) SessionOption {
	return func(s *domain.Session) {
		s.Grade = grade
	}
}

func WithWeekday(wd domain.Weekday) SessionOption {
	return func(s *domain.Session) {
		s.Weekday = wd
	}
}

func WithTimeOfDay(hour, minute int) SessionOption {
	return func(s *domain.Session) {
		s.TimeOfDay = domain.ClockTime{Hour: hour, Minute: minute}
	}
}

func WithRange(start time.Time, end *time.Time) SessionOption {
	return func(s *domain.Session) {
		s.StartAt = start
		s.EndAt = end
	}
}

func WithDuration(minutes int) SessionOption {
	return func(s *domain.Session) {
		s.DurationMin = minutes
	}
}

// NewRecurringSession builds a weekly session with sensible defaults:
// Mondays at 10:00, open-ended from the start of 2026.
func NewRecurringSession(opts ...SessionOption) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:          uuid.New().String(),
		Kind:        domain.KindRecurring,
		Subject:     "Mathematics",
		TeacherName: "A. Karimi",
		Grade:       "7",
		Weekday:     domain.Monday,
		TimeOfDay:   domain.ClockTime{Hour: 10, Minute: 0},
		StartAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSingleSession builds a one-off session at the given instant.
func NewSingleSession(startAt time.Time, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:          uuid.New().String(),
		Kind:        domain.KindSingle,
		Subject:     "Physics",
		TeacherName: "B. Rahimi",
		Grade:       "9",
		StartAt:     startAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
