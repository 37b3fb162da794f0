package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jadval/internal/domain"
	"jadval/internal/repository"
)

// ErrInvalidSession is wrapped by Create and Update when a session
// fails validation.
var ErrInvalidSession = errors.New("invalid session")

type sessionService struct {
	sessions repository.SessionRepo
	observer Observer
}

func NewSessionService(sessions repository.SessionRepo, observers ...Observer) SessionService {
	return &sessionService{sessions: sessions, observer: observerOrNoop(observers)}
}

// validateSession enforces the per-kind field requirements. Inverted
// date ranges pass validation: they are legal to store and simply
// produce no occurrences.
func validateSession(s *domain.Session) error {
	if !domain.ValidSessionKinds[string(s.Kind)] {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSession, s.Kind)
	}
	if s.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidSession)
	}
	if s.TeacherName == "" {
		return fmt.Errorf("%w: teacher name is required", ErrInvalidSession)
	}
	if s.StartAt.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidSession)
	}
	if s.Kind == domain.KindRecurring {
		if !s.Weekday.Valid() {
			return fmt.Errorf("%w: recurring sessions need a weekday", ErrInvalidSession)
		}
		if !s.TimeOfDay.Valid() {
			return fmt.Errorf("%w: recurring sessions need a time of day", ErrInvalidSession)
		}
	}
	if s.DurationMin < 0 {
		return fmt.Errorf("%w: duration cannot be negative", ErrInvalidSession)
	}
	return nil
}

func (s *sessionService) Create(ctx context.Context, session *domain.Session) error {
	start := time.Now()
	err := s.create(ctx, session)
	s.observer.Observe(ctx, "session.create", time.Since(start), err, "session_id", session.ID)
	return err
}

func (s *sessionService) create(ctx context.Context, session *domain.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	return s.sessions.Create(ctx, session)
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context) ([]domain.Session, error) {
	return s.sessions.List(ctx)
}

func (s *sessionService) ListByTeacher(ctx context.Context, teacherName string) ([]domain.Session, error) {
	return s.sessions.ListByTeacher(ctx, teacherName)
}

func (s *sessionService) Update(ctx context.Context, session *domain.Session) error {
	start := time.Now()
	err := s.update(ctx, session)
	s.observer.Observe(ctx, "session.update", time.Since(start), err, "session_id", session.ID)
	return err
}

func (s *sessionService) update(ctx context.Context, session *domain.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if _, err := s.sessions.GetByID(ctx, session.ID); err != nil {
		return err
	}
	session.UpdatedAt = time.Now().UTC()
	return s.sessions.Update(ctx, session)
}

func (s *sessionService) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.delete(ctx, id)
	s.observer.Observe(ctx, "session.delete", time.Since(start), err, "session_id", id)
	return err
}

func (s *sessionService) delete(ctx context.Context, id string) error {
	if _, err := s.sessions.GetByID(ctx, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}
