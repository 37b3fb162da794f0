package repository

import (
	"context"
	"errors"

	"jadval/internal/domain"
)

// ErrNotFound is wrapped by Get operations when no row matches.
var ErrNotFound = errors.New("not found")

// SessionRepo is the session store the timetable engine reads snapshots
// from. List returns the full snapshot in a stable order; the engine
// itself never touches the store.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	ListByTeacher(ctx context.Context, teacherName string) ([]domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
}
