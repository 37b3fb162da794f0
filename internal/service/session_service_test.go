package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jadval/internal/domain"
	"jadval/internal/repository"
	"jadval/internal/testutil"
)

func newSessionService(t *testing.T) SessionService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSessionService(repository.NewSQLiteSessionRepo(database))
}

func TestSessionService_Create_AssignsIDAndTimestamps(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	s := testutil.NewRecurringSession()
	s.ID = ""
	s.CreatedAt = time.Time{}

	require.NoError(t, svc.Create(ctx, s))
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)

	got, err := svc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Subject, got.Subject)
}

func TestSessionService_Create_Validation(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		build func() *domain.Session
	}{
		{"unknown kind", func() *domain.Session {
			s := testutil.NewRecurringSession()
			s.Kind = "biweekly"
			return s
		}},
		{"missing subject", func() *domain.Session {
			return testutil.NewRecurringSession(testutil.WithSubject(""))
		}},
		{"missing teacher", func() *domain.Session {
			return testutil.NewRecurringSession(testutil.WithTeacher(""))
		}},
		{"recurring without weekday", func() *domain.Session {
			return testutil.NewRecurringSession(testutil.WithWeekday(domain.Weekday(-1)))
		}},
		{"recurring without clock", func() *domain.Session {
			return testutil.NewRecurringSession(testutil.WithTimeOfDay(25, 0))
		}},
		{"negative duration", func() *domain.Session {
			return testutil.NewRecurringSession(testutil.WithDuration(-10))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(ctx, tc.build())
			assert.True(t, errors.Is(err, ErrInvalidSession))
		})
	}
}

func TestSessionService_Create_InvertedRangeIsAccepted(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	end := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	s := testutil.NewRecurringSession(testutil.WithRange(
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), &end,
	))
	assert.NoError(t, svc.Create(ctx, s))
}

func TestSessionService_Update_NotFound(t *testing.T) {
	svc := newSessionService(t)

	s := testutil.NewRecurringSession()
	err := svc.Update(context.Background(), s)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestSessionService_Delete(t *testing.T) {
	svc := newSessionService(t)
	ctx := context.Background()

	s := testutil.NewSingleSession(time.Date(2026, 2, 10, 16, 30, 0, 0, time.UTC))
	require.NoError(t, svc.Create(ctx, s))
	require.NoError(t, svc.Delete(ctx, s.ID))

	_, err := svc.GetByID(ctx, s.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	err = svc.Delete(ctx, s.ID)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
