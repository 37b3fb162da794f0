package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jadval/internal/db"
	"jadval/internal/domain"
)

const sessionColumns = `id, kind, subject, teacher_name, teacher_id, grade,
	weekday, time_of_day, start_at, end_at, duration_min, created_at, updated_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		string(s.Kind),
		s.Subject,
		s.TeacherName,
		s.TeacherID,
		s.Grade,
		weekdayToValue(s),
		timeOfDayToValue(s),
		s.StartAt.Format(time.RFC3339),
		nullableTimeToString(s.EndAt, time.RFC3339),
		s.DurationMin,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

// List returns the full snapshot, ordered by creation time then id so
// that repeated reads of an unchanged store yield an identical slice.
func (r *SQLiteSessionRepo) List(ctx context.Context) ([]domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByTeacher(ctx context.Context, teacherName string) ([]domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions
		WHERE teacher_name = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, teacherName)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by teacher: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE sessions SET
		kind = ?, subject = ?, teacher_name = ?, teacher_id = ?, grade = ?,
		weekday = ?, time_of_day = ?, start_at = ?, end_at = ?,
		duration_min = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		string(s.Kind),
		s.Subject,
		s.TeacherName,
		s.TeacherID,
		s.Grade,
		weekdayToValue(s),
		timeOfDayToValue(s),
		s.StartAt.Format(time.RFC3339),
		nullableTimeToString(s.EndAt, time.RFC3339),
		s.DurationMin,
		nowUTC(),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// weekdayToValue stores NULL for single sessions; recurring sessions
// store their canonical index as-is, valid or not.
func weekdayToValue(s *domain.Session) interface{} {
	if s.Kind == domain.KindSingle {
		return nil
	}
	return int(s.Weekday)
}

// timeOfDayToValue stores NULL for single sessions, which derive their
// time from start_at.
func timeOfDayToValue(s *domain.Session) interface{} {
	if s.Kind == domain.KindSingle {
		return nil
	}
	return s.TimeOfDay.String()
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	var kind, startAtStr, createdAtStr, updatedAtStr string
	var weekday sql.NullInt64
	var timeOfDay, endAt sql.NullString

	err := row.Scan(
		&s.ID, &kind, &s.Subject, &s.TeacherName, &s.TeacherID, &s.Grade,
		&weekday, &timeOfDay, &startAtStr, &endAt, &s.DurationMin,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	return r.populateSession(&s, kind, weekday, timeOfDay, startAtStr, endAt, createdAtStr, updatedAtStr)
}

func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]domain.Session, error) {
	var sessions []domain.Session
	for rows.Next() {
		var s domain.Session
		var kind, startAtStr, createdAtStr, updatedAtStr string
		var weekday sql.NullInt64
		var timeOfDay, endAt sql.NullString

		err := rows.Scan(
			&s.ID, &kind, &s.Subject, &s.TeacherName, &s.TeacherID, &s.Grade,
			&weekday, &timeOfDay, &startAtStr, &endAt, &s.DurationMin,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, kind, weekday, timeOfDay, startAtStr, endAt, createdAtStr, updatedAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields after scanning raw values.
// A recurring row whose time_of_day is missing or unparsable gets an
// invalid weekday so the expander fails it closed instead of inventing
// a midnight occurrence.
func (r *SQLiteSessionRepo) populateSession(
	s *domain.Session,
	kind string,
	weekday sql.NullInt64,
	timeOfDay sql.NullString,
	startAtStr string,
	endAt sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Session, error) {
	s.Kind = domain.SessionKind(kind)

	var parseErr error
	s.StartAt, parseErr = time.Parse(time.RFC3339, startAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing start_at: %w", parseErr)
	}
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	s.EndAt = parseNullableTime(endAt, time.RFC3339)

	if s.Kind == domain.KindRecurring {
		if weekday.Valid {
			s.Weekday = domain.Weekday(weekday.Int64)
		} else {
			s.Weekday = domain.Weekday(-1)
		}
		if timeOfDay.Valid {
			if c, err := domain.ParseClock(timeOfDay.String); err == nil {
				s.TimeOfDay = c
			} else {
				s.Weekday = domain.Weekday(-1)
			}
		} else {
			s.Weekday = domain.Weekday(-1)
		}
	}

	return s, nil
}
