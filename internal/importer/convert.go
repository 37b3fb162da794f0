package importer

import (
	"time"

	"jadval/internal/domain"
)

// Convert turns a validated schema into domain sessions. Dates are
// placed in the given location. Call Validate first; Convert assumes
// well-formed entries.
func Convert(schema *ImportSchema, loc *time.Location) []*domain.Session {
	sessions := make([]*domain.Session, 0, len(schema.Sessions))
	for _, entry := range schema.Sessions {
		s := &domain.Session{
			Kind:        domain.SessionKind(entry.Kind),
			Subject:     entry.Subject,
			TeacherName: entry.Teacher,
			TeacherID:   entry.TeacherID,
			Grade:       entry.Grade,
			DurationMin: entry.DurationMin,
		}

		if s.Kind == domain.KindSingle {
			s.StartAt, _ = time.ParseInLocation(dateTimeLayout, entry.At, loc)
		} else {
			s.Weekday = domain.ParseWeekday(entry.Weekday)
			s.TimeOfDay, _ = domain.ParseClock(entry.Time)
			s.StartAt, _ = time.ParseInLocation(dateLayout, entry.From, loc)
			if entry.Until != nil {
				end, _ := time.ParseInLocation(dateLayout, *entry.Until, loc)
				s.EndAt = &end
			}
		}

		sessions = append(sessions, s)
	}
	return sessions
}
