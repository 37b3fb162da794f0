package importer

import (
	"fmt"
	"time"

	"jadval/internal/domain"
)

const dateLayout = "2006-01-02"
const dateTimeLayout = "2006-01-02 15:04"

// Validate checks every entry before anything is written, so a bad file
// is rejected whole.
func Validate(schema *ImportSchema) error {
	if len(schema.Sessions) == 0 {
		return fmt.Errorf("import file has no sessions")
	}
	for i, entry := range schema.Sessions {
		if err := validateEntry(&entry); err != nil {
			return fmt.Errorf("session %d: %w", i+1, err)
		}
	}
	return nil
}

func validateEntry(e *SessionImport) error {
	if !domain.ValidSessionKinds[e.Kind] {
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	if e.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if e.Teacher == "" {
		return fmt.Errorf("teacher is required")
	}
	if e.DurationMin < 0 {
		return fmt.Errorf("duration_min cannot be negative")
	}

	if e.Kind == string(domain.KindSingle) {
		if _, err := time.Parse(dateTimeLayout, e.At); err != nil {
			return fmt.Errorf("at must be %q: %w", dateTimeLayout, err)
		}
		return nil
	}

	if !domain.ParseWeekday(e.Weekday).Valid() {
		return fmt.Errorf("unknown weekday %q", e.Weekday)
	}
	if _, err := domain.ParseClock(e.Time); err != nil {
		return err
	}
	if _, err := time.Parse(dateLayout, e.From); err != nil {
		return fmt.Errorf("from must be %q: %w", dateLayout, err)
	}
	if e.Until != nil {
		if _, err := time.Parse(dateLayout, *e.Until); err != nil {
			return fmt.Errorf("until must be %q: %w", dateLayout, err)
		}
	}
	return nil
}
