package schedule

import (
	"sort"

	"jadval/internal/domain"
)

// RelatedTo finds the sibling weekday slots of a recurring session: other
// recurring sessions teaching the same subject to the same grade by the
// same teacher, on a different weekday. The result is sorted ascending by
// the canonical Saturday-anchored weekday.
//
// Single sessions have no siblings; the result is empty, never an error.
func RelatedTo(sessions []domain.Session, s domain.Session) []domain.Session {
	if s.Kind != domain.KindRecurring {
		return nil
	}

	var related []domain.Session
	for i := range sessions {
		other := &sessions[i]
		if other.ID == s.ID || other.Kind != domain.KindRecurring {
			continue
		}
		if other.Weekday == s.Weekday {
			continue
		}
		if other.SameOffering(&s) {
			related = append(related, *other)
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		if related[i].Weekday != related[j].Weekday {
			return related[i].Weekday < related[j].Weekday
		}
		return related[i].ID < related[j].ID
	})
	return related
}
