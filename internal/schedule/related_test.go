package schedule

import (
	"testing"

	"jadval/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offering(id string, weekday domain.Weekday, subject, grade, teacher string) domain.Session {
	s := recurring(id, weekday, domain.ClockTime{Hour: 10}, date(2026, 1, 1), nil)
	s.Subject = subject
	s.Grade = grade
	s.TeacherName = teacher
	return s
}

func TestRelatedTo_SiblingWeekdays(t *testing.T) {
	snapshot := []domain.Session{
		offering("mon", domain.Monday, "Math", "7", "N. Karimi"),
		offering("wed", domain.Wednesday, "Math", "7", "N. Karimi"),
		offering("sat", domain.Saturday, "Math", "7", "N. Karimi"),
		offering("other", domain.Sunday, "Physics", "7", "N. Karimi"),
	}

	related := RelatedTo(snapshot, snapshot[0]) // the Monday slot
	require.Len(t, related, 2)
	assert.Equal(t, "sat", related[0].ID, "sorted by Saturday-anchored weekday")
	assert.Equal(t, "wed", related[1].ID)
}

func TestRelatedTo_ExactStringEquality(t *testing.T) {
	snapshot := []domain.Session{
		offering("a", domain.Monday, "Math", "7", "N. Karimi"),
		offering("b", domain.Tuesday, "math", "7", "N. Karimi"), // different case
		offering("c", domain.Wednesday, "Math", "7 ", "N. Karimi"), // trailing space
	}

	related := RelatedTo(snapshot, snapshot[0])
	assert.Empty(t, related, "matching is exact, never normalized")
}

func TestRelatedTo_SameWeekdayExcluded(t *testing.T) {
	snapshot := []domain.Session{
		offering("a", domain.Monday, "Math", "7", "N. Karimi"),
		offering("b", domain.Monday, "Math", "7", "N. Karimi"),
	}

	related := RelatedTo(snapshot, snapshot[0])
	assert.Empty(t, related, "a second slot on the same weekday is not a sibling")
}

func TestRelatedTo_SingleHasNoSiblings(t *testing.T) {
	s := single("s1", date(2026, 2, 10))
	snapshot := []domain.Session{
		s,
		offering("a", domain.Monday, "Math", "7", "N. Karimi"),
	}

	assert.Empty(t, RelatedTo(snapshot, s))
}

func TestRelatedTo_Symmetry(t *testing.T) {
	snapshot := []domain.Session{
		offering("a", domain.Monday, "Math", "7", "N. Karimi"),
		offering("b", domain.Wednesday, "Math", "7", "N. Karimi"),
	}

	relA := RelatedTo(snapshot, snapshot[0])
	relB := RelatedTo(snapshot, snapshot[1])
	require.Len(t, relA, 1)
	require.Len(t, relB, 1)
	assert.Equal(t, "b", relA[0].ID)
	assert.Equal(t, "a", relB[0].ID)
}

func TestRelatedTo_SingleSiblingsIgnored(t *testing.T) {
	// A single-occurrence session with matching attributes is not a
	// weekly sibling.
	one := single("one", date(2026, 2, 10))
	one.Subject, one.Grade, one.TeacherName = "Math", "7", "N. Karimi"
	snapshot := []domain.Session{
		offering("a", domain.Monday, "Math", "7", "N. Karimi"),
		one,
	}

	assert.Empty(t, RelatedTo(snapshot, snapshot[0]))
}
