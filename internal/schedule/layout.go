package schedule

import "errors"

// ErrMixedStartTimes is returned when Layout is handed occurrences whose
// start times differ. That is a caller error, not a data-quality problem:
// the binner only ever produces same-time groups.
var ErrMixedStartTimes = errors.New("layout: occurrences in a time-group must share a start time")

// Placement assigns an occurrence a lane within its time-group so that
// time-coincident occurrences render side by side.
type Placement struct {
	Occurrence Occurrence
	Lane       int // position within the group, stable input order
	Lanes      int // group size; every member carries the same count
}

// Layout assigns lanes to one time-group. Lane indexes follow the group's
// input order (the binner's id-ordered sort), so identical inputs always
// produce identical placements.
//
// This is deliberately a greedy fixed-order assignment over exact-time
// collisions only: a 14:00–15:30 session and a 15:00–16:00 session do not
// share a group and therefore never collide. Partial-interval overlap
// detection is out of scope for the grid this feeds.
func Layout(group []Occurrence) ([]Placement, error) {
	if len(group) == 0 {
		return nil, nil
	}
	first := group[0].Start
	for _, o := range group[1:] {
		if o.Start != first {
			return nil, ErrMixedStartTimes
		}
	}

	placements := make([]Placement, len(group))
	for i, o := range group {
		placements[i] = Placement{
			Occurrence: o,
			Lane:       i,
			Lanes:      len(group),
		}
	}
	return placements, nil
}
