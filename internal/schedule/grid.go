package schedule

// Grid describes the geometry of a day column for a pixel-based renderer.
// The engine computes positions; it never draws.
type Grid struct {
	// StartHour is the first hour row of the grid (vertical origin).
	StartHour int
	// PixelsPerHour scales minutes-from-StartHour to vertical pixels.
	PixelsPerHour float64
	// ColumnWidth is the full width of a day column; lanes divide it.
	ColumnWidth float64
	// MinBlockHeight keeps very short sessions legible.
	MinBlockHeight float64
}

// DefaultGrid matches the dashboard's hour-row timetable: 8:00 origin,
// 60px hours, and a 55px floor so a 15-minute session still shows its
// subject line.
func DefaultGrid() Grid {
	return Grid{
		StartHour:      8,
		PixelsPerHour:  60,
		ColumnWidth:    140,
		MinBlockHeight: 55,
	}
}

// Box is the rendered rectangle of a placed occurrence, in the grid's
// pixel space. Top/Height come from time-of-day and duration; Left/Width
// from the lane assignment.
type Box struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Place computes the rectangle for a placement. durationMin is the
// occurrence's resolved duration (the caller substitutes the configured
// default for sessions without one).
func (g Grid) Place(p Placement, durationMin int) Box {
	start := p.Occurrence.Start
	minutes := float64((start.Hour-g.StartHour)*60 + start.Minute)

	height := float64(durationMin) * g.PixelsPerHour / 60
	if height < g.MinBlockHeight {
		height = g.MinBlockHeight
	}

	laneWidth := g.ColumnWidth / float64(p.Lanes)

	return Box{
		Top:    minutes * g.PixelsPerHour / 60,
		Left:   laneWidth * float64(p.Lane),
		Width:  laneWidth,
		Height: height,
	}
}
