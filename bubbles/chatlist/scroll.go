package chatlist

// DefaultTolerance is how close, in layout units, the list has to be to
// its bottom edge to count as "at the bottom". It absorbs rounding and
// rendering jitter.
const DefaultTolerance = 50

// DefaultRowTolerance is the tolerance used by the terminal list, where
// geometry is measured in whole rows and there is no jitter to absorb.
const DefaultRowTolerance = 1

// Geometry is a snapshot of a scroll container.
type Geometry struct {
	ScrollHeight int // Height of the content (never less than ClientHeight)
	ClientHeight int // Visible height
	ScrollTop    int // Offset of the first visible unit
}

// AtBottom reports whether g is within tolerance of the bottom edge.
func AtBottom(g Geometry, tolerance int) bool {
	d := g.ScrollHeight - g.ClientHeight - g.ScrollTop
	if d < 0 {
		d = -d
	}
	return d < tolerance
}

// Tracker remembers whether the user has scrolled away from the bottom.
//
// The zero value uses DefaultTolerance and starts out at the bottom.
type Tracker struct {
	Tolerance int
	away      bool
}

// Track records a scroll event and returns true if the user is now
// scrolled away from the bottom.
func (t *Tracker) Track(g Geometry) bool {
	tol := t.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	t.away = !AtBottom(g, tol)
	return t.away
}

// Away reports the result of the last Track call.
func (t Tracker) Away() bool {
	return t.away
}
