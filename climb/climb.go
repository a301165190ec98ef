// Package climb classifies directed single-cell steps as reaper-class
// cliff jumps: whether a unit that can cross a one-cell impassable ridge
// could traverse from an origin cell to a landing cell two steps further in
// the same direction.
package climb

// CliffType orients a cell with respect to a cliff edge it participates in.
type CliffType int

const (
	CliffNone CliffType = iota
	CliffLow
	CliffHigh
	CliffBoth
)

// Combine folds an additional cliff classification into an existing one.
// The same type is idempotent; a different non-None type always yields
// CliffBoth, matching the source's "toward Both if already the opposite"
// rule regardless of which side arrives first.
func Combine(existing, addition CliffType) CliffType {
	if addition == CliffNone {
		return existing
	}
	if existing == CliffNone {
		return addition
	}
	if existing == addition {
		return existing
	}
	return CliffBoth
}

// GridView is the minimal read access the classifier needs from the cell
// grid being analyzed.
type GridView interface {
	InBounds(x, y int) bool
	Walkable(x, y int) bool
	Height(x, y int) int
}

// Result describes the outcome of classifying a directed step from an
// origin cell.
type Result struct {
	// IsClimb is true when the cliff-jump pattern holds: the destination is
	// impassable but a walkable landing cell exists two steps further on,
	// within the elevation tolerance.
	IsClimb bool
	// IntermediateX/Y is the impassable cell a reaper jumps over.
	IntermediateX, IntermediateY int
	// LandingX/Y is the walkable cell two steps from the origin.
	LandingX, LandingY int
	// OriginCliff and LandingCliff are the cliff classifications to fold
	// into the origin and landing cells respectively.
	OriginCliff, LandingCliff CliffType
}

// Classify tests the directed step from (x,y) in direction (dx,dy) against
// the cliff-jump pattern. difference is the elevation tolerance (the
// engine-wide DIFFERENCE constant). ok is false when (x,y) is not itself
// walkable or any of the three cells involved fall outside the grid.
func Classify(grid GridView, x, y, dx, dy, difference int) (result Result, ok bool) {
	if !grid.InBounds(x, y) || !grid.Walkable(x, y) {
		return Result{}, false
	}

	midX, midY := x+dx, y+dy
	landX, landY := x+2*dx, y+2*dy

	if !grid.InBounds(midX, midY) || !grid.InBounds(landX, landY) {
		return Result{}, false
	}
	if grid.Walkable(midX, midY) {
		// Destination is walkable: this is a normal step, not a climb.
		return Result{}, true
	}
	if !grid.Walkable(landX, landY) {
		return Result{}, true
	}

	originHeight := grid.Height(x, y)
	landingHeight := grid.Height(landX, landY)
	delta := originHeight - landingHeight
	if delta < 0 {
		delta = -delta
	}
	if delta >= difference {
		return Result{}, true
	}

	return Result{
		IsClimb:        true,
		IntermediateX:  midX,
		IntermediateY:  midY,
		LandingX:       landX,
		LandingY:       landY,
		OriginCliff:    CliffLow,
		LandingCliff:   CliffHigh,
	}, true
}

// Directions lists the four call-directions Pass 2 of the map builder
// invokes; together they cover all eight ordered origin/landing
// relationships because Classify is symmetric in its (origin, landing)
// pair.
var Directions = [4][2]int{
	{-1, -1},
	{1, -1},
	{1, 0},
	{0, 1},
}
