// Package overlord identifies elevated plateaus invisible from low ground
// ("overlord spots"): maximal 4-connected components of uniform height whose
// perimeter drops by at least a configured threshold to lower terrain.
//
// The flood fill is an explicit-queue breadth-first traversal rather than
// the naive per-cell recursion a direct translation would produce, since a
// large flat plateau would otherwise blow the call stack.
package overlord

// Point addresses a single grid cell.
type Point struct {
	X, Y int
}

var fourNeighbors = [4][2]int{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

// GridView is the minimal read/write access the flood fill needs.
type GridView interface {
	InBounds(x, y int) bool
	Height(x, y int) int
	SetOverlordSpot(x, y int, value bool)
}

// flood performs one pass of the two-phase flood fill starting at (x,y),
// writing replacement to every same-height cell it visits. It returns the
// set of same-height cells visited and whether every branch of the
// traversal terminated validly (either at a same-height cell or a cell at
// least difference lower; a cell that is lower but not low enough, or
// higher, fails the pass).
func flood(grid GridView, x, y, difference int, replacement bool) (cells []Point, ok bool) {
	target := grid.Height(x, y)
	visited := make(map[Point]bool)
	success := true
	queue := []Point{{X: x, Y: y}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true

		h := grid.Height(cur.X, cur.Y)
		switch {
		case h == target:
			grid.SetOverlordSpot(cur.X, cur.Y, replacement)
			cells = append(cells, cur)
			for _, d := range fourNeighbors {
				n := Point{X: cur.X + d[0], Y: cur.Y + d[1]}
				if !grid.InBounds(n.X, n.Y) || visited[n] {
					continue
				}
				queue = append(queue, n)
			}
		case h <= target-difference:
			// A genuine cliff edge: this branch terminates successfully
			// without spreading further. Equality (a drop of exactly
			// difference) counts as valid so that a plateau ringed by
			// terrain exactly DIFFERENCE lower still floods successfully.
		default:
			// Too close to the plateau height to be a valid drop, and not
			// equal to it: this branch invalidates the whole plateau.
			success = false
		}
	}

	return cells, success
}

// Run executes the two-phase flood fill from (x,y): first with
// replacement=true; if that fails, the fill is re-run with replacement=false
// to unmark every cell the first pass (or Pass 2's coarse candidate marking)
// mistakenly flagged. ok reports the first pass's outcome; cells and the
// centroid are only meaningful when ok is true.
func Run(grid GridView, x, y, difference int) (cells []Point, centroidX, centroidY float64, ok bool) {
	cells, ok = flood(grid, x, y, difference, true)
	if !ok {
		flood(grid, x, y, difference, false)
		return nil, 0, 0, false
	}
	centroidX, centroidY = centroid(cells)
	return cells, centroidX, centroidY, true
}

func centroid(cells []Point) (float64, float64) {
	if len(cells) == 0 {
		return 0, 0
	}
	var sumX, sumY float64
	for _, c := range cells {
		sumX += float64(c.X)
		sumY += float64(c.Y)
	}
	n := float64(len(cells))
	return sumX / n, sumY / n
}
