package pathfind

import (
	"container/heap"
	"math"
)

type neighborOffset struct {
	dx, dy   int
	diagonal bool
}

var neighborOffsets = [...]neighborOffset{
	{dx: 0, dy: -1, diagonal: false},
	{dx: 1, dy: 0, diagonal: false},
	{dx: 0, dy: 1, diagonal: false},
	{dx: -1, dy: 0, diagonal: false},
	{dx: 1, dy: -1, diagonal: true},
	{dx: 1, dy: 1, diagonal: true},
	{dx: -1, dy: 1, diagonal: true},
	{dx: -1, dy: -1, diagonal: true},
}

// FindOptions controls a single FindPath query. The zero value matches
// FindPathBasic: no large-footprint constraint, no influence, Manhattan
// heuristic, no window, no early distance cutoff.
type FindOptions struct {
	Large              bool
	Influence          bool
	Heuristic          Heuristic
	Window             *Rect
	DistanceFromTarget *float64
}

type searchNode struct {
	point  Point
	g      float64
	f      float64
	h      float64
	index  int
	parent *searchNode
}

type nodeQueue []*searchNode

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].h < q[j].h
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x any) {
	item := x.(*searchNode)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

func heuristicCost(kind Heuristic, a, b Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	switch kind {
	case HeuristicEuclidean:
		return math.Hypot(dx, dy)
	case HeuristicOctile:
		if dx > dy {
			return dx + (Sqrt2-1)*dy
		}
		return dy + (Sqrt2-1)*dx
	default: // HeuristicManhattan
		return dx + dy
	}
}

// largeFootprintClear reports whether every cell in the 3x3 neighborhood of
// p has non-zero weight, the "large" unit clearance constraint.
func (g *Grid) largeFootprintClear(p Point) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			n := Point{X: p.X + dx, Y: p.Y + dy}
			if !g.inBounds(n) || g.weight[g.index(n)] == 0 {
				return false
			}
		}
	}
	return true
}

func (g *Grid) stepCost(dest Point, diagonal bool, useInfluence bool) float64 {
	cost := float64(g.weight[g.index(dest)])
	if useInfluence {
		cost += float64(g.influence[g.index(dest)])
	}
	if diagonal {
		cost *= Sqrt2
	}
	return cost
}

func (g *Grid) traversable(p Point, opts FindOptions) bool {
	if !g.inBounds(p) {
		return false
	}
	if opts.Window != nil && !opts.Window.Contains(p) {
		return false
	}
	if g.weight[g.index(p)] == 0 {
		return false
	}
	if opts.Large && !g.largeFootprintClear(p) {
		return false
	}
	return true
}

// reconstruct walks parent links from end back to the start, returning the
// path in start-to-end order (inclusive of both endpoints).
func reconstruct(end *searchNode) []Point {
	var path []Point
	for n := end; n != nil; n = n.parent {
		path = append(path, n.point)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindPath runs A* from start to end over the grid's current weights,
// honoring opts. It returns an empty path and zero cost when no path
// exists; this is the normal unreachable-destination outcome, not an error.
func (g *Grid) FindPath(start, end Point, opts FindOptions) ([]Point, float64) {
	if !g.traversable(start, opts) || !g.traversable(end, opts) {
		return nil, 0
	}

	open := &nodeQueue{}
	heap.Init(open)
	startNode := &searchNode{point: start, g: 0, h: heuristicCost(opts.Heuristic, start, end)}
	startNode.f = startNode.h
	heap.Push(open, startNode)

	best := make(map[Point]float64, g.width*g.height/4+1)
	best[start] = 0
	closed := make(map[Point]bool, g.width*g.height/4+1)

	var distanceTarget float64
	checkDistance := opts.DistanceFromTarget != nil
	if checkDistance {
		distanceTarget = *opts.DistanceFromTarget
	}

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		if closed[current.point] {
			continue
		}
		closed[current.point] = true

		if current.point == end {
			return reconstruct(current), current.g
		}
		if checkDistance {
			if dist := math.Hypot(float64(current.point.X-end.X), float64(current.point.Y-end.Y)); dist <= distanceTarget {
				return reconstruct(current), current.g
			}
		}

		for _, off := range neighborOffsets {
			next := Point{X: current.point.X + off.dx, Y: current.point.Y + off.dy}
			if !g.traversable(next, opts) {
				continue
			}
			if off.diagonal && !g.canCutCorner(current.point, off, opts) {
				continue
			}
			if closed[next] {
				continue
			}
			tentative := current.g + g.stepCost(next, off.diagonal, opts.Influence)
			if prev, ok := best[next]; ok && tentative >= prev {
				continue
			}
			best[next] = tentative
			h := heuristicCost(opts.Heuristic, next, end)
			heap.Push(open, &searchNode{
				point:  next,
				g:      tentative,
				f:      tentative + h,
				h:      h,
				parent: current,
			})
		}
	}
	return nil, 0
}

// canCutCorner blocks diagonal movement when either flanking orthogonal
// cell is impassable, preventing paths from squeezing through a blocked
// corner.
func (g *Grid) canCutCorner(current Point, off neighborOffset, opts FindOptions) bool {
	horiz := Point{X: current.X + off.dx, Y: current.Y}
	vert := Point{X: current.X, Y: current.Y + off.dy}
	return g.traversable(horiz, opts) && g.traversable(vert, opts)
}

// FindPathBasic is FindPath with large=false, influence=false, no window,
// no distance cutoff, using the default Manhattan heuristic.
func (g *Grid) FindPathBasic(start, end Point) ([]Point, float64) {
	return g.FindPath(start, end, FindOptions{Heuristic: HeuristicManhattan})
}
