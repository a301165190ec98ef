package pathfind

import (
	"container/heap"
	"math"
	"sort"
)

// LowestInfluenceWalk performs a breadth-first walk outward from center
// along walkable cells, up to maxWalkDistance steps, and returns the cell
// with the minimum total (base weight + influence), ties broken by the
// smaller walking distance. ok is false when center itself is not walkable.
func (g *Grid) LowestInfluenceWalk(center Point, maxWalkDistance int) (cell Point, value int, ok bool) {
	if !g.Walkable(center) {
		return Point{}, 0, false
	}

	type frontierNode struct {
		point Point
		dist  int
	}

	visited := map[Point]bool{center: true}
	queue := []frontierNode{{point: center, dist: 0}}

	bestValue := g.Weight(center) + g.CurrentInfluence(center)
	bestCell := center
	bestDist := 0
	found := true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		total := g.Weight(cur.point) + g.CurrentInfluence(cur.point)
		if !found || total < bestValue || (total == bestValue && cur.dist < bestDist) {
			bestValue = total
			bestCell = cur.point
			bestDist = cur.dist
			found = true
		}

		if cur.dist >= maxWalkDistance {
			continue
		}
		for _, off := range neighborOffsets {
			next := Point{X: cur.point.X + off.dx, Y: cur.point.Y + off.dy}
			if visited[next] || !g.Walkable(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, frontierNode{point: next, dist: cur.dist + 1})
		}
	}

	return bestCell, bestValue, found
}

// InlineLowestValue searches the Chebyshev-radius square around center
// (ignoring walkability of intermediate cells) and returns the walkable
// cell with the minimum total (base weight + influence).
func (g *Grid) InlineLowestValue(center Point, radius int) (cell Point, value int, ok bool) {
	found := false
	bestValue := math.MaxInt64
	bestCell := Point{}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := Point{X: center.X + dx, Y: center.Y + dy}
			if !g.Walkable(p) {
				continue
			}
			total := g.Weight(p) + g.CurrentInfluence(p)
			if !found || total < bestValue {
				found = true
				bestValue = total
				bestCell = p
			}
		}
	}

	return bestCell, bestValue, found
}

type dijkstraNode struct {
	point Point
	cost  float64
	index int
}

type dijkstraQueue []*dijkstraNode

func (q dijkstraQueue) Len() int            { return len(q) }
func (q dijkstraQueue) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q dijkstraQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *dijkstraQueue) Push(x any) {
	item := x.(*dijkstraNode)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *dijkstraQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// FindLowInsideWalk looks among the cells within distance walk-steps of
// target that are also reachable from start, and returns the one minimizing
// (weighted distance from start, ignoring influence) + (influence at the
// cell).
func (g *Grid) FindLowInsideWalk(start, target Point, distance int) (cell Point, value float64, ok bool) {
	if !g.Walkable(start) || !g.Walkable(target) {
		return Point{}, 0, false
	}

	candidates := map[Point]bool{}
	type frontierNode struct {
		point Point
		dist  int
	}
	visited := map[Point]bool{target: true}
	queue := []frontierNode{{point: target, dist: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		candidates[cur.point] = true
		if cur.dist >= distance {
			continue
		}
		for _, off := range neighborOffsets {
			next := Point{X: cur.point.X + off.dx, Y: cur.point.Y + off.dy}
			if visited[next] || !g.Walkable(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, frontierNode{point: next, dist: cur.dist + 1})
		}
	}

	dist := map[Point]float64{start: 0}
	open := &dijkstraQueue{}
	heap.Init(open)
	heap.Push(open, &dijkstraNode{point: start, cost: 0})
	visitedDijkstra := map[Point]bool{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*dijkstraNode)
		if visitedDijkstra[cur.point] {
			continue
		}
		visitedDijkstra[cur.point] = true

		for _, off := range neighborOffsets {
			next := Point{X: cur.point.X + off.dx, Y: cur.point.Y + off.dy}
			if !g.Walkable(next) || visitedDijkstra[next] {
				continue
			}
			step := float64(g.Weight(next))
			if off.diagonal {
				step *= Sqrt2
			}
			tentative := cur.cost + step
			if prev, seen := dist[next]; !seen || tentative < prev {
				dist[next] = tentative
				heap.Push(open, &dijkstraNode{point: next, cost: tentative})
			}
		}
	}

	ordered := make([]Point, 0, len(candidates))
	for candidate := range candidates {
		ordered = append(ordered, candidate)
	}
	// Deterministic tie-break: smallest X, then smallest Y, matching the
	// invariant-5-style reproducibility the scan needs across runs.
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].X != ordered[j].X {
			return ordered[i].X < ordered[j].X
		}
		return ordered[i].Y < ordered[j].Y
	})

	found := false
	bestValue := math.MaxFloat64
	bestCell := Point{}
	for _, candidate := range ordered {
		walkedDist, reachable := dist[candidate]
		if !reachable {
			continue
		}
		total := walkedDist + float64(g.CurrentInfluence(candidate))
		if !found || total < bestValue {
			found = true
			bestValue = total
			bestCell = candidate
		}
	}

	return bestCell, bestValue, found
}
