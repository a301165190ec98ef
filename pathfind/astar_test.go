package pathfind

import (
	"math"
	"testing"
)

func allWalkable(width, height, weight int) []int {
	weights := make([]int, width*height)
	for i := range weights {
		weights[i] = weight
	}
	return weights
}

func TestFindPathBasicEmpty5x5(t *testing.T) {
	grid := NewGrid(5, 5, allWalkable(5, 5, 1))

	path, cost := grid.FindPath(Point{X: 1, Y: 1}, Point{X: 3, Y: 3}, FindOptions{Heuristic: HeuristicOctile})
	if len(path) != 4 {
		t.Fatalf("expected a 3-step path (4 points incl. start), got %d points: %+v", len(path), path)
	}

	wantCost := 2*Sqrt2 + 1
	if math.Abs(cost-wantCost) > 1e-6 {
		t.Fatalf("expected cost %.6f, got %.6f", wantCost, cost)
	}
}

func TestFindPathUnreachableReturnsEmptyNotError(t *testing.T) {
	weights := allWalkable(3, 3, 1)
	weights[1*3+1] = 0 // isolate nothing, but block center to prove zero weight is impassable
	grid := NewGrid(3, 3, weights)

	path, cost := grid.FindPathBasic(Point{X: 1, Y: 1}, Point{X: 2, Y: 2})
	if path != nil || cost != 0 {
		t.Fatalf("expected (nil, 0) for unreachable query starting on blocked cell, got (%v, %v)", path, cost)
	}
}

func TestCreateBlockThenRemoveRestoresPath(t *testing.T) {
	grid := NewGrid(5, 5, allWalkable(5, 5, 1))

	basePath, baseCost := grid.FindPath(Point{X: 1, Y: 1}, Point{X: 3, Y: 3}, FindOptions{Heuristic: HeuristicOctile})

	grid.CreateBlock(Point{X: 2, Y: 2}, Point{X: 1, Y: 1})
	detourPath, detourCost := grid.FindPath(Point{X: 1, Y: 1}, Point{X: 3, Y: 3}, FindOptions{Heuristic: HeuristicOctile})
	if detourCost <= baseCost {
		t.Fatalf("expected blocked detour cost %.4f to exceed base cost %.4f", detourCost, baseCost)
	}

	grid.RemoveBlocks([]Point{{X: 2, Y: 2}}, Point{X: 1, Y: 1})
	restoredPath, restoredCost := grid.FindPath(Point{X: 1, Y: 1}, Point{X: 3, Y: 3}, FindOptions{Heuristic: HeuristicOctile})

	if restoredCost != baseCost {
		t.Fatalf("expected restored cost %.4f to equal base cost %.4f", restoredCost, baseCost)
	}
	if len(restoredPath) != len(basePath) {
		t.Fatalf("expected restored path length %d to equal base length %d", len(restoredPath), len(basePath))
	}
	_ = detourPath
}

func TestResetVoidReproducesFreshGrid(t *testing.T) {
	weights := allWalkable(5, 5, 1)
	grid := NewGrid(5, 5, weights)
	fresh := NewGrid(5, 5, weights)

	grid.CreateBlock(Point{X: 2, Y: 2}, Point{X: 1, Y: 1})
	grid.ResetVoid()

	gotPath, gotCost := grid.FindPath(Point{X: 1, Y: 1}, Point{X: 3, Y: 3}, FindOptions{Heuristic: HeuristicOctile})
	wantPath, wantCost := fresh.FindPath(Point{X: 1, Y: 1}, Point{X: 3, Y: 3}, FindOptions{Heuristic: HeuristicOctile})

	if gotCost != wantCost {
		t.Fatalf("expected reset grid cost %.4f to match fresh grid cost %.4f", gotCost, wantCost)
	}
	if len(gotPath) != len(wantPath) {
		t.Fatalf("expected reset grid path length %d to match fresh grid length %d", len(gotPath), len(wantPath))
	}
}

func TestInfluenceDivertsPathButIsOptOut(t *testing.T) {
	grid := NewGrid(5, 5, allWalkable(5, 5, 1))
	grid.influence[grid.index(Point{X: 2, Y: 2})] = 100

	withInfluence, _ := grid.FindPath(Point{X: 1, Y: 1}, Point{X: 3, Y: 3}, FindOptions{Heuristic: HeuristicOctile, Influence: true})
	for _, p := range withInfluence {
		if p == (Point{X: 2, Y: 2}) {
			t.Fatalf("expected influence-aware path to avoid (2,2), got %+v", withInfluence)
		}
	}

	withoutInfluence, _ := grid.FindPath(Point{X: 1, Y: 1}, Point{X: 3, Y: 3}, FindOptions{Heuristic: HeuristicOctile})
	found := false
	for _, p := range withoutInfluence {
		if p == (Point{X: 2, Y: 2}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected influence-ignoring path to retain the diagonal through (2,2), got %+v", withoutInfluence)
	}
}

func TestLargeFootprintAvoidsNarrowGaps(t *testing.T) {
	weights := allWalkable(5, 5, 1)
	// Wall off column x=2 except a single-cell gap at (2,2): a "large" unit
	// cannot squeeze through because its 3x3 footprint would overlap the
	// wall above and below the gap.
	for y := 0; y < 5; y++ {
		if y == 2 {
			continue
		}
		weights[y*5+2] = 0
	}
	grid := NewGrid(5, 5, weights)

	smallPath, _ := grid.FindPathBasic(Point{X: 0, Y: 2}, Point{X: 4, Y: 2})
	if len(smallPath) == 0 {
		t.Fatalf("expected a small unit to cross the single-cell gap")
	}

	largePath, _ := grid.FindPath(Point{X: 0, Y: 2}, Point{X: 4, Y: 2}, FindOptions{Heuristic: HeuristicOctile, Large: true})
	if len(largePath) != 0 {
		t.Fatalf("expected a large-footprint unit to find no path through a 1-cell gap, got %+v", largePath)
	}
}

func TestFindPathHeuristicsAgreeOnOptimalCostWhenUnobstructed(t *testing.T) {
	grid := NewGrid(8, 8, allWalkable(8, 8, 1))
	start := Point{X: 0, Y: 0}
	end := Point{X: 7, Y: 7}

	_, octileCost := grid.FindPath(start, end, FindOptions{Heuristic: HeuristicOctile})
	_, euclideanCost := grid.FindPath(start, end, FindOptions{Heuristic: HeuristicEuclidean})

	wantCost := 7 * Sqrt2
	if math.Abs(octileCost-wantCost) > 1e-6 {
		t.Fatalf("expected octile-found cost %.6f, got %.6f", wantCost, octileCost)
	}
	if math.Abs(euclideanCost-wantCost) > 1e-6 {
		t.Fatalf("expected euclidean-found cost %.6f, got %.6f", wantCost, euclideanCost)
	}
}

func TestDistanceFromTargetShortCircuits(t *testing.T) {
	grid := NewGrid(10, 1, allWalkable(10, 1, 1))
	cutoff := 1.5
	path, _ := grid.FindPath(Point{X: 0, Y: 0}, Point{X: 9, Y: 0}, FindOptions{
		Heuristic:          HeuristicOctile,
		DistanceFromTarget: &cutoff,
	})
	if len(path) == 0 {
		t.Fatalf("expected a path under the distance cutoff")
	}
	last := path[len(path)-1]
	if math.Hypot(float64(last.X-9), float64(last.Y-0)) > cutoff+1e-9 {
		t.Fatalf("expected search to stop within %.2f of target, stopped at %+v", cutoff, last)
	}
	if len(path) >= 10 {
		t.Fatalf("expected the cutoff to shorten the search, got full-length path %+v", path)
	}
}

func TestWindowConfinesExpansion(t *testing.T) {
	grid := NewGrid(10, 10, allWalkable(10, 10, 1))
	window := Rect{MinX: 0, MinY: 0, MaxX: 3, MaxY: 3}

	path, _ := grid.FindPath(Point{X: 0, Y: 0}, Point{X: 9, Y: 9}, FindOptions{Heuristic: HeuristicOctile, Window: &window})
	if len(path) != 0 {
		t.Fatalf("expected no path when the goal lies outside the search window, got %+v", path)
	}
}
