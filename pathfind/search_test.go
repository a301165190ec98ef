package pathfind

import "testing"

func TestLowestInfluenceWalkFindsMinimum(t *testing.T) {
	grid := NewGrid(5, 5, allWalkable(5, 5, 1))
	grid.influence[grid.index(Point{X: 2, Y: 0})] = -5 // cheaper than the surrounding cost-1 cells

	cell, value, ok := grid.LowestInfluenceWalk(Point{X: 0, Y: 0}, 4)
	if !ok {
		t.Fatalf("expected a result")
	}
	if cell != (Point{X: 2, Y: 0}) {
		t.Fatalf("expected the cheapest cell (2,0), got %+v (value %d)", cell, value)
	}
}

func TestLowestInfluenceWalkUnwalkableCenter(t *testing.T) {
	weights := allWalkable(3, 3, 1)
	weights[0] = 0
	grid := NewGrid(3, 3, weights)

	if _, _, ok := grid.LowestInfluenceWalk(Point{X: 0, Y: 0}, 2); ok {
		t.Fatalf("expected no result when the center is impassable")
	}
}

func TestInlineLowestValueSearchesChebyshevSquare(t *testing.T) {
	grid := NewGrid(5, 5, allWalkable(5, 5, 3))
	grid.weight[grid.index(Point{X: 3, Y: 3})] = 1

	cell, value, ok := grid.InlineLowestValue(Point{X: 2, Y: 2}, 1)
	if !ok {
		t.Fatalf("expected a result")
	}
	if cell != (Point{X: 3, Y: 3}) || value != 1 {
		t.Fatalf("expected the cheaper cell (3,3) with value 1, got %+v value %d", cell, value)
	}
}

func TestFindLowInsideWalkCombinesWalkAndWeightedDistance(t *testing.T) {
	grid := NewGrid(7, 1, allWalkable(7, 1, 1))
	grid.influence[grid.index(Point{X: 4, Y: 0})] = 10

	cell, _, ok := grid.FindLowInsideWalk(Point{X: 0, Y: 0}, Point{X: 6, Y: 0}, 3)
	if !ok {
		t.Fatalf("expected a result")
	}
	if cell == (Point{X: 4, Y: 0}) {
		t.Fatalf("expected the high-influence cell (4,0) to lose out to a cheaper neighbor, got %+v", cell)
	}
}
