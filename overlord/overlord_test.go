package overlord

import "testing"

type fakeGrid struct {
	width, height int
	heights       map[Point]int
	overlord      map[Point]bool
}

func newFakeGrid(width, height, background int) *fakeGrid {
	g := &fakeGrid{width: width, height: height, heights: map[Point]int{}, overlord: map[Point]bool{}}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.heights[Point{X: x, Y: y}] = background
		}
	}
	return g
}

func (g *fakeGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *fakeGrid) Height(x, y int) int {
	return g.heights[Point{X: x, Y: y}]
}

func (g *fakeGrid) SetOverlordSpot(x, y int, value bool) {
	g.overlord[Point{X: x, Y: y}] = value
}

// plateauGrid builds a 20x20 grid of background height 4 with a flat 4x4
// plateau of height 20 (difference 16 away) centered in the grid.
func plateauGrid() *fakeGrid {
	g := newFakeGrid(20, 20, 4)
	for y := 8; y < 12; y++ {
		for x := 8; x < 12; x++ {
			g.heights[Point{X: x, Y: y}] = 20
		}
	}
	return g
}

func TestRunFindsPlateauCentroid(t *testing.T) {
	grid := plateauGrid()

	cells, cx, cy, ok := Run(grid, 8, 8, 16)
	if !ok {
		t.Fatalf("expected the flat plateau to flood successfully")
	}
	if len(cells) != 16 {
		t.Fatalf("expected 16 plateau cells, got %d", len(cells))
	}

	wantCX, wantCY := 9.5, 9.5
	if cx != wantCX || cy != wantCY {
		t.Fatalf("expected centroid (%.1f,%.1f), got (%.1f,%.1f)", wantCX, wantCY, cx, cy)
	}

	for _, c := range cells {
		if !grid.overlord[c] {
			t.Fatalf("expected cell %+v to be marked as an overlord spot", c)
		}
	}
}

func TestRunFailsAndClearsWhenPerimeterTooClose(t *testing.T) {
	grid := newFakeGrid(10, 10, 4)
	// Plateau at height 20 but with an immediate neighbor at height 10:
	// a drop of only 10, less than the required difference of 16.
	for y := 4; y < 6; y++ {
		for x := 4; x < 6; x++ {
			grid.heights[Point{X: x, Y: y}] = 20
		}
	}
	grid.heights[Point{X: 6, Y: 4}] = 10

	cells, _, _, ok := Run(grid, 4, 4, 16)
	if ok {
		t.Fatalf("expected flood to fail when perimeter drop is insufficient")
	}
	if cells != nil {
		t.Fatalf("expected no cells returned on failure, got %+v", cells)
	}
	for x := 4; x < 6; x++ {
		for y := 4; y < 6; y++ {
			if grid.overlord[Point{X: x, Y: y}] {
				t.Fatalf("expected cell (%d,%d) overlord flag cleared after failed flood", x, y)
			}
		}
	}
}
