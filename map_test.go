package maptool

import (
	"testing"

	"maptool/config"
	"maptool/logging"
	"maptool/pathfind"
	"maptool/vision"
)

// fullGrid returns a height x width raster filled with value.
func fullGrid(width, height, value int) [][]int {
	grid := make([][]int, height)
	for y := range grid {
		row := make([]int, width)
		for x := range row {
			row[x] = value
		}
		grid[y] = row
	}
	return grid
}

func baseRequest(width, height int) NewMapRequest {
	return NewMapRequest{
		Pathing:        fullGrid(width, height, 1),
		Placement:      fullGrid(width, height, 1),
		HeightMap:      fullGrid(width, height, 0),
		PlayableXStart: 1,
		PlayableYStart: 1,
		PlayableXEnd:   width - 2,
		PlayableYEnd:   height - 2,
	}
}

func TestNewRejectsMismatchedRowLengths(t *testing.T) {
	req := baseRequest(9, 8)
	req.Placement = fullGrid(9, 7, 1) // wrong row count
	if _, err := New(req, config.Default(), nil); err == nil {
		t.Fatal("want error for mismatched placement shape, got nil")
	}
}

func TestNewRejectsPlayableRectTouchingFrame(t *testing.T) {
	req := baseRequest(9, 8)
	req.PlayableXStart = 0
	if _, err := New(req, config.Default(), nil); err == nil {
		t.Fatal("want error for playable rect touching the outer frame, got nil")
	}
}

func TestGetBordersIncludesOuterFrame(t *testing.T) {
	req := baseRequest(9, 8)
	m, err := New(req, config.Default(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	borders := m.GetBorders()
	want := map[Point]bool{{X: 0, Y: 0}: true, {X: 8, Y: 7}: true}
	got := make(map[Point]bool, len(borders))
	for _, p := range borders {
		got[p] = true
	}
	for p := range want {
		if !got[p] {
			t.Errorf("border set missing corner %v", p)
		}
	}
}

func TestDrawClimbsAndDrawChokesAreFullSized(t *testing.T) {
	req := baseRequest(9, 8)
	m, err := New(req, config.Default(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	climbs := m.DrawClimbs()
	if len(climbs) != 8 || len(climbs[0]) != 9 {
		t.Fatalf("DrawClimbs shape = %dx%d, want 8x9", len(climbs), len(climbs[0]))
	}
	chokes := m.DrawChokes()
	if len(chokes) != 8 || len(chokes[0]) != 9 {
		t.Fatalf("DrawChokes shape = %dx%d, want 8x9", len(chokes), len(chokes[0]))
	}
}

func TestResetRestoresBlockedGroundCell(t *testing.T) {
	req := baseRequest(9, 8)
	m, err := New(req, config.Default(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	center := pathfind.Point{X: 4, Y: 4}
	m.CreateBlock(MapTypeGround, center, pathfind.Point{X: 1, Y: 1})
	if m.Grid(MapTypeGround).Walkable(center) {
		t.Fatal("expected cell to be blocked")
	}
	m.Reset()
	if !m.Grid(MapTypeGround).Walkable(center) {
		t.Fatal("expected Reset to restore walkability")
	}
}

func TestVisionRoundTripMarksSourceCellVisible(t *testing.T) {
	req := baseRequest(9, 8)
	m, err := New(req, config.Default(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.AddVisionUnit(vision.Unit{X: 4, Y: 4, SightRadius: 3})
	m.CalculateVisionMap()
	if m.VisionStatus(Point{X: 4, Y: 4})&1 == 0 {
		t.Fatal("expected source cell to be visible")
	}
	m.ClearVision()
	if m.VisionStatus(Point{X: 4, Y: 4}) != 0 {
		t.Fatal("expected ClearVision to drop the overlay")
	}
}

// reaperRidgeRequest builds a 9x8 map whose column 4 is impassable in every
// row, isolating ground movement across the column. Pass 2 classifies the
// column as a reaper-class cliff jump, so the reaper grid keeps a jump path
// across its interior rows.
func reaperRidgeRequest() NewMapRequest {
	const width, height = 9, 8
	req := baseRequest(width, height)
	for y := 0; y < height; y++ {
		req.Pathing[y][4] = 0
		req.Placement[y][4] = 0
	}
	return req
}

func TestGroundCannotCrossRidgeButReaperJumpsIt(t *testing.T) {
	req := reaperRidgeRequest()
	m, err := New(req, config.Default(), logging.NopPublisher{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	start := pathfind.Point{X: 2, Y: 3}
	end := pathfind.Point{X: 6, Y: 3}

	groundPath, _ := m.FindPathBasic(MapTypeGround, start, end)
	if len(groundPath) != 0 {
		t.Fatalf("ground path = %v, want no path across the ridge", groundPath)
	}

	reaperPath, _ := m.FindPathBasic(MapTypeReaper, start, end)
	if len(reaperPath) == 0 {
		t.Fatal("reaper expected to jump the ridge, got no path")
	}

	ridge := m.Point(4, 3)
	if !ridge.Climbable {
		t.Fatal("expected the ridge cell at the jump row to be marked climbable")
	}

	origin := m.Point(3, 3)
	landing := m.Point(5, 3)
	if origin.CliffType == CliffNone {
		t.Fatal("expected the jump's origin cell to carry a cliff classification")
	}
	if landing.CliffType == CliffNone {
		t.Fatal("expected the jump's landing cell to carry a cliff classification")
	}

	blockedRidge := m.Point(4, 1)
	if blockedRidge.Climbable {
		t.Fatal("expected the ridge cell outside pass 2's interior range to stay unclassified")
	}
}
