package vision

import "testing"

func flatHeights(width, height, value int) []int {
	heights := make([]int, width*height)
	for i := range heights {
		heights[i] = value
	}
	return heights
}

func TestCalculateVisionMapMarksNearbyCellsVisible(t *testing.T) {
	m := NewMap(10, 10, flatHeights(10, 10, 0), 16)
	m.AddUnit(Unit{X: 5, Y: 5, SightRadius: 3})
	m.CalculateVisionMap()

	if !m.Visible(5, 5) {
		t.Fatalf("expected the source cell itself to be visible")
	}
	if !m.Visible(6, 5) {
		t.Fatalf("expected an adjacent unobstructed cell to be visible")
	}
	if m.Visible(9, 9) {
		t.Fatalf("expected a cell far outside the sight radius to be invisible")
	}
}

func TestCalculateVisionMapBlockedByCliff(t *testing.T) {
	heights := flatHeights(10, 1, 0)
	heights[5] = 20 // a tall ridge between source and target
	m := NewMap(10, 1, heights, 16)
	m.AddUnit(Unit{X: 0, Y: 0, SightRadius: 9})
	m.CalculateVisionMap()

	if m.Visible(8, 0) {
		t.Fatalf("expected cells behind the cliff to be blocked")
	}
}

func TestDetectionRequiresCanDetectAndRadius(t *testing.T) {
	m := NewMap(10, 10, flatHeights(10, 10, 0), 16)
	m.AddUnit(Unit{X: 5, Y: 5, SightRadius: 5, DetectRadius: 1, CanDetect: true})
	m.CalculateVisionMap()

	if !m.Detected(5, 5) {
		t.Fatalf("expected the source cell to be within its own detect radius")
	}
	if m.Detected(5, 8) {
		t.Fatalf("expected a cell outside detect radius (but inside sight radius) to not be detected")
	}
	if !m.Visible(5, 8) {
		t.Fatalf("expected that same cell to still be visible")
	}
}

func TestAddUnitClipsOutOfBoundsPosition(t *testing.T) {
	m := NewMap(5, 5, flatHeights(5, 5, 0), 16)
	m.AddUnit(Unit{X: -3, Y: 100, SightRadius: 2})
	if len(m.units) != 1 {
		t.Fatalf("expected the out-of-bounds unit to be clipped, not dropped")
	}
	if m.units[0].X < 0 || m.units[0].X >= m.width || m.units[0].Y < 0 || m.units[0].Y >= m.height {
		t.Fatalf("expected clipped unit position within bounds, got %+v", m.units[0])
	}
}

func TestClearResetsOverlayAndUnits(t *testing.T) {
	m := NewMap(5, 5, flatHeights(5, 5, 0), 16)
	m.AddUnit(Unit{X: 2, Y: 2, SightRadius: 2})
	m.CalculateVisionMap()
	if !m.Visible(2, 2) {
		t.Fatalf("expected source cell visible before Clear")
	}

	m.Clear()
	if m.Visible(2, 2) {
		t.Fatalf("expected Clear to zero the overlay")
	}
	if len(m.units) != 0 {
		t.Fatalf("expected Clear to drop registered units")
	}
}
