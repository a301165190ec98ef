// Package vision raycasts a visibility and detection overlay from a set of
// vision sources, using github.com/norendren/go-fov's shadowcasting field
// of view for the actual ray tracing.
package vision

import (
	"github.com/norendren/go-fov/fov"
)

// Unit is a single vision source: a position, how far it sees, how far it
// can additionally detect (e.g. cloaked units), and whether detection is
// active at all.
type Unit struct {
	X, Y         int
	SightRadius  int
	DetectRadius int
	CanDetect    bool
}

const (
	bitVisible  = 1 << 0
	bitDetected = 1 << 1
)

// Map owns the W×H vision/detection bitfield overlay and the set of active
// vision sources used to (re)compute it.
type Map struct {
	width, height int
	heights       []int
	difference    int
	overlay       []int
	units         []Unit
}

// NewMap constructs an empty overlay over a W×H grid of terrain heights.
// difference is the engine-wide elevation threshold a ray cannot see past.
func NewMap(width, height int, heights []int, difference int) *Map {
	return &Map{
		width:      width,
		height:     height,
		heights:    heights,
		difference: difference,
		overlay:    make([]int, width*height),
	}
}

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

func (m *Map) index(x, y int) int {
	return y*m.width + x
}

func (m *Map) heightAt(x, y int) int {
	if !m.inBounds(x, y) {
		return 0
	}
	return m.heights[m.index(x, y)]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clear zeroes the overlay and drops every registered source.
func (m *Map) Clear() {
	for i := range m.overlay {
		m.overlay[i] = 0
	}
	m.units = nil
}

// AddUnit registers a vision source. A source outside the grid is clipped
// to the nearest in-bounds cell rather than rejected.
func (m *Map) AddUnit(unit Unit) {
	unit.X = clamp(unit.X, 0, m.width-1)
	unit.Y = clamp(unit.Y, 0, m.height-1)
	m.units = append(m.units, unit)
}

// heightAdapter presents the terrain grid to go-fov as a per-source opacity
// mask: a cell is opaque to this particular source when it rises at least
// difference above the source's own elevation.
type heightAdapter struct {
	m            *Map
	sourceHeight int
}

func (a heightAdapter) InBounds(x, y int) bool {
	return a.m.inBounds(x, y)
}

func (a heightAdapter) IsOpaque(x, y int) bool {
	return a.m.heightAt(x, y)-a.sourceHeight >= a.m.difference
}

// CalculateVisionMap clears and recomputes the overlay from every
// registered unit: every cell reachable by an unblocked ray within the
// unit's sight radius receives the visible bit, and cells within the
// detect radius of a detecting unit additionally receive the detected bit.
func (m *Map) CalculateVisionMap() {
	for i := range m.overlay {
		m.overlay[i] = 0
	}

	for _, unit := range m.units {
		adapter := heightAdapter{m: m, sourceHeight: m.heightAt(unit.X, unit.Y)}
		view := fov.New()
		view.Compute(adapter, unit.X, unit.Y, unit.SightRadius)

		minX := clamp(unit.X-unit.SightRadius, 0, m.width-1)
		maxX := clamp(unit.X+unit.SightRadius, 0, m.width-1)
		minY := clamp(unit.Y-unit.SightRadius, 0, m.height-1)
		maxY := clamp(unit.Y+unit.SightRadius, 0, m.height-1)

		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				if !view.IsVisible(x, y) {
					continue
				}
				idx := m.index(x, y)
				m.overlay[idx] |= bitVisible
				if unit.CanDetect && withinChebyshev(unit.X, unit.Y, x, y, unit.DetectRadius) {
					m.overlay[idx] |= bitDetected
				}
			}
		}
	}
}

func withinChebyshev(cx, cy, x, y, radius int) bool {
	dx := x - cx
	if dx < 0 {
		dx = -dx
	}
	dy := y - cy
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx <= radius
	}
	return dy <= radius
}

// Visible reports the vision bit at (x,y). Implements pathfind.VisionSnapshot.
func (m *Map) Visible(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.overlay[m.index(x, y)]&bitVisible != 0
}

// Detected reports the detection bit at (x,y). Implements
// pathfind.VisionSnapshot.
func (m *Map) Detected(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.overlay[m.index(x, y)]&bitDetected != 0
}

// SourceCount reports how many vision sources are currently registered.
func (m *Map) SourceCount() int {
	return len(m.units)
}

// Status returns the raw bitfield (bit 0 vision, bit 1 detection) at the
// rounded cell.
func (m *Map) Status(x, y int) int {
	if !m.inBounds(x, y) {
		return 0
	}
	return m.overlay[m.index(x, y)]
}
