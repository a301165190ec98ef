package maptool

import (
	"context"

	"maptool/logging/query"
	"maptool/pathfind"
	"maptool/vision"
)

// gridFor returns the pathing grid backing the given unit class.
func (m *Map) gridFor(t MapType) *pathfind.Grid {
	switch t {
	case MapTypeGround:
		return m.ground
	case MapTypeAir:
		return m.air
	case MapTypeColossus:
		return m.colossus
	case MapTypeReaper:
		return m.reaper
	default:
		return nil
	}
}

// Grid exposes the raw pathing grid for a unit class, primarily for tests
// and debug tooling.
func (m *Map) Grid(t MapType) *pathfind.Grid {
	return m.gridFor(t)
}

// Reset restores every pathing grid's weights to the post-construction
// baseline.
func (m *Map) Reset() {
	m.ground.ResetVoid()
	m.air.ResetVoid()
	m.colossus.ResetVoid()
	m.reaper.ResetVoid()
}

// CreateBlock zeroes the footprint centered on center for the given unit
// class's grid.
func (m *Map) CreateBlock(t MapType, center pathfind.Point, size pathfind.Point) {
	m.CreateBlocks(t, []pathfind.Point{center}, size)
}

// CreateBlocks zeroes the footprint centered on each point for the given
// unit class's grid.
func (m *Map) CreateBlocks(t MapType, centers []pathfind.Point, size pathfind.Point) {
	grid := m.gridFor(t)
	if grid == nil {
		return
	}
	grid.CreateBlocks(centers, size)
	query.BlocksChanged(context.Background(), m.events, len(centers), 0)
}

// RemoveBlocks restores the baseline weights within the footprint centered
// on each point for the given unit class's grid.
func (m *Map) RemoveBlocks(t MapType, centers []pathfind.Point, size pathfind.Point) {
	grid := m.gridFor(t)
	if grid == nil {
		return
	}
	grid.RemoveBlocks(centers, size)
	query.BlocksChanged(context.Background(), m.events, 0, len(centers))
}

// GetBorders returns every border cell's coordinates.
func (m *Map) GetBorders() []Point {
	var borders []Point
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.points[m.index(x, y)].IsBorder {
				borders = append(borders, Point{X: x, Y: y})
			}
		}
	}
	return borders
}

// DrawClimbs renders a W×H label matrix: 0 impassable, 1 climbable, 2
// walkable, 3 Low cliff, 4 Both, 5 High, 6 overlord spot.
func (m *Map) DrawClimbs() [][]int {
	out := make([][]int, m.height)
	for y := 0; y < m.height; y++ {
		row := make([]int, m.width)
		for x := 0; x < m.width; x++ {
			point := m.points[m.index(x, y)]
			switch {
			case point.OverlordSpot:
				row[x] = DrawClimbOverlord
			case point.CliffType == CliffBoth:
				row[x] = DrawClimbBoth
			case point.CliffType == CliffHigh:
				row[x] = DrawClimbHigh
			case point.CliffType == CliffLow:
				row[x] = DrawClimbLow
			case point.Climbable:
				row[x] = DrawClimbClimbable
			case point.Walkable:
				row[x] = DrawClimbWalkable
			default:
				row[x] = DrawClimbImpassable
			}
		}
		out[y] = row
	}
	return out
}

// DrawChokes renders a W×H label matrix: 0 none, 100 interior choke, 175
// border+choke, 255 border-only.
func (m *Map) DrawChokes() [][]int {
	out := make([][]int, m.height)
	for y := 0; y < m.height; y++ {
		row := make([]int, m.width)
		for x := 0; x < m.width; x++ {
			point := m.points[m.index(x, y)]
			switch {
			case point.IsBorder && point.IsChoke:
				row[x] = DrawChokeBorderAndChoke
			case point.IsBorder:
				row[x] = DrawChokeBorderOnly
			case point.IsChoke:
				row[x] = DrawChokeInterior
			default:
				row[x] = DrawChokeNone
			}
		}
		out[y] = row
	}
	return out
}

// CurrentInfluence returns the influence overlay's value at the rounded
// cell for the given unit class.
func (m *Map) CurrentInfluence(t MapType, p pathfind.Point) int {
	grid := m.gridFor(t)
	if grid == nil {
		return 0
	}
	return grid.CurrentInfluence(p)
}

// LowestInfluenceWalk forwards to the given unit class's grid.
func (m *Map) LowestInfluenceWalk(t MapType, center pathfind.Point, maxWalkDistance int) (pathfind.Point, int, bool) {
	grid := m.gridFor(t)
	if grid == nil {
		return pathfind.Point{}, 0, false
	}
	return grid.LowestInfluenceWalk(center, maxWalkDistance)
}

// FindLowInsideWalk forwards to the given unit class's grid.
func (m *Map) FindLowInsideWalk(t MapType, start, target pathfind.Point, distance int) (pathfind.Point, float64, bool) {
	grid := m.gridFor(t)
	if grid == nil {
		return pathfind.Point{}, 0, false
	}
	return grid.FindLowInsideWalk(start, target, distance)
}

// FindPath forwards an A* query to the given unit class's grid.
func (m *Map) FindPath(t MapType, start, end pathfind.Point, opts pathfind.FindOptions) ([]pathfind.Point, float64) {
	grid := m.gridFor(t)
	if grid == nil {
		return nil, 0
	}
	path, cost := grid.FindPath(start, end, opts)
	if len(path) == 0 {
		query.PathNotFound(context.Background(), m.events, t.String(), start.X, start.Y, end.X, end.Y)
	} else {
		// Grid.FindPath does not count node expansions; the path length is
		// reported in their place.
		query.PathFound(context.Background(), m.events, t.String(), len(path), len(path))
	}
	return path, cost
}

// FindPathBasic forwards a default-options A* query to the given unit
// class's grid.
func (m *Map) FindPathBasic(t MapType, start, end pathfind.Point) ([]pathfind.Point, float64) {
	return m.FindPath(t, start, end, pathfind.FindOptions{Heuristic: pathfind.HeuristicManhattan})
}

// ClearVision resets the vision overlay and drops every registered source.
func (m *Map) ClearVision() {
	m.ensureVision()
	m.vision.Clear()
}

// AddVisionUnit registers a vision source.
func (m *Map) AddVisionUnit(unit vision.Unit) {
	m.ensureVision()
	m.vision.AddUnit(unit)
}

// CalculateVisionMap recomputes the vision overlay from every registered
// source.
func (m *Map) CalculateVisionMap() {
	m.ensureVision()
	m.vision.CalculateVisionMap()
	visible := 0
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.vision.Visible(x, y) {
				visible++
			}
		}
	}
	query.VisionComputed(context.Background(), m.events, m.vision.SourceCount(), visible)
}

// VisionStatus returns the vision/detection bitfield at the rounded cell.
func (m *Map) VisionStatus(p Point) int {
	m.ensureVision()
	return m.vision.Status(p.X, p.Y)
}

// AddInfluenceToVision projects the vision overlay onto the given unit
// class's pathing grid as additive influence: seenValue per visible cell,
// plus detectValue for cells also covered by detection.
func (m *Map) AddInfluenceToVision(t MapType, seenValue, detectValue int) {
	grid := m.gridFor(t)
	m.ensureVision()
	if grid == nil {
		return
	}
	grid.AddInfluenceToMapByVision(m.vision, seenValue, detectValue)
}

func (m *Map) ensureVision() {
	if m.vision != nil {
		return
	}
	heights := make([]int, m.width*m.height)
	for i, p := range m.points {
		heights[i] = p.Height
	}
	m.vision = vision.NewMap(m.width, m.height, heights, m.cfg.Difference)
}
