// Package maptool is a terrain analysis and pathfinding engine for
// real-time-strategy game maps: given raw walkability, placement, and
// height-map rasters it derives per-cell classifications, identifies
// chokepoints and overlord spots, assembles per-unit-class pathing grids,
// and exposes an A* and vision query surface over the result.
package maptool

import "maptool/climb"

// CliffType is re-exported from the climb package so callers never need to
// import it directly to read a MapPoint.
type CliffType = climb.CliffType

const (
	CliffNone = climb.CliffNone
	CliffLow  = climb.CliffLow
	CliffHigh = climb.CliffHigh
	CliffBoth = climb.CliffBoth
)

// MapPoint is the per-cell classification record produced by map
// construction. Everything but Climbable, CliffType, IsBorder, IsChoke, and
// OverlordSpot is fixed during Pass 1 and never mutated again.
type MapPoint struct {
	Walkable     bool
	Pathable     bool
	Height       int
	Climbable    bool
	CliffType    CliffType
	IsBorder     bool
	IsChoke      bool
	OverlordSpot bool
}

// OverlordSpot is a finalized overlord plateau: its centroid and the cells
// that compose it.
type OverlordSpot struct {
	CentroidX, CentroidY float64
	Cells                []Point
}

// Point addresses a single grid cell by integer column (X) and row (Y).
type Point struct {
	X, Y int
}
