package maptool

import (
	"context"
	"fmt"

	"maptool/choke"
	"maptool/climb"
	"maptool/config"
	"maptool/logging"
	"maptool/logging/construction"
	"maptool/overlord"
	"maptool/pathfind"
	"maptool/vision"
)

// Map is the immutable-topology, queryable result of the three-pass
// construction: per-cell classifications, identified chokes and overlord
// spots, and the four per-unit-class pathing grids. The pathing grids and
// the vision overlay are mutable; the points array is read-only once
// construction finishes.
type Map struct {
	width, height int
	points        []MapPoint

	chokes        []choke.Choke
	overlordSpots []OverlordSpot

	ground   *pathfind.Grid
	air      *pathfind.Grid
	colossus *pathfind.Grid
	reaper   *pathfind.Grid

	vision *vision.Map

	cfg     config.Analyzer
	events  logging.Publisher
}

// Width reports the grid's column count.
func (m *Map) Width() int { return m.width }

// Height reports the grid's row count.
func (m *Map) Height() int { return m.height }

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

func (m *Map) index(x, y int) int {
	return y*m.width + x
}

// Point returns the classification record at (x,y). Out-of-bounds requests
// return the zero MapPoint.
func (m *Map) Point(x, y int) MapPoint {
	if !m.inBounds(x, y) {
		return MapPoint{}
	}
	return m.points[m.index(x, y)]
}

// Chokes returns the detected choke regions.
func (m *Map) Chokes() []choke.Choke {
	return append([]choke.Choke(nil), m.chokes...)
}

// OverlordSpots returns the finalized overlord plateau centroids.
func (m *Map) OverlordSpots() []OverlordSpot {
	return append([]OverlordSpot(nil), m.overlordSpots...)
}

// New validates req, builds the three-pass classification, and assembles
// the four pathing grids and the choke/overlord derived structures.
// Dimension mismatches and a playable rectangle touching the outer frame
// are reported as errors rather than the source engine's process abort,
// consistent with Go's error-return idiom for contract violations.
func New(req NewMapRequest, cfg config.Analyzer, pub logging.Publisher) (*Map, error) {
	if pub == nil {
		pub = logging.NopPublisher{}
	}
	ctx := context.Background()

	height := len(req.Pathing)
	if height == 0 {
		return nil, fmt.Errorf("maptool: pathing grid has zero rows")
	}
	width := len(req.Pathing[0])
	if width == 0 {
		return nil, fmt.Errorf("maptool: pathing grid has zero columns")
	}
	if err := validateShape(req, width, height); err != nil {
		construction.MapBuildFailed(ctx, pub, err)
		return nil, err
	}
	if req.PlayableXStart <= 0 || req.PlayableXEnd >= width-1 || req.PlayableXStart > req.PlayableXEnd {
		err := fmt.Errorf("maptool: playable x-range [%d,%d] must sit strictly inside [0,%d)", req.PlayableXStart, req.PlayableXEnd, width)
		construction.MapBuildFailed(ctx, pub, err)
		return nil, err
	}
	if req.PlayableYStart <= 0 || req.PlayableYEnd >= height-1 || req.PlayableYStart > req.PlayableYEnd {
		err := fmt.Errorf("maptool: playable y-range [%d,%d] must sit strictly inside [0,%d)", req.PlayableYStart, req.PlayableYEnd, height)
		construction.MapBuildFailed(ctx, pub, err)
		return nil, err
	}

	cfg = cfg.normalized()

	m := &Map{
		width:  width,
		height: height,
		points: make([]MapPoint, width*height),
		cfg:    cfg,
		events: pub,
	}

	b := &builder{
		m:         m,
		req:       req,
		ctx:       ctx,
		pub:       pub,
		walkMap:   make([]int, width*height),
		flyMap:    make([]int, width*height),
		reaperMap: make([]int, width*height),
	}

	// Passes 2 and 3 iterate only the strict interior of the playable rectangle.
	interior := max(req.PlayableXEnd-req.PlayableXStart-1, 0) * max(req.PlayableYEnd-req.PlayableYStart-1, 0)

	b.pass1()
	construction.PassCompleted(ctx, pub, 1, width*height)
	b.pass2()
	construction.PassCompleted(ctx, pub, 2, interior)
	b.pass3()
	construction.PassCompleted(ctx, pub, 3, interior)

	b.applyReaperOverrides()
	b.assemblePathingGrids()
	b.groupChokes()

	return m, nil
}

func validateShape(req NewMapRequest, width, height int) error {
	check := func(name string, grid [][]int) error {
		if len(grid) != height {
			return fmt.Errorf("maptool: %s has %d rows, want %d", name, len(grid), height)
		}
		for y, row := range grid {
			if len(row) != width {
				return fmt.Errorf("maptool: %s row %d has %d columns, want %d", name, y, len(row), width)
			}
		}
		return nil
	}
	if err := check("pathing", req.Pathing); err != nil {
		return err
	}
	if err := check("placement", req.Placement); err != nil {
		return err
	}
	if err := check("heightMap", req.HeightMap); err != nil {
		return err
	}
	return nil
}

// climbGridView adapts the in-progress Map to climb.GridView.
type climbGridView struct{ m *Map }

func (v climbGridView) InBounds(x, y int) bool { return v.m.inBounds(x, y) }
func (v climbGridView) Walkable(x, y int) bool { return v.m.points[v.m.index(x, y)].Walkable }
func (v climbGridView) Height(x, y int) int    { return v.m.points[v.m.index(x, y)].Height }

// chokeGridView adapts the in-progress Map to choke.GridView.
type chokeGridView struct{ m *Map }

func (v chokeGridView) InBounds(x, y int) bool { return v.m.inBounds(x, y) }
func (v chokeGridView) Walkable(x, y int) bool { return v.m.points[v.m.index(x, y)].Walkable }
func (v chokeGridView) IsBorder(x, y int) bool { return v.m.points[v.m.index(x, y)].IsBorder }

// overlordGridView adapts the in-progress Map to overlord.GridView.
type overlordGridView struct{ m *Map }

func (v overlordGridView) InBounds(x, y int) bool { return v.m.inBounds(x, y) }
func (v overlordGridView) Height(x, y int) int    { return v.m.points[v.m.index(x, y)].Height }
func (v overlordGridView) SetOverlordSpot(x, y int, value bool) {
	v.m.points[v.m.index(x, y)].OverlordSpot = value
}

var _ climb.GridView = climbGridView{}
var _ choke.GridView = chokeGridView{}
var _ overlord.GridView = overlordGridView{}
