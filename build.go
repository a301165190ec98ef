package maptool

import (
	"context"

	"maptool/choke"
	"maptool/climb"
	"maptool/logging"
	"maptool/logging/construction"
	"maptool/overlord"
	"maptool/pathfind"
)

// builder holds the scratch state threaded through the three construction
// passes. It exists only for the lifetime of New.
type builder struct {
	m   *Map
	req NewMapRequest
	ctx context.Context
	pub logging.Publisher

	walkMap   []int
	flyMap    []int
	reaperMap []int

	chokeLines []choke.Line
}

func (b *builder) idx(x, y int) int { return b.m.index(x, y) }

// pass1 seeds walkability, pathability, height, the three pathing-grid
// bitmaps, and the outer-frame border marking.
func (b *builder) pass1() {
	req := b.req
	for y := 0; y < b.m.height; y++ {
		for x := 0; x < b.m.width; x++ {
			walkable := req.Pathing[y][x] > 0 || req.Placement[y][x] > 0
			pathable := x >= req.PlayableXStart && x <= req.PlayableXEnd &&
				y >= req.PlayableYStart && y <= req.PlayableYEnd

			idx := b.idx(x, y)
			b.m.points[idx] = MapPoint{
				Walkable: walkable,
				Pathable: pathable,
				Height:   req.HeightMap[y][x],
			}
			if walkable {
				b.walkMap[idx] = 1
				b.reaperMap[idx] = 1
			}
			if pathable {
				b.flyMap[idx] = 1
			}
		}
	}
	b.markOuterFrame()
}

// markOuterFrame unconditionally marks the grid's outer edge ring and the
// ring of cells immediately outside the playable rectangle as border,
// mirroring the source convention that the outer frame is always border
// regardless of walkability.
func (b *builder) markOuterFrame() {
	setBorder := func(x, y int) {
		if b.m.inBounds(x, y) {
			b.m.points[b.idx(x, y)].IsBorder = true
		}
	}

	for x := 0; x < b.m.width; x++ {
		setBorder(x, 0)
		setBorder(x, b.m.height-1)
	}
	for y := 0; y < b.m.height; y++ {
		setBorder(0, y)
		setBorder(b.m.width-1, y)
	}

	req := b.req
	for x := req.PlayableXStart - 1; x <= req.PlayableXEnd+1; x++ {
		setBorder(x, req.PlayableYStart-1)
		setBorder(x, req.PlayableYEnd+1)
	}
	for y := req.PlayableYStart - 1; y <= req.PlayableYEnd+1; y++ {
		setBorder(req.PlayableXStart-1, y)
		setBorder(req.PlayableXEnd+1, y)
	}
}

// pass2 classifies cliff/climb geometry and coarse overlord candidates over
// the strict interior of the playable rectangle.
func (b *builder) pass2() {
	req := b.req
	difference := b.m.cfg.Difference
	view := climbGridView{m: b.m}

	for y := req.PlayableYStart + 1; y < req.PlayableYEnd; y++ {
		for x := req.PlayableXStart + 1; x < req.PlayableXEnd; x++ {
			point := &b.m.points[b.idx(x, y)]

			if !point.Walkable {
				b.markOverlordCandidate(x, y, difference)
				b.markBorderClosure(x, y)
				continue
			}

			for _, d := range climb.Directions {
				result, ok := climb.Classify(view, x, y, d[0], d[1], difference)
				if !ok || !result.IsClimb {
					continue
				}
				b.m.points[b.idx(result.IntermediateX, result.IntermediateY)].Climbable = true
				origin := &b.m.points[b.idx(x, y)]
				origin.CliffType = climb.Combine(origin.CliffType, result.OriginCliff)
				landing := &b.m.points[b.idx(result.LandingX, result.LandingY)]
				landing.CliffType = climb.Combine(landing.CliffType, result.LandingCliff)
			}
		}
	}
}

// markOverlordCandidate tests the coarse overlord condition: the cell's
// height exceeds a *vertical* 4-neighbor's height by at least difference,
// and that neighbor's height is positive.
func (b *builder) markOverlordCandidate(x, y, difference int) {
	height := b.m.points[b.idx(x, y)].Height
	for _, dy := range [2]int{-1, 1} {
		ny := y + dy
		if !b.m.inBounds(x, ny) {
			continue
		}
		neighborHeight := b.m.points[b.idx(x, ny)].Height
		if neighborHeight > 0 && height-neighborHeight >= difference {
			b.m.points[b.idx(x, y)].OverlordSpot = true
			return
		}
	}
}

func (b *builder) markBorderClosure(x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.m.inBounds(nx, ny) && b.m.points[b.idx(nx, ny)].Walkable {
				b.m.points[b.idx(x, y)].IsBorder = true
				return
			}
		}
	}
}

// pass3 closes climbability under 4-neighbor propagation, runs the choke
// solver, prunes isolated cliff classifications, and finalizes overlord
// plateaus via flood fill.
func (b *builder) pass3() {
	req := b.req
	difference := b.m.cfg.Difference
	chokeMax := b.m.cfg.ChokeMax

	preClimb := make([]bool, len(b.m.points))
	for i, p := range b.m.points {
		preClimb[i] = p.Climbable
	}

	fourDirs := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	for y := req.PlayableYStart + 1; y < req.PlayableYEnd; y++ {
		for x := req.PlayableXStart + 1; x < req.PlayableXEnd; x++ {
			closed := preClimb[b.idx(x, y)]
			for _, d := range fourDirs {
				nx, ny := x+d[0], y+d[1]
				if b.m.inBounds(nx, ny) && preClimb[b.idx(nx, ny)] {
					closed = true
				}
			}
			b.m.points[b.idx(x, y)].Climbable = closed
			if closed {
				b.reaperMap[b.idx(x, y)] = 1
			}

			if b.m.points[b.idx(x, y)].IsBorder {
				lines := choke.DetectAt(chokeGridView{m: b.m}, x, y, chokeMax)
				if len(lines) > 0 {
					b.chokeLines = append(b.chokeLines, lines...)
					for _, line := range lines {
						for _, cell := range line.Cells() {
							b.m.points[b.idx(cell.X, cell.Y)].IsChoke = true
						}
					}
				}
			}
		}
	}

	b.pruneIsolatedCliffs(req)
	b.finalizeOverlordSpots(req, difference)
}

func (b *builder) pruneIsolatedCliffs(req NewMapRequest) {
	fourDirs := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for y := req.PlayableYStart + 1; y < req.PlayableYEnd; y++ {
		for x := req.PlayableXStart + 1; x < req.PlayableXEnd; x++ {
			point := &b.m.points[b.idx(x, y)]
			if point.CliffType == CliffNone {
				continue
			}
			matched := false
			for _, d := range fourDirs {
				nx, ny := x+d[0], y+d[1]
				if b.m.inBounds(nx, ny) && b.m.points[b.idx(nx, ny)].CliffType == point.CliffType {
					matched = true
					break
				}
			}
			if !matched {
				point.CliffType = CliffNone
			}
		}
	}
}

func (b *builder) finalizeOverlordSpots(req NewMapRequest, difference int) {
	flooded := make(map[[2]int]bool)
	view := overlordGridView{m: b.m}
	for y := req.PlayableYStart + 1; y < req.PlayableYEnd; y++ {
		for x := req.PlayableXStart + 1; x < req.PlayableXEnd; x++ {
			if !b.m.points[b.idx(x, y)].OverlordSpot || flooded[[2]int{x, y}] {
				continue
			}
			cells, cx, cy, ok := overlord.Run(view, x, y, difference)
			for _, c := range cells {
				flooded[[2]int{c.X, c.Y}] = true
			}
			flooded[[2]int{x, y}] = true
			if !ok {
				continue
			}
			spotCells := make([]Point, 0, len(cells))
			for _, c := range cells {
				spotCells = append(spotCells, Point{X: c.X, Y: c.Y})
			}
			b.m.overlordSpots = append(b.m.overlordSpots, OverlordSpot{
				CentroidX: cx,
				CentroidY: cy,
				Cells:     spotCells,
			})
			construction.OverlordFound(b.ctx, b.pub, len(b.m.overlordSpots)-1, len(cells), cx, cy)
		}
	}
}

// applyReaperOverrides forces the caller-declared extra reaper-jumpable
// cell pairs walkable in both directions.
func (b *builder) applyReaperOverrides() {
	for _, pair := range b.req.ReaperOverrides {
		a, c := pair[0], pair[1]
		if b.m.inBounds(a[0], a[1]) {
			b.reaperMap[b.idx(a[0], a[1])] = 1
		}
		if b.m.inBounds(c[0], c[1]) {
			b.reaperMap[b.idx(c[0], c[1])] = 1
		}
	}
}

// assemblePathingGrids builds the four PathFind grids. Colossus and reaper
// begin as independent copies of the same reaperMap source; per the
// pathing-grid-aliasing design note they must never share backing storage
// after construction.
func (b *builder) assemblePathingGrids() {
	b.m.ground = pathfind.NewGrid(b.m.width, b.m.height, b.walkMap)
	b.m.air = pathfind.NewGrid(b.m.width, b.m.height, b.flyMap)
	reaperSource := pathfind.NewGrid(b.m.width, b.m.height, b.reaperMap)
	b.m.colossus = reaperSource.Clone()
	b.m.reaper = reaperSource.Clone()

	construction.GridBuilt(b.ctx, b.pub, "ground", countNonZero(b.walkMap))
	construction.GridBuilt(b.ctx, b.pub, "air", countNonZero(b.flyMap))
	construction.GridBuilt(b.ctx, b.pub, "colossus", countNonZero(b.reaperMap))
	construction.GridBuilt(b.ctx, b.pub, "reaper", countNonZero(b.reaperMap))
}

func countNonZero(values []int) int {
	n := 0
	for _, v := range values {
		if v != 0 {
			n++
		}
	}
	return n
}

func (b *builder) groupChokes() {
	b.m.chokes = choke.Group(b.chokeLines)
	construction.ChokesGrouped(b.ctx, b.pub, len(b.chokeLines), len(b.m.chokes))
}
