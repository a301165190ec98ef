// Package choke detects narrow walkable passages between border cells and
// groups the resulting line segments into choke regions, using a
// cell-bucket spatial index in the style of the teacher's effect spatial
// index to avoid an O(n^2) clustering pass.
package choke

// Point addresses a single grid cell.
type Point struct {
	X, Y int
}

// Line is a detected choke line: two border cells facing each other across
// a narrow walkable passage.
type Line struct {
	A, B Point
}

// Span is the number of walkable cells strictly between the two endpoints —
// the passage's narrowness. A pair of border cells with a single walkable
// cell between them has Span 1; directly adjacent endpoints have Span 0.
func (l Line) Span() int {
	dx := l.B.X - l.A.X
	if dx < 0 {
		dx = -dx
	}
	dy := l.B.Y - l.A.Y
	if dy < 0 {
		dy = -dy
	}
	steps := dx
	if dy > steps {
		steps = dy
	}
	if steps <= 0 {
		return 0
	}
	return steps - 1
}

// Cells returns the walkable cells strictly between the two endpoints, in
// order from A to B.
func (l Line) Cells() []Point {
	span := l.Span()
	if span <= 0 {
		return nil
	}
	steps := span + 1
	dx := l.B.X - l.A.X
	dy := l.B.Y - l.A.Y
	stepX := float64(dx) / float64(steps)
	stepY := float64(dy) / float64(steps)
	cells := make([]Point, 0, span)
	for i := 1; i <= span; i++ {
		cells = append(cells, Point{
			X: l.A.X + int(float64(i)*stepX),
			Y: l.A.Y + int(float64(i)*stepY),
		})
	}
	return cells
}

// GridView is the minimal read access the solver needs from the cell grid
// being analyzed.
type GridView interface {
	InBounds(x, y int) bool
	Walkable(x, y int) bool
	IsBorder(x, y int) bool
}

var rayDirections = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// openingVector approximates the direction a border cell "faces" into open
// (walkable) space, as the sum of unit offsets toward its walkable
// 8-neighbors.
func openingVector(grid GridView, x, y int) (float64, float64) {
	var vx, vy float64
	for _, d := range rayDirections {
		nx, ny := x+d[0], y+d[1]
		if grid.InBounds(nx, ny) && grid.Walkable(nx, ny) {
			vx += float64(d[0])
			vy += float64(d[1])
		}
	}
	return vx, vy
}

func dot(ax, ay float64, bx, by int) float64 {
	return ax*float64(bx) + ay*float64(by)
}

// DetectAt casts short rays from the border cell (x,y) in the grid's eight
// principal/diagonal directions and returns every choke line whose far
// endpoint is another border cell within chokeMax walkable cells, connected
// by an unobstructed run of walkable cells, whose orientation is consistent
// with both endpoints' local border geometry (their opening vectors face
// each other across the passage).
func DetectAt(grid GridView, x, y, chokeMax int) []Line {
	if !grid.InBounds(x, y) || !grid.IsBorder(x, y) {
		return nil
	}
	ox, oy := openingVector(grid, x, y)

	var lines []Line
	for _, d := range rayDirections {
		if dot(ox, oy, d[0], d[1]) <= 0 {
			continue
		}
		cx, cy := x, y
		blocked := false
		for step := 1; step <= chokeMax+1; step++ {
			cx, cy = x+d[0]*step, y+d[1]*step
			if !grid.InBounds(cx, cy) {
				blocked = true
				break
			}
			if grid.IsBorder(cx, cy) {
				break
			}
			if !grid.Walkable(cx, cy) {
				blocked = true
				break
			}
		}
		if blocked || !grid.InBounds(cx, cy) || !grid.IsBorder(cx, cy) {
			continue
		}
		if cx == x && cy == y {
			continue
		}
		line := Line{A: Point{X: x, Y: y}, B: Point{X: cx, Y: cy}}
		if line.Span() > chokeMax {
			continue
		}
		fx, fy := openingVector(grid, cx, cy)
		if dot(fx, fy, -d[0], -d[1]) <= 0 {
			continue
		}
		// Canonical ordering avoids reporting the same physical line twice
		// when both endpoints independently detect each other.
		if line.B.X < line.A.X || (line.B.X == line.A.X && line.B.Y < line.A.Y) {
			line.A, line.B = line.B, line.A
		}
		lines = append(lines, line)
	}
	return lines
}

// Choke is a group of choke lines delimiting one narrow passage.
type Choke struct {
	Lines       []Line
	Width       int
	Cells       []Point
	SideA, SideB []Point
}

type clusterIndex struct {
	cellSize int
	buckets  map[Point][]int
}

func newClusterIndex() *clusterIndex {
	return &clusterIndex{buckets: make(map[Point][]int)}
}

func (idx *clusterIndex) insert(lineIdx int, cells []Point) {
	for _, c := range cells {
		idx.buckets[c] = append(idx.buckets[c], lineIdx)
	}
}

// neighborsOf returns every line index sharing a cell within Chebyshev
// distance 1 of any of the provided cells.
func (idx *clusterIndex) neighborsOf(cells []Point) map[int]struct{} {
	seen := make(map[int]struct{})
	for _, c := range cells {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, other := range idx.buckets[Point{X: c.X + dx, Y: c.Y + dy}] {
					seen[other] = struct{}{}
				}
			}
		}
	}
	return seen
}

type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}
	return i
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}

// lineFootprint returns every cell relevant for clustering
// adjacency: the two endpoints plus the covered interior cells.
func lineFootprint(l Line) []Point {
	cells := l.Cells()
	return append(append([]Point{}, cells...), l.A, l.B)
}

// Group partitions the provided choke lines into clusters and returns one
// Choke per cluster. Two lines are linked when a cell of one footprint
// (endpoints plus covered cells) lies within Chebyshev distance 1 of a cell
// of the other; a cluster is a connected component of that relation, so two
// lines in the same cluster may be joined only through intermediate lines.
func Group(lines []Line) []Choke {
	if len(lines) == 0 {
		return nil
	}

	idx := newClusterIndex()
	footprints := make([][]Point, len(lines))
	for i, l := range lines {
		footprints[i] = lineFootprint(l)
		idx.insert(i, footprints[i])
	}

	uf := newUnionFind(len(lines))
	for i := range lines {
		for other := range idx.neighborsOf(footprints[i]) {
			uf.union(i, other)
		}
	}

	groups := make(map[int][]int)
	for i := range lines {
		root := uf.find(i)
		groups[root] = append(groups[root], i)
	}

	chokes := make([]Choke, 0, len(groups))
	for _, members := range groups {
		choke := Choke{}
		cellSeen := make(map[Point]struct{})
		sideASeen := make(map[Point]struct{})
		sideBSeen := make(map[Point]struct{})
		minSpan := -1
		for _, m := range members {
			l := lines[m]
			choke.Lines = append(choke.Lines, l)
			span := l.Span()
			if minSpan < 0 || span < minSpan {
				minSpan = span
			}
			for _, c := range l.Cells() {
				cellSeen[c] = struct{}{}
			}
			sideASeen[l.A] = struct{}{}
			sideBSeen[l.B] = struct{}{}
		}
		if minSpan < 0 {
			minSpan = 0
		}
		choke.Width = minSpan
		for c := range cellSeen {
			choke.Cells = append(choke.Cells, c)
		}
		for c := range sideASeen {
			choke.SideA = append(choke.SideA, c)
		}
		for c := range sideBSeen {
			choke.SideB = append(choke.SideB, c)
		}
		chokes = append(chokes, choke)
	}
	return chokes
}
