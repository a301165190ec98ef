package maptool

// NewMapRequest models the host-facing contract crossing into Map
// construction: three raw raster layers, the playable rectangle, and any
// reaper-jump overrides the caller wants to force. It is shared with
// cmd/schemagen so the language-binding layer gets a machine-readable
// validation schema for the wire payload.
type NewMapRequest struct {
	// Pathing is a row-major H×W grid; a cell greater than zero means
	// ground-walkable.
	Pathing [][]int `json:"pathing" jsonschema:"title=Pathing grid,description=Row-major H x W ground-walkability raster; cell > 0 is walkable"`
	// Placement is a row-major H×W grid; a cell greater than zero means
	// buildable (and therefore also walkable in the analyzer).
	Placement [][]int `json:"placement" jsonschema:"title=Placement grid,description=Row-major H x W buildable-placement raster; cell > 0 is buildable"`
	// HeightMap is a row-major H×W grid of non-negative terrain elevations.
	HeightMap [][]int `json:"heightMap" jsonschema:"title=Height map,description=Row-major H x W non-negative terrain elevation raster"`

	PlayableXStart int `json:"playableXStart" jsonschema:"title=Playable rectangle left column,minimum=0"`
	PlayableYStart int `json:"playableYStart" jsonschema:"title=Playable rectangle top row,minimum=0"`
	PlayableXEnd   int `json:"playableXEnd" jsonschema:"title=Playable rectangle right column,minimum=0"`
	PlayableYEnd   int `json:"playableYEnd" jsonschema:"title=Playable rectangle bottom row,minimum=0"`

	// ReaperOverrides is a list of [[ax,ay],[bx,by]] pairs; both directions
	// of reaper traversal between the two cells are forced walkable
	// regardless of what the climb classifier would have decided.
	ReaperOverrides [][2][2]int `json:"reaperOverrides,omitempty" jsonschema:"title=Reaper overrides,description=Cell pairs forced reaper-traversable in both directions"`
}
