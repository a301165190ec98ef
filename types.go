package maptool

import "fmt"

// MapType selects which of the four per-unit-class pathing grids an
// operation applies to. It replaces the source engine's bare integer
// dispatch with a tagged variant; ParseMapType preserves the integer
// encoding only at the host boundary (§ EXTERNAL INTERFACES).
type MapType int

const (
	MapTypeGround MapType = iota
	MapTypeReaper
	MapTypeColossus
	MapTypeAir
)

// String implements fmt.Stringer.
func (t MapType) String() string {
	switch t {
	case MapTypeGround:
		return "ground"
	case MapTypeReaper:
		return "reaper"
	case MapTypeColossus:
		return "colossus"
	case MapTypeAir:
		return "air"
	default:
		return fmt.Sprintf("MapType(%d)", int(t))
	}
}

// ParseMapType converts the host-facing integer encoding (0 ground, 1
// reaper, 2 colossus, 3 air) into a MapType, returning an error naming the
// bad value for anything else.
func ParseMapType(value int) (MapType, error) {
	switch value {
	case int(MapTypeGround), int(MapTypeReaper), int(MapTypeColossus), int(MapTypeAir):
		return MapType(value), nil
	default:
		return 0, fmt.Errorf("maptool: invalid map_type %d (want 0-3)", value)
	}
}

// DrawClimbLabel values returned by Map.DrawClimbs.
const (
	DrawClimbImpassable = 0
	DrawClimbClimbable  = 1
	DrawClimbWalkable   = 2
	DrawClimbLow        = 3
	DrawClimbBoth       = 4
	DrawClimbHigh       = 5
	DrawClimbOverlord   = 6
)

// DrawChokeLabel values returned by Map.DrawChokes.
const (
	DrawChokeNone           = 0
	DrawChokeInterior       = 100
	DrawChokeBorderAndChoke = 175
	DrawChokeBorderOnly     = 255
)
