package world

import "terragrid/pkg/engine/tile"

// Side is a cube face, shared with the tile model.
type Side = tile.Side

// Side constants
const (
	Top    = tile.Top
	Bottom = tile.Bottom
	North  = tile.North
	South  = tile.South
	East   = tile.East
	West   = tile.West
)

// AllSides returns all six sides for iteration
func AllSides() []Side {
	return tile.AllSides()
}

// Delta returns the coordinate offsets for stepping out of the given face.
// North is toward negative z, east toward positive x, top toward positive y.
func Delta(s Side) (dx, dy, dz int32) {
	switch s {
	case Top:
		return 0, 1, 0
	case Bottom:
		return 0, -1, 0
	case North:
		return 0, 0, -1
	case South:
		return 0, 0, 1
	case East:
		return 1, 0, 0
	case West:
		return -1, 0, 0
	default:
		return 0, 0, 0
	}
}
