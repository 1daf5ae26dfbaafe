package world

import "fmt"

// Coord is an integer grid position. It is the Grid's map key.
type Coord struct{ X, Y, Z int32 }

// Origin is the spawn coordinate.
var Origin = Coord{}

// Neighbor returns the coordinate adjacent across the given side
func (c Coord) Neighbor(s Side) Coord {
	dx, dy, dz := Delta(s)
	return Coord{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

// String returns the coordinate as "(x,y,z)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// HopDistance is the number of face steps between two coordinates.
func HopDistance(a, b Coord) int {
	return abs(int(a.X)-int(b.X)) + abs(int(a.Y)-int(b.Y)) + abs(int(a.Z)-int(b.Z))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
