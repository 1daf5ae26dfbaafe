package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"terragrid/pkg/engine/tile"
)

// Placement is emitted once per cell when it collapses.
type Placement struct {
	Coord    Coord
	Template *tile.Template
}

// PlacementSink receives placement events (renderers, logs, recorders)
type PlacementSink interface {
	Place(p Placement)
}

// PlacementFunc adapts a function to PlacementSink
type PlacementFunc func(p Placement)

// Place calls f(p)
func (f PlacementFunc) Place(p Placement) {
	f(p)
}

// WorldPosition maps a grid coordinate to scene space: grid z runs along
// scene x, grid y stays up, and grid x runs along negative scene z.
func WorldPosition(c Coord, cellSize float32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.Z) * cellSize,
		float32(c.Y) * cellSize,
		float32(-c.X) * cellSize,
	}
}

// CoordAt is the inverse of WorldPosition, rounding to the nearest cell.
func CoordAt(pos mgl32.Vec3, cellSize float32) Coord {
	if cellSize == 0 {
		cellSize = 1
	}
	return Coord{
		X: int32(math.Round(float64(-pos.Z() / cellSize))),
		Y: int32(math.Round(float64(pos.Y() / cellSize))),
		Z: int32(math.Round(float64(pos.X() / cellSize))),
	}
}
