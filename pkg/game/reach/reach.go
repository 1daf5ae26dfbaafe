// Package reach answers walkability questions about generated terrain: which
// collapsed cells can be stood on and which of them connect to the spawn.
package reach

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"terragrid/pkg/engine/tile"
	"terragrid/pkg/engine/world"
)

// Walkable reports whether t has ground underneath and room above. Flat
// floors and slopes are walkable; rock and open air are not.
func Walkable(t *tile.Template) bool {
	if t == nil {
		return false
	}
	ground, open := false, false
	for _, m := range t.Corners.Bottom() {
		if m != tile.Air {
			ground = true
		}
	}
	for _, m := range t.Corners.Top() {
		if m == tile.Air {
			open = true
		}
	}
	return ground && open
}

// Flat reports whether t is walkable with no solid corner on top
func Flat(t *tile.Template) bool {
	if !Walkable(t) {
		return false
	}
	for _, m := range t.Corners.Top() {
		if m != tile.Air {
			return false
		}
	}
	return true
}

func walkableCell(c *world.Cell) bool {
	return c != nil && c.Collapsed() && Walkable(c.Template())
}

// neighbors returns the walkable cells one horizontal step from c. A step
// may also climb or drop one layer when either end is a slope.
func neighbors(grid *world.Grid, c *world.Cell) []*world.Cell {
	var out []*world.Cell
	for _, side := range []world.Side{world.North, world.East, world.South, world.West} {
		level := c.Coord().Neighbor(side)
		if n, ok := grid.Lookup(level); ok && walkableCell(n) {
			out = append(out, n)
			continue
		}
		for _, dy := range []int32{1, -1} {
			at := level
			at.Y += dy
			n, ok := grid.Lookup(at)
			if !ok || !walkableCell(n) {
				continue
			}
			if !Flat(c.Template()) || !Flat(n.Template()) {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

// Reachable returns every walkable cell reachable from start in breadth
// first order, start included. It returns nil when start is missing or
// cannot be stood on. Cells are never created.
func Reachable(grid *world.Grid, start world.Coord) []*world.Cell {
	first, ok := grid.Lookup(start)
	if !ok || !walkableCell(first) {
		return nil
	}

	visited := mapset.New[*world.Cell]()
	visited.Put(first)
	q := queue.New[*world.Cell]()
	q.Enqueue(first)

	var order []*world.Cell
	for !q.Empty() {
		current := q.Dequeue()
		order = append(order, current)
		for _, n := range neighbors(grid, current) {
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}
	return order
}

// Report summarizes walkability of a grid relative to one start cell
type Report struct {
	Walkable  int
	Reachable int
	// Stranded lists walkable cells not reachable from the start, in grid
	// creation order.
	Stranded []world.Coord
}

// Connected is true when every walkable cell is reachable
func (r Report) Connected() bool {
	return r.Walkable == r.Reachable
}

// Analyze walks the grid from start and counts walkable cells that cannot
// be reached.
func Analyze(grid *world.Grid, start world.Coord) Report {
	reached := mapset.New[*world.Cell]()
	for _, c := range Reachable(grid, start) {
		reached.Put(c)
	}

	var r Report
	r.Reachable = reached.Size()
	grid.ForEachCell(func(c *world.Cell) {
		if !walkableCell(c) {
			return
		}
		r.Walkable++
		if !reached.Has(c) {
			r.Stranded = append(r.Stranded, c.Coord())
		}
	})
	return r
}
