package world

import (
	"terragrid/pkg/engine/tile"
)

// Grid is the unbounded, lazily populated set of cells of one generation
// session. Cells are created on first lookup and kept for the session.
// A Grid is not safe for concurrent use.
type Grid struct {
	catalog *tile.Catalog

	cells map[Coord]*Cell
	order []*Cell // creation order, for deterministic iteration

	sinks      []PlacementSink
	placements int
}

// NewGrid creates an empty grid whose cells start with every template of catalog
func NewGrid(catalog *tile.Catalog) *Grid {
	if catalog == nil || catalog.Len() == 0 {
		panic("world: grid needs a non-empty catalog")
	}
	return &Grid{
		catalog: catalog,
		cells:   make(map[Coord]*Cell, 256),
	}
}

// Catalog returns the catalog the grid was built from
func (g *Grid) Catalog() *tile.Catalog {
	return g.catalog
}

// GetOrCreate returns the cell at c, creating it with the full catalog as
// candidates if it does not exist yet. Repeated calls return the same cell.
func (g *Grid) GetOrCreate(c Coord) *Cell {
	if cell, ok := g.cells[c]; ok {
		return cell
	}
	cell := newCell(c, g.catalog.Templates(), g.place)
	g.cells[c] = cell
	g.order = append(g.order, cell)
	// A single-template catalog is collapsed from the start. The placement
	// fires once the cell is registered, so sinks can look it up.
	if cell.Len() == 1 {
		cell.markCollapsed()
	}
	return cell
}

// Lookup returns the cell at c without creating it
func (g *Grid) Lookup(c Coord) (*Cell, bool) {
	cell, ok := g.cells[c]
	return cell, ok
}

// Neighbor returns (creating if needed) the cell adjacent to cell across side
func (g *Grid) Neighbor(cell *Cell, side Side) *Cell {
	return g.GetOrCreate(cell.Coord().Neighbor(side))
}

// Len returns the number of cells created so far
func (g *Grid) Len() int {
	return len(g.order)
}

// ForEachCell calls fn for every cell in creation order
func (g *Grid) ForEachCell(fn func(cell *Cell)) {
	for _, cell := range g.order {
		fn(cell)
	}
}

// Bounds returns the smallest box containing every cell. ok is false for an empty grid.
func (g *Grid) Bounds() (lo, hi Coord, ok bool) {
	if len(g.order) == 0 {
		return lo, hi, false
	}
	lo = g.order[0].Coord()
	hi = lo
	for _, cell := range g.order[1:] {
		c := cell.Coord()
		lo.X, hi.X = min(lo.X, c.X), max(hi.X, c.X)
		lo.Y, hi.Y = min(lo.Y, c.Y), max(hi.Y, c.Y)
		lo.Z, hi.Z = min(lo.Z, c.Z), max(hi.Z, c.Z)
	}
	return lo, hi, true
}

// Stats counts cells per state
type Stats struct {
	Cells          int
	Open           int
	Collapsed      int
	Contradictions int
}

// Stats returns the current per-state cell counts
func (g *Grid) Stats() Stats {
	s := Stats{Cells: len(g.order)}
	for _, cell := range g.order {
		switch cell.State() {
		case StateOpen:
			s.Open++
		case StateCollapsed:
			s.Collapsed++
		case StateContradiction:
			s.Contradictions++
		}
	}
	return s
}

// CellsWithin returns the existing cells at most radius face steps from
// center, in creation order. It never creates cells.
func (g *Grid) CellsWithin(center Coord, radius int) []*Cell {
	var out []*Cell
	for _, cell := range g.order {
		if HopDistance(center, cell.Coord()) <= radius {
			out = append(out, cell)
		}
	}
	return out
}

// Subscribe registers a sink for placement events
func (g *Grid) Subscribe(sink PlacementSink) {
	if sink != nil {
		g.sinks = append(g.sinks, sink)
	}
}

// Placements returns how many placement events have been emitted
func (g *Grid) Placements() int {
	return g.placements
}

// place is called by a cell exactly once, when it collapses.
func (g *Grid) place(cell *Cell) {
	g.placements++
	p := Placement{Coord: cell.Coord(), Template: cell.Template()}
	for _, sink := range g.sinks {
		sink.Place(p)
	}
}
