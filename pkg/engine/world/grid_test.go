package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
)

func TestGrid_GetOrCreateIsIdempotent(t *testing.T) {
	g, _ := newTestGrid(t)

	a := g.GetOrCreate(Coord{4, -2, 7})
	b := g.GetOrCreate(Coord{4, -2, 7})
	if a != b {
		t.Error("GetOrCreate returned different cells for the same coordinate")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}

	if _, ok := g.Lookup(Coord{0, 0, 0}); ok {
		t.Error("Lookup found a cell that was never created")
	}
	if g.Len() != 1 {
		t.Error("Lookup must not create cells")
	}
	if got, ok := g.Lookup(Coord{4, -2, 7}); !ok || got != a {
		t.Error("Lookup did not return the created cell")
	}
}

func TestGrid_CellsAreIndependent(t *testing.T) {
	g, _ := newTestGrid(t)
	a := g.GetOrCreate(Coord{0, 0, 0})
	b := g.GetOrCreate(Coord{1, 0, 0})
	if _, err := a.CollapseRandomly(fixedRand(0)); err != nil {
		t.Fatal(err)
	}
	if b.Len() != g.Catalog().Len() {
		t.Errorf("collapsing one cell changed another: %v", b)
	}
}

func TestGrid_ForEachCellCreationOrder(t *testing.T) {
	g, _ := newTestGrid(t)
	coords := []Coord{{0, 0, 0}, {5, 5, 5}, {-1, 0, 0}, {0, 0, 3}}
	for _, c := range coords {
		g.GetOrCreate(c)
	}
	g.GetOrCreate(coords[1]) // existing, must not be appended again

	var got []Coord
	g.ForEachCell(func(cell *Cell) {
		got = append(got, cell.Coord())
	})
	if diff := cmp.Diff(coords, got); diff != "" {
		t.Errorf("iteration order mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid_Neighbor(t *testing.T) {
	g, _ := newTestGrid(t)
	center := g.GetOrCreate(Coord{1, 1, 1})

	want := map[Side]Coord{
		Top:    {1, 2, 1},
		Bottom: {1, 0, 1},
		North:  {1, 1, 0},
		South:  {1, 1, 2},
		East:   {2, 1, 1},
		West:   {0, 1, 1},
	}
	for side, c := range want {
		n := g.Neighbor(center, side)
		if n.Coord() != c {
			t.Errorf("Neighbor(%v) = %v, want %v", side, n.Coord(), c)
		}
		if back := n.Coord().Neighbor(side.Opposite()); back != center.Coord() {
			t.Errorf("stepping back from %v across %v gave %v", n.Coord(), side.Opposite(), back)
		}
		if HopDistance(center.Coord(), c) != 1 {
			t.Errorf("HopDistance to %v neighbor != 1", side)
		}
	}
}

func TestGrid_BoundsAndStats(t *testing.T) {
	g, _ := newTestGrid(t)
	if _, _, ok := g.Bounds(); ok {
		t.Error("empty grid reported bounds")
	}

	g.GetOrCreate(Coord{-3, 0, 2})
	g.GetOrCreate(Coord{4, -1, 0})
	c := g.GetOrCreate(Coord{0, 6, -5})
	if _, err := c.CollapseRandomly(fixedRand(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := g.GetOrCreate(Coord{9, 9, 9}).Collapse(patterns("2222"), Top, 1); err == nil {
		t.Fatal("expected a contradiction")
	}

	lo, hi, ok := g.Bounds()
	if !ok || lo != (Coord{-3, -1, -5}) || hi != (Coord{9, 9, 9}) {
		t.Errorf("Bounds() = %v %v %v", lo, hi, ok)
	}

	want := Stats{Cells: 4, Open: 2, Collapsed: 1, Contradictions: 1}
	if diff := cmp.Diff(want, g.Stats()); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
	if g.Placements() != 1 {
		t.Errorf("Placements() = %d, want 1", g.Placements())
	}
}

func TestGrid_CellsWithin(t *testing.T) {
	g, _ := newTestGrid(t)
	for x := int32(-3); x <= 3; x++ {
		g.GetOrCreate(Coord{x, 0, 0})
	}
	g.GetOrCreate(Coord{1, 1, 0})

	got := g.CellsWithin(Origin, 2)
	if len(got) != 6 { // x in [-2,2] plus (1,1,0)
		t.Errorf("CellsWithin(origin, 2) returned %d cells, want 6", len(got))
	}
	if g.Len() != 8 {
		t.Error("CellsWithin must not create cells")
	}
}

func TestGrid_SubscribeFanOut(t *testing.T) {
	g, first := newTestGrid(t)
	var second []Placement
	g.Subscribe(PlacementFunc(func(p Placement) { second = append(second, p) }))
	g.Subscribe(nil)

	cell := g.GetOrCreate(Coord{2, 0, 0})
	if _, err := cell.CollapseRandomly(fixedRand(0)); err != nil {
		t.Fatal(err)
	}
	if len(first.events) != 1 || len(second) != 1 {
		t.Errorf("sinks saw %d and %d events, want 1 each", len(first.events), len(second))
	}
}

func TestNewGrid_PanicsWithoutCatalog(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(nil) did not panic")
		}
	}()
	NewGrid(nil)
}

func TestWorldPosition_RoundTrip(t *testing.T) {
	tests := []struct {
		coord Coord
		size  float32
		want  mgl32.Vec3
	}{
		{Coord{0, 0, 0}, 1, mgl32.Vec3{0, 0, 0}},
		{Coord{1, 2, 3}, 1, mgl32.Vec3{3, 2, -1}},
		{Coord{-2, 0, 5}, 2.5, mgl32.Vec3{12.5, 0, 5}},
	}
	for _, tc := range tests {
		got := WorldPosition(tc.coord, tc.size)
		if !got.ApproxEqual(tc.want) {
			t.Errorf("WorldPosition(%v, %v) = %v, want %v", tc.coord, tc.size, got, tc.want)
		}
		if back := CoordAt(got, tc.size); back != tc.coord {
			t.Errorf("CoordAt(%v) = %v, want %v", got, back, tc.coord)
		}
	}

	// Positions inside a cell round to it.
	if c := CoordAt(mgl32.Vec3{2.8, 0.3, -1.2}, 1); c != (Coord{1, 0, 3}) {
		t.Errorf("CoordAt rounding = %v, want (1,0,3)", c)
	}
}
