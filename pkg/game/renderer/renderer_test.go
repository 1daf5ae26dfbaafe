package renderer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gookit/color"

	"terragrid/pkg/engine/tile"
	"terragrid/pkg/engine/world"
)

func TestTemplateKind(t *testing.T) {
	tests := []struct {
		corners string
		want    Kind
	}{
		{"00000000", KindAir},
		{"11111111", KindSolid},
		{"22221111", KindSolid},
		{"00001111", KindFloor},
		{"11110000", KindCeiling},
		{"00001100", KindSlope},
		{"11001111", KindSlope},
	}
	for _, tc := range tests {
		tmpl := &tile.Template{Corners: tile.MustParseCorners(tc.corners)}
		if got := TemplateKind(tmpl); got != tc.want {
			t.Errorf("TemplateKind(%s) = %v, want %v", tc.corners, got, tc.want)
		}
	}
}

func testGrid(t *testing.T) *world.Grid {
	t.Helper()
	c, err := tile.LoadCatalog([]string{"00000000", "00001111", "11111111"}, []string{"", "floor", "rock"})
	if err != nil {
		t.Fatal(err)
	}
	return world.NewGrid(c)
}

func TestSliceLayer(t *testing.T) {
	g := testGrid(t)
	floor, rock := g.Catalog().At(1), g.Catalog().At(2)

	if err := g.GetOrCreate(world.Coord{X: 0, Z: 0}).CollapseTo(floor); err != nil {
		t.Fatal(err)
	}
	if err := g.GetOrCreate(world.Coord{X: 2, Z: 1}).CollapseTo(rock); err != nil {
		t.Fatal(err)
	}
	g.GetOrCreate(world.Coord{X: 1, Z: 1})
	g.GetOrCreate(world.Coord{X: 1, Y: 3, Z: 0}) // other layer, widens nothing horizontally

	layer := SliceLayer(g, 0)
	want := []string{
		IconFloor + IconVoid + IconVoid,
		IconVoid + IconOpen + IconSolid,
	}
	if diff := cmp.Diff(want, layer.Rows(0)); diff != "" {
		t.Errorf("layer rows mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{IconFloor, IconVoid}, layer.Rows(1)); diff != "" {
		t.Errorf("clipped rows mismatch (-want +got):\n%s", diff)
	}
	if g.Len() != 4 {
		t.Errorf("SliceLayer created cells: Len() = %d", g.Len())
	}
}

func TestSurface(t *testing.T) {
	g := testGrid(t)
	air, floor, rock := g.Catalog().At(0), g.Catalog().At(1), g.Catalog().At(2)
	place := func(c world.Coord, tmpl *tile.Template) {
		t.Helper()
		if err := g.GetOrCreate(c).CollapseTo(tmpl); err != nil {
			t.Fatal(err)
		}
	}
	place(world.Coord{Y: -1}, rock)
	place(world.Coord{Y: 0}, floor)
	place(world.Coord{Y: 1}, air)
	place(world.Coord{X: 3, Y: -2}, rock)
	g.GetOrCreate(world.Coord{X: 5}) // open cells are not surface

	want := []Column{
		{X: 0, Z: 0, Height: 0, Kind: KindFloor},
		{X: 3, Z: 0, Height: -2, Kind: KindSolid},
	}
	if diff := cmp.Diff(want, Surface(g)); diff != "" {
		t.Errorf("Surface mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatString(t *testing.T) {
	InitColors()
	got := color.ClearCode(FormatString("GT{SEED} %d ASSET{meshes/floor.obj} X{y}", 42))
	// Without a loaded locale gotext returns the key.
	if want := "SEED 42 meshes/floor.obj X{y}"; got != want {
		t.Errorf("FormatString = %q, want %q", got, want)
	}
}

func TestRenderCell(t *testing.T) {
	InitColors()
	if got := color.ClearCode(RenderCell(nil)); got != IconVoid {
		t.Errorf("RenderCell(nil) = %q", got)
	}
	g := testGrid(t)
	if got := color.ClearCode(RenderCell(g.GetOrCreate(world.Origin))); got != IconOpen {
		t.Errorf("RenderCell(open) = %q", got)
	}
}
