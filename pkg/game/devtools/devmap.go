package devtools

import (
	"fmt"
	"io"
	"strings"

	"terragrid/pkg/engine/tile"
	"terragrid/pkg/engine/world"
	"terragrid/pkg/game/renderer"
)

// galleryMargin is the number of empty cells between gallery templates
const galleryMargin = 2

// galleryColumns is how many templates go in one gallery row
const galleryColumns = 8

// CatalogGallery builds a grid on layer y=0 holding every template of
// catalog once, laid out in rows with a margin between them. No constraints
// are propagated, so each template is shown as authored.
func CatalogGallery(catalog *tile.Catalog) *world.Grid {
	grid := world.NewGrid(catalog)
	for i, t := range catalog.Templates() {
		// Fresh cells hold the whole catalog, so t is always a candidate.
		if err := grid.GetOrCreate(GalleryCoord(i)).CollapseTo(t); err != nil {
			panic(err)
		}
	}
	return grid
}

// GalleryCoord returns where CatalogGallery places the template at index i
func GalleryCoord(i int) world.Coord {
	stride := int32(1 + galleryMargin)
	return world.Coord{
		X: int32(i%galleryColumns) * stride,
		Z: int32(i/galleryColumns) * stride,
	}
}

// WriteGallery prints the catalog gallery as symbols followed by one line
// per template with its position, corners and asset.
func WriteGallery(w io.Writer, catalog *tile.Catalog) {
	grid := CatalogGallery(catalog)
	layer := renderer.SliceLayer(grid, 0)
	for _, row := range layer.Cells {
		line := make([]rune, len(row))
		for i, cell := range row {
			line[i] = cellSymbol(cell)
		}
		fmt.Fprintln(w, strings.TrimRight(string(line), " "))
	}
	fmt.Fprintln(w)
	for i, t := range catalog.Templates() {
		asset := t.Asset
		if !t.HasAsset() {
			asset = "(no mesh)"
		}
		fmt.Fprintf(w, "%3d %-12v %s %s\n", i, GalleryCoord(i), t.Corners, asset)
	}
}
