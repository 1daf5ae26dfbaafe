package tileset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"terragrid/pkg/engine/tile"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Len() != len(defaultEntries) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(defaultEntries))
	}
	air := c.At(0)
	if air.HasAsset() {
		t.Error("air template should have no asset")
	}
	if c.Find(tile.MustParseCorners("00001111")) == nil {
		t.Error("default catalog has no flat floor")
	}
}

func TestParse_TemplateList(t *testing.T) {
	data := []byte(`
name: caves
templates:
  - corners: "00000000"
  - corners: "00001111"
    asset: meshes/floor.obj
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Name != "caves" {
		t.Errorf("Name = %q", f.Name)
	}
	c, err := f.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if c.Len() != 2 || c.At(1).Asset != "meshes/floor.obj" || c.At(0).Asset != "" {
		t.Errorf("unexpected catalog: %v %v", c.At(0), c.At(1))
	}
}

func TestParse_ParallelListsMismatch(t *testing.T) {
	data := []byte(`
corners: ["00000000", "11111111"]
assets: [""]
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := f.Catalog(); !errors.Is(err, tile.ErrCatalogMismatch) {
		t.Errorf("Catalog error = %v, want ErrCatalogMismatch", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("templates: [")); err == nil {
		t.Error("Parse of malformed YAML succeeded")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.yaml")
	content := "corners: [\"00000000\", \"00001111\"]\nassets: [\"\", floor]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 2 || c.At(1).Asset != "floor" {
		t.Errorf("unexpected catalog of %d templates", c.Len())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
}
