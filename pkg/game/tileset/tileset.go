// Package tileset provides the built-in terrain catalog and loads catalogs
// from YAML files.
package tileset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"terragrid/pkg/engine/tile"
)

// Entry is one template in a tileset file
type Entry struct {
	Corners string `yaml:"corners"`
	Asset   string `yaml:"asset"`
}

// File is the YAML layout of a tileset. Either Templates or the parallel
// Corners/Assets lists may be used; Templates wins when both are present.
//
//	templates:
//	  - corners: "00001111"
//	    asset: meshes/floor.obj
type File struct {
	Name      string   `yaml:"name"`
	Templates []Entry  `yaml:"templates"`
	Corners   []string `yaml:"corners"`
	Assets    []string `yaml:"assets"`
}

// defaultEntries is the built-in set: open air, flat ground and its
// inverse, solid rock, and the half-height slopes between them.
var defaultEntries = []Entry{
	{"00000000", ""},
	{"00001111", "meshes/floor.obj"},
	{"11110000", "meshes/ceiling.obj"},
	{"11111111", "meshes/rock.obj"},
	{"00001100", "meshes/ledge_north.obj"},
	{"00000011", "meshes/ledge_south.obj"},
	{"00001010", "meshes/ledge_east.obj"},
	{"00000101", "meshes/ledge_west.obj"},
	{"11001111", "meshes/step_north.obj"},
	{"00111111", "meshes/step_south.obj"},
}

// Default returns the built-in catalog
func Default() *tile.Catalog {
	c, err := (&File{Templates: defaultEntries}).Catalog()
	if err != nil {
		panic("tileset: built-in catalog is invalid: " + err.Error())
	}
	return c
}

// Parse decodes a YAML tileset
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("tileset: %w", err)
	}
	return &f, nil
}

// LoadFile reads a YAML tileset from disk and builds its catalog
func LoadFile(path string) (*tile.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c, err := f.Catalog()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Catalog converts the file into parallel lists and loads them
func (f *File) Catalog() (*tile.Catalog, error) {
	if len(f.Templates) == 0 {
		return tile.LoadCatalog(f.Corners, f.Assets)
	}
	tags := make([]string, len(f.Templates))
	assets := make([]string, len(f.Templates))
	for i, e := range f.Templates {
		tags[i] = e.Corners
		assets[i] = e.Asset
	}
	return tile.LoadCatalog(tags, assets)
}
