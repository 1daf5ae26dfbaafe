// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"terragrid/pkg/engine/world"
	"terragrid/pkg/game/reach"
	"terragrid/pkg/game/renderer"
	"terragrid/pkg/game/state"
)

const gridDumpFilename = "grid.txt"

// cellSymbol returns the single-character symbol for a cell.
func cellSymbol(cell *world.Cell) rune {
	switch renderer.CellKind(cell) {
	case renderer.KindVoid:
		return ' '
	case renderer.KindOpen:
		return '?'
	case renderer.KindAir:
		return '.'
	case renderer.KindFloor:
		return '_'
	case renderer.KindCeiling:
		return '^'
	case renderer.KindSolid:
		return '#'
	case renderer.KindSlope:
		return '/'
	case renderer.KindContradiction:
		return '!'
	default:
		return ' '
	}
}

// DumpGridToFile writes a full debug dump of the session's grid to path
// (grid.txt in the working directory when path is empty) and returns the
// absolute path written.
func DumpGridToFile(s *state.Session, path string) (string, error) {
	if path == "" {
		path = gridDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteGridDump(f, s); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// WriteGridDump writes metadata, a legend, every layer slice from top to
// bottom and the list of contradicted cells. Sections use key: value lines
// so the dump is easy to diff and grep.
func WriteGridDump(w io.Writer, s *state.Session) error {
	grid := s.Grid()
	st := grid.Stats()
	lo, hi, ok := grid.Bounds()
	eng := s.Generator.Engine()

	// --- Metadata ---
	fmt.Fprintln(w, "=== GRID DUMP DEBUG (layers, states, contradictions) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", s.ID)
	fmt.Fprintf(w, "seed: %d\n", s.Seed())
	fmt.Fprintf(w, "catalog_templates: %d\n", grid.Catalog().Len())
	fmt.Fprintf(w, "max_propagations: %d\n", eng.MaxPropagations())
	fmt.Fprintf(w, "cells: %d\n", st.Cells)
	fmt.Fprintf(w, "open: %d\n", st.Open)
	fmt.Fprintf(w, "collapsed: %d\n", st.Collapsed)
	fmt.Fprintf(w, "contradictions: %d\n", st.Contradictions)
	fmt.Fprintf(w, "placements: %d\n", grid.Placements())
	fmt.Fprintf(w, "steps: %d\n", s.Steps)
	if ok {
		fmt.Fprintf(w, "bounds: %v..%v\n", lo, hi)
	}
	fmt.Fprintln(w, "coordinate_system: x east, y up, z south; rows are z, columns are x")
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "' ' = no cell  ? = open  . = air  _ = floor  ^ = ceiling  # = solid  / = slope  ! = contradiction")
	fmt.Fprintln(w, "")

	if !ok {
		fmt.Fprintln(w, "(empty grid)")
		return nil
	}

	// --- Layers ---
	for y := hi.Y; y >= lo.Y; y-- {
		layer := renderer.SliceLayer(grid, y)
		fmt.Fprintf(w, "--- Layer y=%d (x %d..%d, z %d..%d) ---\n", y, lo.X, hi.X, lo.Z, hi.Z)
		for _, row := range layer.Cells {
			line := make([]rune, len(row))
			for i, cell := range row {
				line[i] = cellSymbol(cell)
			}
			fmt.Fprintln(w, string(line))
		}
		fmt.Fprintln(w, "")
	}

	// --- Contradictions ---
	fmt.Fprintln(w, "--- Contradictions ---")
	grid.ForEachCell(func(cell *world.Cell) {
		if cell.State() == world.StateContradiction {
			fmt.Fprintf(w, "  coord: %v min_depth: %d\n", cell.Coord(), cell.MinDepth())
		}
	})
	fmt.Fprintln(w, "")

	// --- Walkability ---
	report := reach.Analyze(grid, world.Origin)
	fmt.Fprintln(w, "--- Walkability (from spawn) ---")
	fmt.Fprintf(w, "walkable: %d\n", report.Walkable)
	fmt.Fprintf(w, "reachable: %d\n", report.Reachable)
	for _, c := range report.Stranded {
		fmt.Fprintf(w, "  stranded: %v\n", c)
	}
	fmt.Fprintln(w, "")

	// --- Assets ---
	fmt.Fprintln(w, "--- Assets placed ---")
	var assets []string
	s.Assets.Each(func(asset string) {
		assets = append(assets, asset)
	})
	sort.Strings(assets)
	for _, asset := range assets {
		fmt.Fprintf(w, "  %s\n", asset)
	}
	return nil
}
