package generator

import (
	"sort"

	"terragrid/pkg/engine/tile"
)

// SpawnPredicate decides whether a template may sit at the origin
type SpawnPredicate func(t *tile.Template) bool

// FlatFloor accepts templates with open air on all four top corners and
// solid ground on all four bottom corners.
func FlatFloor(t *tile.Template) bool {
	for _, m := range t.Corners.Top() {
		if m != tile.Air {
			return false
		}
	}
	for _, m := range t.Corners.Bottom() {
		if m != tile.Solid {
			return false
		}
	}
	return true
}

// SolidBottom accepts any template whose four bottom corners are Solid
func SolidBottom(t *tile.Template) bool {
	for _, m := range t.Corners.Bottom() {
		if m != tile.Solid {
			return false
		}
	}
	return true
}

// Predicates maps spawn predicate names to their functions
var Predicates = map[string]SpawnPredicate{
	"flat-floor":   FlatFloor,
	"solid-bottom": SolidBottom,
}

// PredicateNames returns the registered predicate names, sorted
func PredicateNames() []string {
	names := make([]string, 0, len(Predicates))
	for name := range Predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
