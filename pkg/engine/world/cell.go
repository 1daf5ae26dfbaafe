// Package world provides the solver's grid primitives: coordinates, cells with
// their candidate sets, and the lazily populated 3D grid that owns them.
package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"terragrid/pkg/engine/tile"
)

var (
	ErrInvalidCollapseTarget = errors.New("world: template is not a candidate of this cell")
	ErrEmptyCandidateSet     = errors.New("world: cell has no candidates left")
	ErrContradiction         = errors.New("world: contradiction")
)

// ContradictionError reports a cell whose candidate set was emptied by a
// face constraint. It matches ErrContradiction with errors.Is.
type ContradictionError struct {
	Coord Coord
	Side  Side
	Depth int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("world: contradiction at %v: no candidate fits the %v face (depth %d)", e.Coord, e.Side, e.Depth)
}

func (e *ContradictionError) Unwrap() error {
	return ErrContradiction
}

// Rand is the source of randomness used to pick candidates. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// State is the phase of a cell's candidate set.
type State int

const (
	StateOpen          State = iota // more than one candidate
	StateCollapsed                  // exactly one candidate
	StateContradiction              // no candidates
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateCollapsed:
		return "collapsed"
	case StateContradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Cell is the solver state at one grid position.
// Cells are created by the Grid and never removed.
type Cell struct {
	coord Coord

	// candidates stays in catalog order and only ever shrinks.
	candidates []*tile.Template
	collapsed  bool

	// minDepth is the lowest propagation depth that has reached this cell.
	minDepth int

	onCollapse func(*Cell)
}

func newCell(coord Coord, templates []*tile.Template, onCollapse func(*Cell)) *Cell {
	candidates := make([]*tile.Template, len(templates))
	copy(candidates, templates)
	return &Cell{
		coord:      coord,
		candidates: candidates,
		minDepth:   math.MaxInt,
		onCollapse: onCollapse,
	}
}

// Coord returns the cell's grid position
func (c *Cell) Coord() Coord {
	return c.coord
}

// Len returns the number of remaining candidates
func (c *Cell) Len() int {
	return len(c.candidates)
}

// Candidates returns a copy of the remaining candidates in catalog order
func (c *Cell) Candidates() []*tile.Template {
	out := make([]*tile.Template, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// Has returns true if t is still a candidate
func (c *Cell) Has(t *tile.Template) bool {
	for _, cand := range c.candidates {
		if cand == t {
			return true
		}
	}
	return false
}

// Collapsed returns true once the cell holds exactly one template
func (c *Cell) Collapsed() bool {
	return c.collapsed
}

// Template returns the chosen template, or nil if the cell is not collapsed
func (c *Cell) Template() *tile.Template {
	if !c.collapsed {
		return nil
	}
	return c.candidates[0]
}

// MinDepth returns the lowest propagation depth that reached the cell.
// It is math.MaxInt for a cell no propagation has touched and 0 once collapsed.
func (c *Cell) MinDepth() int {
	return c.minDepth
}

// State returns the candidate-set phase of the cell
func (c *Cell) State() State {
	switch {
	case c.collapsed:
		return StateCollapsed
	case len(c.candidates) == 0:
		return StateContradiction
	default:
		return StateOpen
	}
}

// String returns a short description for logs
func (c *Cell) String() string {
	if c.collapsed {
		return fmt.Sprintf("%v=%v", c.coord, c.candidates[0])
	}
	return fmt.Sprintf("%v[%d %v]", c.coord, len(c.candidates), c.State())
}

// Collapse drops every candidate whose face on side is not in allowed and
// records depth. It returns whether any candidate was removed. Emptying the
// candidate set returns a *ContradictionError. Collapsed cells are left alone.
func (c *Cell) Collapse(allowed mapset.Set[tile.FacePattern], side Side, depth int) (bool, error) {
	if c.collapsed {
		return false, nil
	}
	if depth < c.minDepth {
		c.minDepth = depth
	}
	if len(c.candidates) == 0 {
		return false, nil
	}

	kept := c.candidates[:0]
	for _, t := range c.candidates {
		if allowed.Has(tile.GetFacePattern(t, side)) {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(c.candidates)
	// clear the tail so dropped templates are not retained by the backing array
	for i := len(kept); i < len(c.candidates); i++ {
		c.candidates[i] = nil
	}
	c.candidates = kept

	switch len(c.candidates) {
	case 0:
		return removed, &ContradictionError{Coord: c.coord, Side: side, Depth: depth}
	case 1:
		c.markCollapsed()
	}
	return removed, nil
}

// CollapseTo reduces the cell to t. The cell is unchanged if t is not a candidate.
func (c *Cell) CollapseTo(t *tile.Template) error {
	if c.collapsed {
		if c.candidates[0] == t {
			return nil
		}
		return fmt.Errorf("%w: %v is collapsed to %v, not %v", ErrInvalidCollapseTarget, c.coord, c.candidates[0], t)
	}
	if t == nil || !c.Has(t) {
		return fmt.Errorf("%w: %v at %v", ErrInvalidCollapseTarget, t, c.coord)
	}

	c.candidates = []*tile.Template{t}
	c.markCollapsed()
	return nil
}

// CollapseRandomly reduces the cell to one candidate chosen uniformly with rng.
// An already collapsed cell returns its template.
func (c *Cell) CollapseRandomly(rng Rand) (*tile.Template, error) {
	if len(c.candidates) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrEmptyCandidateSet, c.coord)
	}
	if c.collapsed {
		return c.candidates[0], nil
	}

	t := c.candidates[rng.Intn(len(c.candidates))]
	c.candidates = []*tile.Template{t}
	c.markCollapsed()
	return t, nil
}

func (c *Cell) markCollapsed() {
	c.collapsed = true
	c.minDepth = 0
	if c.onCollapse != nil {
		c.onCollapse(c)
	}
}
