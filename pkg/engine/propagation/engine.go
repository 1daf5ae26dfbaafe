// Package propagation spreads face constraints from changed cells to their
// neighbors, a bounded number of hops at a time.
//
// A wave starts at one cell and walks outward through a FIFO work queue of
// (cell, depth) items. A neighbor that loses candidates is queued again with
// depth+1 until MaxPropagations is reached. A neighbor that collapses while
// being constrained restarts at depth 0. This is not arc consistency: cells
// beyond the wave keep candidates that distant collapses may already rule out.
package propagation

import (
	"errors"
	"log"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"terragrid/pkg/engine/tile"
	"terragrid/pkg/engine/world"
)

const (
	// DefaultMaxPropagations is the hop bound after a change.
	DefaultMaxPropagations = 4

	// DefaultMaxRadius bounds how far from its root a chain of forced
	// collapses may expand. Each collapse resets depth to 0, so such a chain
	// would otherwise run without end on an unbounded grid. Cells that only
	// lose candidates are bounded by MaxPropagations alone.
	DefaultMaxRadius = 16
)

// Stats describes the most recent wave.
type Stats struct {
	Items          int // work items processed
	Sides          int // neighbor faces constrained
	Removed        int // neighbors that lost at least one candidate
	Collapses      int // neighbors collapsed by the wave
	Contradictions int
	Truncated      int // collapsed cells not expanded because of the radius bound
}

type workItem struct {
	cell  *world.Cell
	depth int
}

// Engine drives constraint propagation over a grid.
// It is not safe for concurrent use.
type Engine struct {
	grid            *world.Grid
	flips           tile.FlipTable
	maxPropagations int
	maxRadius       int
	logger          *log.Logger

	stats Stats
}

// Option configures an Engine
type Option func(*Engine)

// WithMaxPropagations sets the hop bound (values below 1 are raised to 1)
func WithMaxPropagations(n int) Option {
	return func(e *Engine) {
		e.maxPropagations = max(n, 1)
	}
}

// WithMaxRadius sets the largest distance from a wave root at which a forced
// collapse is still expanded (values below 1 are raised to 1)
func WithMaxRadius(n int) Option {
	return func(e *Engine) {
		e.maxRadius = max(n, 1)
	}
}

// WithFlipTable selects the face flip convention
func WithFlipTable(ft tile.FlipTable) Option {
	return func(e *Engine) {
		e.flips = ft
	}
}

// WithLogger sets a logger for contradictions and truncated waves
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine over grid
func New(grid *world.Grid, opts ...Option) *Engine {
	e := &Engine{
		grid:            grid,
		flips:           tile.CanonicalFlips,
		maxPropagations: DefaultMaxPropagations,
		maxRadius:       DefaultMaxRadius,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MaxPropagations returns the hop bound
func (e *Engine) MaxPropagations() int {
	return e.maxPropagations
}

// Stats returns counters for the most recent wave
func (e *Engine) Stats() Stats {
	return e.stats
}

// AllowedPatterns returns the faces a neighbor across rootSide may present:
// every remaining candidate's rootSide face, flipped to the neighbor's view.
func (e *Engine) AllowedPatterns(root *world.Cell, rootSide tile.Side) mapset.Set[tile.FacePattern] {
	allowed := mapset.New[tile.FacePattern]()
	for _, t := range root.Candidates() {
		allowed.Put(e.flips.Flip(tile.GetFacePattern(t, rootSide), rootSide))
	}
	return allowed
}

// Propagate starts a wave at root with depth 1.
func (e *Engine) Propagate(root *world.Cell) error {
	return e.PropagateChanges(root, 1)
}

// PropagateChanges constrains the six neighbors of root and keeps going
// outward while neighbors lose candidates and the depth bound allows.
// Contradictions do not stop the wave; they are joined into the returned error.
func (e *Engine) PropagateChanges(root *world.Cell, depth int) error {
	e.stats = Stats{}
	origin := root.Coord()

	q := queue.New[workItem]()
	q.Enqueue(workItem{cell: root, depth: depth})

	var errs []error
	for !q.Empty() {
		item := q.Dequeue()
		// An emptied cell allows nothing and would wipe every neighbor.
		if item.cell.Len() == 0 {
			continue
		}
		e.stats.Items++

		for _, side := range world.AllSides() {
			target := e.grid.Neighbor(item.cell, side)
			removed, collapsed, err := e.PropagateSide(item.cell, side, target, side.Opposite(), item.depth)
			if err != nil {
				errs = append(errs, err)
				continue
			}

			next := item.depth
			if collapsed {
				next = 0
			}
			if !removed || next >= e.maxPropagations {
				continue
			}
			// Only collapse chains restart at depth 0, so only they need the radius.
			if collapsed && world.HopDistance(origin, target.Coord()) >= e.maxRadius {
				e.stats.Truncated++
				continue
			}
			q.Enqueue(workItem{cell: target, depth: next + 1})
		}
	}

	if e.stats.Truncated > 0 && e.logger != nil {
		e.logger.Printf("propagation from %v truncated %d times at radius %d", origin, e.stats.Truncated, e.maxRadius)
	}
	return errors.Join(errs...)
}

// PropagateSide constrains target's targetSide face by what root can present
// on rootSide. It reports whether target lost candidates and whether it
// collapsed as a result. Collapsed targets are never touched.
func (e *Engine) PropagateSide(root *world.Cell, rootSide tile.Side, target *world.Cell, targetSide tile.Side, depth int) (removed, collapsed bool, err error) {
	if target.Collapsed() {
		return false, false, nil
	}
	e.stats.Sides++

	removed, err = target.Collapse(e.AllowedPatterns(root, rootSide), targetSide, depth)
	if removed {
		e.stats.Removed++
	}
	if err != nil {
		e.stats.Contradictions++
		if e.logger != nil {
			e.logger.Printf("propagation: %v", err)
		}
		return removed, false, err
	}
	if target.Collapsed() {
		e.stats.Collapses++
		collapsed = true
	}
	return removed, collapsed, nil
}
