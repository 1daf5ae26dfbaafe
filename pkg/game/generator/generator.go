// Package generator grows terrain outward from a spawn cell by repeatedly
// collapsing cells and propagating their constraints.
package generator

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"terragrid/pkg/engine/propagation"
	"terragrid/pkg/engine/tile"
	"terragrid/pkg/engine/world"
)

var (
	ErrNoValidSpawn = errors.New("generator: no template satisfies the spawn predicate")
	ErrNoFrontier   = errors.New("generator: no frontier cell left to grow")
)

// DefaultInitialCells is how many cells GenerateInitial collapses, spawn included
const DefaultInitialCells = 10

// Config holds generation settings
type Config struct {
	Seed            int64 // 0 picks a time based seed
	MaxPropagations int
	MaxRadius       int
	InitialCells    int
	Flips           tile.FlipTable
	Spawn           SpawnPredicate
	Logger          *log.Logger

	// LogPlacements logs every placement, noting templates without an asset
	LogPlacements bool
}

// DefaultConfig returns the settings used when a field is left zero
func DefaultConfig() Config {
	return Config{
		MaxPropagations: propagation.DefaultMaxPropagations,
		MaxRadius:       propagation.DefaultMaxRadius,
		InitialCells:    DefaultInitialCells,
		Flips:           tile.CanonicalFlips,
		Spawn:           FlatFloor,
	}
}

// Generator owns a grid and is the only thing that forces collapses on it.
// It is not safe for concurrent use.
type Generator struct {
	catalog *tile.Catalog
	grid    *world.Grid
	engine  *propagation.Engine
	rng     *rand.Rand
	seed    int64
	cfg     Config
	logger  *log.Logger
}

// New creates a generator over catalog. Zero fields of cfg take their defaults.
func New(catalog *tile.Catalog, cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.MaxPropagations <= 0 {
		cfg.MaxPropagations = def.MaxPropagations
	}
	if cfg.MaxRadius <= 0 {
		cfg.MaxRadius = def.MaxRadius
	}
	if cfg.InitialCells <= 0 {
		cfg.InitialCells = def.InitialCells
	}
	if cfg.Flips == (tile.FlipTable{}) {
		cfg.Flips = def.Flips
	}
	if cfg.Spawn == nil {
		cfg.Spawn = def.Spawn
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	grid := world.NewGrid(catalog)
	g := &Generator{
		catalog: catalog,
		grid:    grid,
		engine: propagation.New(grid,
			propagation.WithMaxPropagations(cfg.MaxPropagations),
			propagation.WithMaxRadius(cfg.MaxRadius),
			propagation.WithFlipTable(cfg.Flips),
			propagation.WithLogger(logger),
		),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		seed:   cfg.Seed,
		cfg:    cfg,
		logger: logger,
	}
	if cfg.LogPlacements {
		grid.Subscribe(world.PlacementFunc(g.logPlacement))
	}
	return g
}

// Seed returns the seed the generator's random source was created with
func (g *Generator) Seed() int64 {
	return g.seed
}

// Grid returns the generated grid
func (g *Generator) Grid() *world.Grid {
	return g.grid
}

// Engine returns the propagation engine
func (g *Generator) Engine() *propagation.Engine {
	return g.engine
}

// Config returns the effective configuration
func (g *Generator) Config() Config {
	return g.cfg
}

// InitializeSpawn collapses the origin to a random template accepted by the
// spawn predicate and propagates from it.
func (g *Generator) InitializeSpawn() error {
	spawns := g.catalog.Filter(g.cfg.Spawn)
	if len(spawns) == 0 {
		return ErrNoValidSpawn
	}
	t := spawns[g.rng.Intn(len(spawns))]

	origin := g.grid.GetOrCreate(world.Origin)
	if err := origin.CollapseTo(t); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	g.logger.Printf("spawn %v at %v", t, origin.Coord())
	return g.engine.Propagate(origin)
}

// Frontier returns the cells next to collapsed terrain that can still be
// grown: open cells first reached at depth 1, in creation order.
func (g *Generator) Frontier() []*world.Cell {
	var frontier []*world.Cell
	g.grid.ForEachCell(func(cell *world.Cell) {
		if !cell.Collapsed() && cell.MinDepth() == 1 && cell.Len() > 0 {
			frontier = append(frontier, cell)
		}
	})
	return frontier
}

// Grow collapses one random frontier cell and propagates from it. The cell
// is returned even when propagation hit contradictions.
func (g *Generator) Grow() (*world.Cell, error) {
	frontier := g.Frontier()
	if len(frontier) == 0 {
		return nil, ErrNoFrontier
	}
	cell := frontier[g.rng.Intn(len(frontier))]
	if _, err := cell.CollapseRandomly(g.rng); err != nil {
		return nil, err
	}
	return cell, g.engine.Propagate(cell)
}

// GenerateNear collapses the cell at (x, y, z), creating it if needed, and
// propagates from it. An already collapsed cell is returned unchanged.
func (g *Generator) GenerateNear(x, y, z int32) (*world.Cell, error) {
	cell := g.grid.GetOrCreate(world.Coord{X: x, Y: y, Z: z})
	if cell.Collapsed() {
		return cell, nil
	}
	if _, err := cell.CollapseRandomly(g.rng); err != nil {
		return cell, err
	}
	return cell, g.engine.Propagate(cell)
}

// GenerateNearWorld is GenerateNear for a world space position, such as
// where a player is standing.
func (g *Generator) GenerateNearWorld(pos mgl32.Vec3, cellSize float32) (*world.Cell, error) {
	c := world.CoordAt(pos, cellSize)
	return g.GenerateNear(c.X, c.Y, c.Z)
}

// GenerateInitial places the spawn and grows InitialCells-1 more cells.
// Running out of frontier ends it early without an error. Contradictions
// are collected and returned together.
func (g *Generator) GenerateInitial() error {
	if err := g.InitializeSpawn(); err != nil {
		if errors.Is(err, ErrNoValidSpawn) {
			return err
		}
		return g.growInitial(err)
	}
	return g.growInitial(nil)
}

func (g *Generator) growInitial(first error) error {
	errs := []error{first}
	for i := 1; i < g.cfg.InitialCells; i++ {
		_, err := g.Grow()
		if errors.Is(err, ErrNoFrontier) {
			g.logger.Printf("frontier exhausted after %d cells", i)
			break
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (g *Generator) logPlacement(p world.Placement) {
	if !p.Template.HasAsset() {
		g.logger.Printf("placed %v at %v: no mesh assigned", p.Template, p.Coord)
		return
	}
	g.logger.Printf("placed %s at %v", p.Template.Asset, p.Coord)
}
