package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"terragrid/pkg/engine/world"
	"terragrid/pkg/game/generator"
)

// MaxMessages is how many log lines a session keeps
const MaxMessages = 5

// Session is one generation run: a generator, its identity and a short
// message log for the renderers.
type Session struct {
	ID      uuid.UUID
	Started time.Time

	Generator *generator.Generator

	Messages []string

	// Assets holds every asset that has been placed at least once
	Assets mapset.Set[string]

	Steps int // successful Grow calls

	Contradictions int

	Done bool // the frontier ran out
}

// NewSession wraps gen in a session and subscribes it to the grid's placements
func NewSession(gen *generator.Generator) *Session {
	s := &Session{
		ID:        uuid.New(),
		Started:   time.Now(),
		Generator: gen,
		Messages:  make([]string, 0),
		Assets:    mapset.New[string](),
	}
	gen.Grid().Subscribe(s)
	return s
}

// Seed returns the generator's seed
func (s *Session) Seed() int64 {
	return s.Generator.Seed()
}

// Grid returns the session's grid
func (s *Session) Grid() *world.Grid {
	return s.Generator.Grid()
}

// Place records a placement
func (s *Session) Place(p world.Placement) {
	if p.Template.HasAsset() {
		s.Assets.Put(p.Template.Asset)
	}
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last MaxMessages
	if len(s.Messages) > MaxMessages {
		s.Messages = s.Messages[len(s.Messages)-MaxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// Start places the spawn and grows the initial cells
func (s *Session) Start() error {
	err := s.Generator.GenerateInitial()
	s.record(err)
	if errors.Is(err, generator.ErrNoValidSpawn) {
		return err
	}
	s.AddMessage(fmt.Sprintf("spawned %d cells with seed %d", s.Grid().Placements(), s.Seed()))
	return nil
}

// Step grows one cell. It returns false once nothing is left to grow.
func (s *Session) Step() bool {
	if s.Done {
		return false
	}
	cell, err := s.Generator.Grow()
	if errors.Is(err, generator.ErrNoFrontier) {
		s.Done = true
		s.AddMessage("frontier exhausted")
		return false
	}
	if cell != nil {
		s.Steps++
	}
	s.record(err)
	return true
}

// GenerateNear collapses the cell at c and propagates from it. New
// constraints may open frontier again, so a finished session resumes.
func (s *Session) GenerateNear(c world.Coord) (*world.Cell, error) {
	cell, err := s.Generator.GenerateNear(c.X, c.Y, c.Z)
	s.record(err)
	s.Done = false
	return cell, err
}

// GenerateNearWorld is GenerateNear for a world space position
func (s *Session) GenerateNearWorld(pos mgl32.Vec3, cellSize float32) (*world.Cell, error) {
	return s.GenerateNear(world.CoordAt(pos, cellSize))
}

// record counts and logs the contradictions carried by err
func (s *Session) record(err error) {
	if err == nil {
		return
	}
	n := countContradictions(err)
	if n == 0 {
		s.AddMessage(err.Error())
		return
	}
	s.Contradictions += n
	s.AddMessage(fmt.Sprintf("%d contradictions", n))
}

func countContradictions(err error) int {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		n := 0
		for _, e := range joined.Unwrap() {
			n += countContradictions(e)
		}
		return n
	}
	var ce *world.ContradictionError
	if errors.As(err, &ce) {
		return 1
	}
	return 0
}
