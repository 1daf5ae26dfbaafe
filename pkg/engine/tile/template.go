package tile

import (
	"fmt"
	"strings"
)

// CornerCount is the number of corners of a tile cube.
const CornerCount = 8

// Corner indices, east to west, north to south, top to bottom.
const (
	TopNorthEast = iota
	TopNorthWest
	TopSouthEast
	TopSouthWest
	BottomNorthEast
	BottomNorthWest
	BottomSouthEast
	BottomSouthWest
)

// Corners holds the material of every cube corner, indexed by the corner constants.
type Corners [CornerCount]Material

// ParseCorners parses an 8 character corner tag string such as "00001111".
func ParseCorners(tags string) (Corners, error) {
	var c Corners
	if len(tags) != CornerCount {
		return c, fmt.Errorf("%w: %q has %d tags, want %d", ErrInvalidCorners, tags, len(tags), CornerCount)
	}
	for i := 0; i < CornerCount; i++ {
		m, err := ParseMaterial(tags[i])
		if err != nil {
			return c, fmt.Errorf("corners %q: %w", tags, err)
		}
		c[i] = m
	}
	return c, nil
}

// MustParseCorners is like ParseCorners but panics on malformed input.
// Intended for built-in tables.
func MustParseCorners(tags string) Corners {
	c, err := ParseCorners(tags)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the corner tag string
func (c Corners) String() string {
	var b strings.Builder
	b.Grow(CornerCount)
	for _, m := range c {
		b.WriteByte(m.Tag())
	}
	return b.String()
}

// Top returns the four top corners
func (c Corners) Top() [4]Material {
	return [4]Material{c[TopNorthEast], c[TopNorthWest], c[TopSouthEast], c[TopSouthWest]}
}

// Bottom returns the four bottom corners
func (c Corners) Bottom() [4]Material {
	return [4]Material{c[BottomNorthEast], c[BottomNorthWest], c[BottomSouthEast], c[BottomSouthWest]}
}

// FacePattern is the projection of a template's corners onto one face.
type FacePattern [4]Material

// String returns the tag string of the pattern
func (p FacePattern) String() string {
	var b [4]byte
	for i, m := range p {
		b[i] = m.Tag()
	}
	return string(b[:])
}

// faceCorners lists, per side, which corners make up the face and in which order.
var faceCorners = [...][4]int{
	Top:    {0, 1, 2, 3},
	Bottom: {6, 7, 4, 5},
	North:  {1, 0, 5, 4},
	South:  {2, 3, 6, 7},
	East:   {3, 1, 7, 5},
	West:   {0, 2, 4, 6},
}

// Template is an immutable tile shape with an optional visual asset.
type Template struct {
	Corners Corners

	// Asset is an opaque reference to the visual mesh. Empty means nothing is
	// rendered (an "air" template, for example).
	Asset string

	// Index is the position of the template in its catalog.
	Index int
}

// HasAsset returns true if the template has something to render
func (t *Template) HasAsset() bool {
	return t.Asset != ""
}

// String returns the corner string of the template
func (t *Template) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.Corners.String()
}

// Face returns the pattern of the template on the given side.
func (t *Template) Face(side Side) FacePattern {
	return GetFacePattern(t, side)
}

// GetFacePattern extracts the four corners touching the given face.
func GetFacePattern(t *Template, side Side) FacePattern {
	if !side.IsValid() {
		panic(fmt.Sprintf("tile: invalid side %d", side))
	}
	idx := faceCorners[side]
	return FacePattern{
		t.Corners[idx[0]],
		t.Corners[idx[1]],
		t.Corners[idx[2]],
		t.Corners[idx[3]],
	}
}
