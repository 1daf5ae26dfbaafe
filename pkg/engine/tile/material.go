// Package tile provides the immutable tile model used by the solver: corner
// materials, tile templates, face patterns and the catalog they are loaded into.
package tile

import "fmt"

// Material is the style of a single cube corner.
type Material uint8

// Named materials. Tags '2'..'9' map to further unnamed materials.
const (
	Air   Material = iota // '0', nothing rendered
	Solid                 // '1', ground
)

// MaxMaterial is the highest material a corner tag can express.
const MaxMaterial Material = 9

// ParseMaterial converts a single corner tag character into a Material.
func ParseMaterial(tag byte) (Material, error) {
	if tag < '0' || tag > '0'+byte(MaxMaterial) {
		return 0, fmt.Errorf("%w: unknown corner tag %q", ErrInvalidCorners, tag)
	}
	return Material(tag - '0'), nil
}

// Tag returns the corner tag character for the material.
func (m Material) Tag() byte {
	return '0' + byte(m)
}

// String returns the string representation of a material
func (m Material) String() string {
	switch m {
	case Air:
		return "air"
	case Solid:
		return "solid"
	default:
		if m <= MaxMaterial {
			return fmt.Sprintf("material%d", uint8(m))
		}
		return "unknown"
	}
}
