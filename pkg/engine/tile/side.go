package tile

// Side names one face of a tile cube.
type Side int

// Side constants
const (
	Top Side = iota
	Bottom
	North
	South
	East
	West
)

// AllSides returns the six faces in propagation order
func AllSides() []Side {
	return []Side{Top, Bottom, North, South, East, West}
}

// String returns the string representation of a side
func (s Side) String() string {
	switch s {
	case Top:
		return "TOP"
	case Bottom:
		return "BOTTOM"
	case North:
		return "NORTH"
	case South:
		return "SOUTH"
	case East:
		return "EAST"
	case West:
		return "WEST"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the side is one of the six cube faces
func (s Side) IsValid() bool {
	return s >= Top && s <= West
}

// IsVertical reports whether the face is horizontal in space (TOP or BOTTOM),
// i.e. it connects cells stacked along the vertical axis.
func (s Side) IsVertical() bool {
	return s == Top || s == Bottom
}

// Opposite returns the face a neighbor presents across this one
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return s
	}
}
