package tile

// Permutation reorders the four positions of a face pattern.
type Permutation [4]int

// Apply returns the pattern with position i taken from p[perm[i]].
func (perm Permutation) Apply(p FacePattern) FacePattern {
	return FacePattern{p[perm[0]], p[perm[1]], p[perm[2]], p[perm[3]]}
}

// FlipTable describes how a face pattern looks from the neighbor on the other
// side of the shared face. TOP/BOTTOM faces use Vertical, the four side faces
// use Horizontal.
type FlipTable struct {
	Vertical   Permutation
	Horizontal Permutation
}

var (
	// CanonicalFlips is the default convention.
	CanonicalFlips = FlipTable{
		Vertical:   Permutation{1, 0, 3, 2},
		Horizontal: Permutation{2, 3, 0, 1},
	}

	// MirrorFlips swaps the two permutations. It suits catalogs authored
	// with mirrored side faces.
	MirrorFlips = FlipTable{
		Vertical:   Permutation{2, 3, 0, 1},
		Horizontal: Permutation{1, 0, 3, 2},
	}
)

// Flip permutes the pattern for the given side.
func (ft FlipTable) Flip(p FacePattern, side Side) FacePattern {
	if side.IsVertical() {
		return ft.Vertical.Apply(p)
	}
	return ft.Horizontal.Apply(p)
}

// Connectable reports whether the template's face on side matches the
// pattern a neighbor presents on the shared face.
func (ft FlipTable) Connectable(t *Template, side Side, neighbor FacePattern) bool {
	return ft.Flip(neighbor, side) == GetFacePattern(t, side)
}

// FlipFacePattern flips a pattern using CanonicalFlips.
func FlipFacePattern(p FacePattern, side Side) FacePattern {
	return CanonicalFlips.Flip(p, side)
}

// Connectable reports whether t can sit against a neighbor presenting
// neighbor on side, using CanonicalFlips.
func Connectable(t *Template, side Side, neighbor FacePattern) bool {
	return CanonicalFlips.Connectable(t, side, neighbor)
}
