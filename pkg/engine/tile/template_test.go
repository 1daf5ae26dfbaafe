package tile

import (
	"errors"
	"testing"
)

// pattern builds a FacePattern from a 4 character tag string.
func pattern(t *testing.T, tags string) FacePattern {
	t.Helper()
	var p FacePattern
	if len(tags) != 4 {
		t.Fatalf("pattern %q: want 4 tags", tags)
	}
	for i := 0; i < 4; i++ {
		m, err := ParseMaterial(tags[i])
		if err != nil {
			t.Fatalf("pattern %q: %v", tags, err)
		}
		p[i] = m
	}
	return p
}

func TestParseCorners_RoundTrip(t *testing.T) {
	for _, s := range []string{"00000000", "00001111", "11110000", "01234567", "99999999"} {
		c, err := ParseCorners(s)
		if err != nil {
			t.Fatalf("ParseCorners(%q) error: %v", s, err)
		}
		if got := c.String(); got != s {
			t.Errorf("ParseCorners(%q).String() = %q", s, got)
		}
	}
}

func TestParseCorners_Invalid(t *testing.T) {
	for _, s := range []string{"", "0000111", "000011111", "0000111a", "0000 111"} {
		if _, err := ParseCorners(s); !errors.Is(err, ErrInvalidCorners) {
			t.Errorf("ParseCorners(%q) error = %v, want ErrInvalidCorners", s, err)
		}
	}
}

func TestCorners_TopBottom(t *testing.T) {
	c := MustParseCorners("01234567")
	if got, want := c.Top(), [4]Material{0, 1, 2, 3}; got != want {
		t.Errorf("Top() = %v, want %v", got, want)
	}
	if got, want := c.Bottom(), [4]Material{4, 5, 6, 7}; got != want {
		t.Errorf("Bottom() = %v, want %v", got, want)
	}
}

func TestGetFacePattern_CornerOrder(t *testing.T) {
	// Material ids equal corner indices, so the face string is the index list.
	tmpl := &Template{Corners: MustParseCorners("01234567")}

	tests := []struct {
		side Side
		want string
	}{
		{Top, "0123"},
		{Bottom, "6745"},
		{North, "1054"},
		{South, "2367"},
		{East, "3175"},
		{West, "0246"},
	}

	for _, tc := range tests {
		if got := GetFacePattern(tmpl, tc.side).String(); got != tc.want {
			t.Errorf("GetFacePattern(%s) = %s, want %s", tc.side, got, tc.want)
		}
		if got := tmpl.Face(tc.side).String(); got != tc.want {
			t.Errorf("Face(%s) = %s, want %s", tc.side, got, tc.want)
		}
	}
}

func TestGetFacePattern_InvalidSidePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("GetFacePattern with invalid side did not panic")
		}
	}()
	GetFacePattern(&Template{}, Side(42))
}

func TestFlipFacePattern_Canonical(t *testing.T) {
	p := pattern(t, "0123")
	if got := FlipFacePattern(p, Top).String(); got != "1032" {
		t.Errorf("vertical flip = %s, want 1032", got)
	}
	if got := FlipFacePattern(p, Bottom).String(); got != "1032" {
		t.Errorf("vertical flip (BOTTOM) = %s, want 1032", got)
	}
	for _, side := range []Side{North, South, East, West} {
		if got := FlipFacePattern(p, side).String(); got != "2301" {
			t.Errorf("horizontal flip (%s) = %s, want 2301", side, got)
		}
	}
}

func TestFlipFacePattern_Involution(t *testing.T) {
	tables := map[string]FlipTable{"canonical": CanonicalFlips, "mirror": MirrorFlips}

	for name, table := range tables {
		for _, side := range []Side{Top, North} { // one per face category
			for a := Material(0); a <= MaxMaterial; a++ {
				for b := Material(0); b <= MaxMaterial; b++ {
					for c := Material(0); c <= MaxMaterial; c++ {
						for d := Material(0); d <= MaxMaterial; d++ {
							p := FacePattern{a, b, c, d}
							if got := table.Flip(table.Flip(p, side), side); got != p {
								t.Fatalf("%s: flip twice on %s of %s = %s", name, side, p, got)
							}
						}
					}
				}
			}
		}
	}
}

func TestConnectable(t *testing.T) {
	floor := &Template{Corners: MustParseCorners("00001111")}

	tests := []struct {
		name     string
		table    FlipTable
		side     Side
		neighbor string
		want     bool
	}{
		{"canonical north accepts swapped rows", CanonicalFlips, North, "1100", true},
		{"canonical north rejects same rows", CanonicalFlips, North, "0011", false},
		{"mirror north accepts same rows", MirrorFlips, North, "0011", true},
		{"canonical top accepts air", CanonicalFlips, Top, "0000", true},
		{"canonical bottom accepts solid", CanonicalFlips, Bottom, "1111", true},
		{"canonical bottom rejects air", CanonicalFlips, Bottom, "0000", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.table.Connectable(floor, tc.side, pattern(t, tc.neighbor)); got != tc.want {
				t.Errorf("Connectable(%s, %s) = %v, want %v", tc.side, tc.neighbor, got, tc.want)
			}
		})
	}

	if !Connectable(floor, Top, pattern(t, "0000")) {
		t.Error("package Connectable should use the canonical table")
	}
}

func TestSide_Opposite(t *testing.T) {
	for _, s := range AllSides() {
		if s.Opposite().Opposite() != s {
			t.Errorf("%s.Opposite().Opposite() = %s", s, s.Opposite().Opposite())
		}
		if s.Opposite() == s {
			t.Errorf("%s.Opposite() returned itself", s)
		}
		if s.IsVertical() != s.Opposite().IsVertical() {
			t.Errorf("%s and its opposite disagree on IsVertical", s)
		}
	}
	if Side(9).IsValid() {
		t.Error("Side(9).IsValid() = true")
	}
}
