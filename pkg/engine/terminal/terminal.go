package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// fd returns the file descriptor behind w, if w is an *os.File
func fd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	return int(f.Fd()), true
}

// IsTerminal returns true if w writes to a terminal
func IsTerminal(w io.Writer) bool {
	n, ok := fd(w)
	return ok && term.IsTerminal(n)
}

// SizeOf returns the width and height of the terminal behind w.
// Falls back to defaults for anything that is not a terminal.
func SizeOf(w io.Writer) (width, height int) {
	n, ok := fd(w)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(n)
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current width of stdout
func GetWidth() int {
	width, _ := SizeOf(os.Stdout)
	return width
}
