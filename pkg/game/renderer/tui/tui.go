// Package tui prints horizontal slices of the terrain grid to a terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"terragrid/pkg/engine/terminal"
	"terragrid/pkg/game/renderer"
	"terragrid/pkg/game/state"
)

// layerLabelWidth is the space reserved left of each row for "z=-12 "
const layerLabelWidth = 7

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out    io.Writer
	layers []int32

	colorHeader color.Style
	colorSubtle color.Style
	colorDenied color.Style
}

// New creates a TUI renderer printing the given heights to out (y=0 if none)
func New(out io.Writer, layers ...int32) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	if len(layers) == 0 {
		layers = []int32{0}
	}
	return &TUIRenderer{out: out, layers: layers}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	renderer.InitColors()
	t.colorHeader = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
}

// Clear clears the terminal screen. Output that is not a terminal is left alone.
func (t *TUIRenderer) Clear() {
	if terminal.IsTerminal(t.out) {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, renderer.FormatString("%s", msg))
}

// RenderFrame prints the session header, every configured layer, a
// status line and the messages pane.
func (t *TUIRenderer) RenderFrame(s *state.Session) {
	fmt.Fprint(t.out, t.colorHeader.Sprintf("%s %s  %s %d\n\n",
		gotext.Get("SESSION"), s.ID, gotext.Get("SEED"), s.Seed()))

	width, _ := terminal.SizeOf(t.out)
	for _, y := range t.layers {
		t.PrintLayer(s, y, width)
	}

	t.printStatusBar(s)
	t.printMessagesPane(s, width)
}

// PrintLayer prints the slice at height y, clipped to width columns
func (t *TUIRenderer) PrintLayer(s *state.Session, y int32, width int) {
	layer := renderer.SliceLayer(s.Grid(), y)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(renderer.FormatString("GT{LAYER} y=%d", y)))
	if len(layer.Cells) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("EMPTY_GRID")))
		fmt.Fprintln(t.out)
		return
	}

	cols := width - layerLabelWidth
	for i, row := range layer.Cells {
		var b strings.Builder
		fmt.Fprintf(&b, "%*s ", layerLabelWidth-1, fmt.Sprintf("z=%d", layer.Lo.Z+int32(i)))
		for j, cell := range row {
			if cols > 0 && j >= cols {
				break
			}
			b.WriteString(renderer.RenderCell(cell))
		}
		fmt.Fprintln(t.out, b.String())
	}
	fmt.Fprintln(t.out)
}

// printStatusBar renders the cell counts
func (t *TUIRenderer) printStatusBar(s *state.Session) {
	st := s.Grid().Stats()
	fmt.Fprint(t.out, t.colorSubtle.Sprint(gotext.Get("CELLS")+": "))
	fmt.Fprintf(t.out, "%d  %s %d  %s %d  ",
		st.Cells, gotext.Get("COLLAPSED"), st.Collapsed, gotext.Get("OPEN"), st.Open)
	if st.Contradictions > 0 {
		fmt.Fprint(t.out, t.colorDenied.Sprintf("%s %d", gotext.Get("CONTRADICTIONS"), st.Contradictions))
	}
	fmt.Fprintln(t.out)
	fmt.Fprintf(t.out, "%s %d\n", t.colorSubtle.Sprint(gotext.Get("ASSETS")+":"), s.Assets.Size())
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(s *state.Session, width int) {
	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := max((width-labelLen)/2, 1)
	rightLen := max(width-sideLen-labelLen, 1)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(s.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
	} else {
		for _, msg := range s.Messages {
			fmt.Fprintf(t.out, "  %s\n", renderer.FormatString("%s", msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
