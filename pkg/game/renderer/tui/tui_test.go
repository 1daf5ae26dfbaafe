package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"terragrid/pkg/engine/tile"
	"terragrid/pkg/game/generator"
	"terragrid/pkg/game/renderer"
	"terragrid/pkg/game/state"
)

func newSession(t *testing.T) *state.Session {
	t.Helper()
	c, err := tile.LoadCatalog([]string{"00001111"}, []string{"floor"})
	if err != nil {
		t.Fatal(err)
	}
	s := state.NewSession(generator.New(c, generator.Config{Seed: 3}))
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRenderFrame(t *testing.T) {
	s := newSession(t)
	var buf bytes.Buffer
	r := New(&buf, 0, 5)
	r.Init()
	r.RenderFrame(s)

	out := color.ClearCode(buf.String())
	if !strings.Contains(out, s.ID.String()) {
		t.Error("frame does not show the session id")
	}
	// The spawn and its six neighbors exist; three of them sit on layer 0
	// in the middle row.
	if !strings.Contains(out, "z=0 "+renderer.IconFloor+renderer.IconFloor+renderer.IconFloor) {
		t.Errorf("layer 0 middle row missing:\n%s", out)
	}
	if !strings.Contains(out, "spawned") {
		t.Errorf("messages pane missing the spawn message:\n%s", out)
	}
}

func TestPrintLayer_Clips(t *testing.T) {
	s := newSession(t)
	var buf bytes.Buffer
	r := New(&buf)
	r.Init()
	r.PrintLayer(s, 0, layerLabelWidth+2)

	for _, line := range strings.Split(color.ClearCode(buf.String()), "\n") {
		if !strings.Contains(line, "z=") {
			continue
		}
		icons := []rune(strings.TrimSpace(line[layerLabelWidth:]))
		if len(icons) > 2 {
			t.Errorf("row %q not clipped to 2 cells", line)
		}
	}
}

func TestPrintLayer_HeaderWithoutLocale(t *testing.T) {
	s := newSession(t)
	var buf bytes.Buffer
	New(&buf).PrintLayer(s, -2, 80)

	header, _, _ := strings.Cut(color.ClearCode(buf.String()), "\n")
	if !strings.HasSuffix(header, " y=-2") || strings.Contains(header, "%!") {
		t.Errorf("layer header = %q", header)
	}
}

func TestClear_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Clear()
	if buf.Len() != 0 {
		t.Error("Clear wrote escape codes to a non-terminal")
	}
}
