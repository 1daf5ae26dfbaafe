// Package ebiten provides an Ebiten-based top-down viewer that grows the
// terrain while it is displayed.
//
// Each tick grows a few cells. Arrow keys move the camera one cell at a
// time, G generates terrain under the camera, +/- zoom and Space pauses.
// Key bindings live in the input package.
package ebiten

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"terragrid/pkg/engine/input"
	"terragrid/pkg/engine/world"
	"terragrid/pkg/game/devtools"
	"terragrid/pkg/game/renderer"
	"terragrid/pkg/game/state"
)

// EbitenRenderer draws the terrain surface seen from above
type EbitenRenderer struct {
	session *state.Session

	windowWidth  int
	windowHeight int
	tileSize     int

	stepsPerTick int
	paused       bool

	// camera is the world space point at the center of the window
	camera   mgl32.Vec3
	cellSize float32

	messages []string
	keys     []ebiten.Key

	monoFontSource *text.GoTextFaceSource
	cachedMonoFace *text.GoTextFace
}

// New creates a viewer growing stepsPerTick cells per tick. cellSize is the
// world size of one grid cell.
func New(stepsPerTick int, cellSize float32) *EbitenRenderer {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		tileSize:     defaultTileSize,
		stepsPerTick: max(stepsPerTick, 0),
		cellSize:     cellSize,
	}
}

// Init sets up the window and loads the HUD font
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := e.loadFont(); err != nil {
		log.Printf("ebiten: font: %v", err)
	}
}

// Clear is a no-op; Ebiten clears the screen every frame
func (e *EbitenRenderer) Clear() {}

// RenderFrame attaches the session; drawing happens in Draw
func (e *EbitenRenderer) RenderFrame(s *state.Session) {
	e.session = s
}

// ShowMessage displays a message in the HUD
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.messages = append(e.messages, msg)
	if len(e.messages) > state.MaxMessages {
		e.messages = e.messages[len(e.messages)-state.MaxMessages:]
	}
}

// Run attaches s and starts the Ebiten game loop. Quitting from the
// keyboard is not an error.
func (e *EbitenRenderer) Run(s *state.Session) error {
	e.RenderFrame(s)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles input and grows the terrain
func (e *EbitenRenderer) Update() error {
	if e.session == nil {
		return nil
	}
	if err := e.handleInput(); err != nil {
		return err
	}
	if e.paused {
		return nil
	}
	for i := 0; i < e.stepsPerTick; i++ {
		if !e.session.Step() {
			break
		}
	}
	return nil
}

// keyCodes translates Ebiten keys into input binding codes
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyArrowLeft:      "arrow_left",
	ebiten.KeyArrowRight:     "arrow_right",
	ebiten.KeyK:              "k",
	ebiten.KeyJ:              "j",
	ebiten.KeyH:              "h",
	ebiten.KeyL:              "l",
	ebiten.KeyEqual:          "=",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeySpace:          "space",
	ebiten.KeyN:              "n",
	ebiten.KeyG:              "g",
	ebiten.KeyEnter:          "enter",
	ebiten.KeyF12:            "f12",
	ebiten.KeyF9:             "f9",
	ebiten.KeyQ:              "q",
	ebiten.KeyEscape:         "escape",
}

func (e *EbitenRenderer) handleInput() error {
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, key := range e.keys {
		code, ok := keyCodes[key]
		if !ok {
			continue
		}
		intent := input.MapToIntent(input.RawInput{Device: input.DeviceKeyboard, Code: code, Timestamp: time.Now()})
		if err := e.apply(intent.Action); err != nil {
			return err
		}
	}
	return nil
}

// apply performs one action. Grid east is world -z and grid south is world +x.
func (e *EbitenRenderer) apply(a input.Action) error {
	step := e.cellSize
	switch a {
	case input.ActionPanEast:
		e.camera = e.camera.Sub(mgl32.Vec3{0, 0, step})
	case input.ActionPanWest:
		e.camera = e.camera.Add(mgl32.Vec3{0, 0, step})
	case input.ActionPanSouth:
		e.camera = e.camera.Add(mgl32.Vec3{step, 0, 0})
	case input.ActionPanNorth:
		e.camera = e.camera.Sub(mgl32.Vec3{step, 0, 0})
	case input.ActionZoomIn:
		e.tileSize = min(e.tileSize+2, maxTileSize)
	case input.ActionZoomOut:
		e.tileSize = max(e.tileSize-2, minTileSize)
	case input.ActionTogglePause:
		e.paused = !e.paused
	case input.ActionStep:
		e.session.Step()
	case input.ActionGenerateHere:
		// Errors are already in the session log.
		if cell, err := e.session.GenerateNearWorld(e.camera, e.cellSize); err == nil {
			e.session.AddMessage(fmt.Sprintf("generated %v", cell))
		}
	case input.ActionScreenshot:
		name, err := devtools.SaveScreenshotHTML(e.session, world.CoordAt(e.camera, e.cellSize).Y)
		if err != nil {
			e.ShowMessage(err.Error())
		} else {
			e.ShowMessage(gotext.Get("SCREENSHOT_SAVED") + " " + name)
		}
	case input.ActionDump:
		path, err := devtools.DumpGridToFile(e.session, "")
		if err != nil {
			e.ShowMessage(err.Error())
		} else {
			e.ShowMessage(gotext.Get("DUMP_WRITTEN") + " " + path)
		}
	case input.ActionQuit:
		return ebiten.Termination
	}
	return nil
}

// Draw renders the surface columns and the HUD
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.session == nil {
		return
	}

	focus := world.CoordAt(e.camera, e.cellSize)
	ts := float32(e.tileSize)
	for _, col := range renderer.Surface(e.session.Grid()) {
		x, y := e.screenPosition(col.X, col.Z, focus)
		if x+ts < 0 || y+ts < 0 || x > float32(e.windowWidth) || y > float32(e.windowHeight) {
			continue
		}
		vector.DrawFilledRect(screen, x, y, ts-1, ts-1, shade(col.Kind, col.Height-focus.Y), false)
	}

	// Camera marker
	cx, cy := e.screenPosition(focus.X, focus.Z, focus)
	vector.StrokeRect(screen, cx, cy, ts-1, ts-1, 2, colorCamera, false)

	e.drawHUD(screen, focus)
}

// screenPosition returns the top-left pixel of column (x, z) with focus at the center
func (e *EbitenRenderer) screenPosition(x, z int32, focus world.Coord) (float32, float32) {
	ts := float32(e.tileSize)
	sx := float32(e.windowWidth)/2 + float32(x-focus.X)*ts - ts/2
	sy := float32(e.windowHeight)/2 + float32(z-focus.Z)*ts - ts/2
	return sx, sy
}

// shade brightens columns above the camera height and darkens those below
func shade(k renderer.Kind, height int32) color.RGBA {
	base, ok := kindColors[k]
	if !ok {
		base = colorSubtle
	}
	adjust := func(c uint8) uint8 {
		v := int32(c) + height*shadeStep
		return uint8(min(max(v, 20), 255))
	}
	return color.RGBA{adjust(base.R), adjust(base.G), adjust(base.B), base.A}
}

func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, focus world.Coord) {
	if e.monoFontSource == nil {
		return
	}
	st := e.session.Grid().Stats()
	lines := []string{
		fmt.Sprintf("%s %d  %s %d/%d  %s %d",
			gotext.Get("SEED"), e.session.Seed(),
			gotext.Get("COLLAPSED"), st.Collapsed, st.Cells,
			gotext.Get("CONTRADICTIONS"), st.Contradictions),
		fmt.Sprintf("%s %v  %s %.1f,%.1f,%.1f",
			gotext.Get("CAMERA"), focus, gotext.Get("WORLD"), e.camera.X(), e.camera.Y(), e.camera.Z()),
	}
	if e.paused {
		lines = append(lines, gotext.Get("PAUSED"))
	}
	if e.session.Done {
		lines = append(lines, gotext.Get("FRONTIER_EXHAUSTED"))
	}
	lines = append(lines, e.session.Messages...)
	lines = append(lines, e.messages...)

	face := e.getMonoFontFace()
	lineHeight := float32(hudFontSize + 4)
	panelHeight := lineHeight*float32(len(lines)) + 2*hudPadding
	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), panelHeight, colorPanel, false)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudPadding, float64(hudPadding+float32(i)*lineHeight))
		if i < 2 {
			op.ColorScale.ScaleWithColor(colorText)
		} else {
			op.ColorScale.ScaleWithColor(colorSubtle)
		}
		text.Draw(screen, line, face, op)
	}
}

// Layout follows the window size so resizing shows more terrain
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
