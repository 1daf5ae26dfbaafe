package renderer

import (
	"terragrid/pkg/game/state"
)

// Renderer defines the interface for terrain display backends.
// Implementations include the terminal layer printer and the Ebiten viewer.
type Renderer interface {
	// Init prepares colors, fonts or windows
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame draws the session's grid, status and messages
	RenderFrame(s *state.Session)

	// ShowMessage displays a message outside the session log
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(s *state.Session) {
	if Current != nil {
		Current.RenderFrame(s)
	}
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
