package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the viewer.
type Action int

const (
	ActionNone Action = iota

	// Camera
	ActionPanNorth
	ActionPanSouth
	ActionPanWest
	ActionPanEast
	ActionZoomIn
	ActionZoomOut

	// Generation
	ActionTogglePause
	ActionStep         // grow a single cell
	ActionGenerateHere // collapse the cell under the camera

	// Meta
	ActionScreenshot
	ActionDump
	ActionQuit
)

// Intent is the high-level description of what the user wants to do.
type Intent struct {
	Action Action
}

// RawInput is an event emitted directly from an input device.
// Code is a device independent key name (e.g. "arrow_up", "g").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// bindings maps raw codes to actions. Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"arrow_up":    ActionPanNorth,
	"k":           ActionPanNorth,
	"arrow_down":  ActionPanSouth,
	"j":           ActionPanSouth,
	"arrow_left":  ActionPanWest,
	"h":           ActionPanWest,
	"arrow_right": ActionPanEast,
	"l":           ActionPanEast,

	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,

	"space": ActionTogglePause,
	"n":     ActionStep,
	"g":     ActionGenerateHere,
	"enter": ActionGenerateHere,

	"f12":    ActionScreenshot,
	"f9":     ActionDump,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent applies the current bindings to a raw input.
func MapToIntent(ev RawInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionPanNorth:
		return "Pan North"
	case ActionPanSouth:
		return "Pan South"
	case ActionPanWest:
		return "Pan West"
	case ActionPanEast:
		return "Pan East"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionTogglePause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionGenerateHere:
		return "Generate Here"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDump:
		return "Dump Grid"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text does not flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys stay bound to panning.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if isArrow(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !isArrow(code) {
		bindings[code] = action
	}
}

func isArrow(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right":
		return true
	}
	return false
}
