package ebiten

import (
	"image/color"

	"terragrid/pkg/game/renderer"
)

// Color palette for the viewer
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorPanel         = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorCamera        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorFloor         = color.RGBA{90, 160, 90, 255}
	colorCeiling       = color.RGBA{200, 180, 100, 255} // Tan
	colorSolid         = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorSlope         = color.RGBA{100, 190, 200, 255}
	colorContradiction = color.RGBA{255, 80, 80, 255} // Bright red
)

// Layout constants
const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 720
	defaultTileSize     = 12
	minTileSize         = 4
	maxTileSize         = 48

	hudFontSize = 14.0
	hudPadding  = 8

	// shadeStep is how much a column brightens or darkens per cell of height
	shadeStep = 12
)

var kindColors = map[renderer.Kind]color.RGBA{
	renderer.KindFloor:         colorFloor,
	renderer.KindCeiling:       colorCeiling,
	renderer.KindSolid:         colorSolid,
	renderer.KindSlope:         colorSlope,
	renderer.KindContradiction: colorContradiction,
}
