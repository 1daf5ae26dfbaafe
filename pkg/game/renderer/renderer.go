package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"terragrid/pkg/engine/tile"
	"terragrid/pkg/engine/world"
)

// Kind is the broad shape of a cell, used to pick an icon and color
type Kind int

const (
	KindVoid Kind = iota // no cell at this coordinate
	KindOpen             // still has several candidates
	KindAir
	KindFloor
	KindCeiling
	KindSolid
	KindSlope
	KindContradiction
)

// Icon constants for layer slices
const (
	IconVoid          = " "
	IconOpen          = "·"
	IconAir           = " "
	IconFloor         = "▁"
	IconCeiling       = "▔"
	IconSolid         = "█"
	IconSlope         = "◢"
	IconContradiction = "✗"
)

var icons = map[Kind]string{
	KindVoid:          IconVoid,
	KindOpen:          IconOpen,
	KindAir:           IconAir,
	KindFloor:         IconFloor,
	KindCeiling:       IconCeiling,
	KindSolid:         IconSolid,
	KindSlope:         IconSlope,
	KindContradiction: IconContradiction,
}

// Icon returns the single-width icon for a kind
func (k Kind) Icon() string {
	return icons[k]
}

var (
	ColorOpen          color.Style
	ColorFloor         color.Style
	ColorCeiling       color.Style
	ColorSolid         color.Style
	ColorSlope         color.Style
	ColorContradiction color.Style
	ColorSubtle        color.Style
	ColorAction        color.Style
	ColorAsset         color.Style

	regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([a-z A-Z0-9_,:./-]+)}`)
)

// dynamicGet looks up translation keys taken from markup at runtime.
var dynamicGet = gotext.Get

// InitColors initializes the color styles
func InitColors() {
	ColorOpen = color.Style{color.FgGray}
	ColorFloor = color.Style{color.FgGreen}
	ColorCeiling = color.Style{color.FgYellow}
	ColorSolid = color.Style{color.FgWhite}
	ColorSlope = color.Style{color.FgCyan, color.OpBold}
	ColorContradiction = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}
	ColorAsset = color.Style{color.FgGreen, color.OpBold}
}

// StyleFor returns the color style of a kind
func StyleFor(k Kind) color.Style {
	switch k {
	case KindOpen:
		return ColorOpen
	case KindFloor:
		return ColorFloor
	case KindCeiling:
		return ColorCeiling
	case KindSolid:
		return ColorSolid
	case KindSlope:
		return ColorSlope
	case KindContradiction:
		return ColorContradiction
	default:
		return color.Style{}
	}
}

// FormatString formats a string with markup: GT{key} translates,
// ASSET{path} and ACTION{text} are colored.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	for _, match := range regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ASSET":
			val = ColorAsset.Sprint(operand)
		case "ACTION":
			val = ColorAction.Sprint(operand)
		default:
			continue
		}

		ret = strings.ReplaceAll(ret, match[0], val)
	}

	return ret
}

// TemplateKind classifies a template by where its air corners are
func TemplateKind(t *tile.Template) Kind {
	top, bottom := airCount(t.Corners.Top()), airCount(t.Corners.Bottom())
	switch {
	case top == 4 && bottom == 4:
		return KindAir
	case top == 0 && bottom == 0:
		return KindSolid
	case top == 4 && bottom == 0:
		return KindFloor
	case top == 0 && bottom == 4:
		return KindCeiling
	default:
		return KindSlope
	}
}

func airCount(corners [4]tile.Material) int {
	n := 0
	for _, m := range corners {
		if m == tile.Air {
			n++
		}
	}
	return n
}

// CellKind classifies a cell; nil is KindVoid
func CellKind(c *world.Cell) Kind {
	if c == nil {
		return KindVoid
	}
	switch c.State() {
	case world.StateCollapsed:
		return TemplateKind(c.Template())
	case world.StateContradiction:
		return KindContradiction
	default:
		return KindOpen
	}
}

// RenderCell returns the colored icon of a cell
func RenderCell(c *world.Cell) string {
	k := CellKind(c)
	return StyleFor(k).Sprint(k.Icon())
}

// Layer is a horizontal slice of the grid at height Y. Rows run north to
// south (z ascending) and columns west to east (x ascending).
type Layer struct {
	Y      int32
	Lo, Hi world.Coord
	Cells  [][]*world.Cell
}

// SliceLayer returns the layer at height y spanning the grid's horizontal
// bounds. Missing cells are nil; no cells are created.
func SliceLayer(grid *world.Grid, y int32) Layer {
	lo, hi, ok := grid.Bounds()
	layer := Layer{Y: y, Lo: lo, Hi: hi}
	if !ok {
		return layer
	}
	for z := lo.Z; z <= hi.Z; z++ {
		row := make([]*world.Cell, 0, hi.X-lo.X+1)
		for x := lo.X; x <= hi.X; x++ {
			cell, _ := grid.Lookup(world.Coord{X: x, Y: y, Z: z})
			row = append(row, cell)
		}
		layer.Cells = append(layer.Cells, row)
	}
	return layer
}

// Rows renders the layer as plain icon strings, clipped to width columns
func (l Layer) Rows(width int) []string {
	rows := make([]string, 0, len(l.Cells))
	for _, row := range l.Cells {
		var b strings.Builder
		for i, cell := range row {
			if width > 0 && i >= width {
				break
			}
			b.WriteString(CellKind(cell).Icon())
		}
		rows = append(rows, b.String())
	}
	return rows
}

// Column is the surface of one (x, z) column seen from above
type Column struct {
	X, Z   int32
	Height int32
	Kind   Kind
}

// Surface returns, for every (x, z) that has a collapsed non-air cell, the
// highest such cell. Columns come out in grid creation order.
func Surface(grid *world.Grid) []Column {
	type key struct{ x, z int32 }
	index := make(map[key]int)
	var cols []Column

	grid.ForEachCell(func(cell *world.Cell) {
		k := CellKind(cell)
		if cell.State() != world.StateCollapsed || k == KindAir {
			return
		}
		c := cell.Coord()
		if i, ok := index[key{c.X, c.Z}]; ok {
			if c.Y > cols[i].Height {
				cols[i].Height, cols[i].Kind = c.Y, k
			}
			return
		}
		index[key{c.X, c.Z}] = len(cols)
		cols = append(cols, Column{X: c.X, Z: c.Z, Height: c.Y, Kind: k})
	})
	return cols
}
