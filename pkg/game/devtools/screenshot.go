package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"terragrid/pkg/game/renderer"
	"terragrid/pkg/game/state"
)

var kindClasses = map[renderer.Kind]string{
	renderer.KindVoid:          "void",
	renderer.KindOpen:          "open",
	renderer.KindAir:           "air",
	renderer.KindFloor:         "floor",
	renderer.KindCeiling:       "ceiling",
	renderer.KindSolid:         "solid",
	renderer.KindSlope:         "slope",
	renderer.KindContradiction: "contradiction",
}

// SaveScreenshotHTML saves the given layers as an HTML file and returns its name
func SaveScreenshotHTML(s *state.Session, layers ...int32) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteScreenshotHTML(f, s, layers...)
	return filename, f.Close()
}

// WriteScreenshotHTML writes one colored block per layer
func WriteScreenshotHTML(w io.Writer, s *state.Session, layers ...int32) {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Terrain Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .layer-name { color: #888; margin-top: 20px; }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 10px 0;
        }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .void { color: #1a1a2e; }
        .open { color: #666; }
        .air { color: #333; }
        .floor { color: #5aa05a; }
        .ceiling { color: #c8b464; }
        .solid { color: #b4b4c8; }
        .slope { color: #64bec8; font-weight: bold; }
        .contradiction { color: #ff4444; font-weight: bold; }
        .messages { margin-top: 20px; border-top: 1px solid #333; padding-top: 10px; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, `    <div class="header">Session %s, seed %d</div>`+"\n", s.ID, s.Seed())

	for _, y := range layers {
		layer := renderer.SliceLayer(s.Grid(), y)
		fmt.Fprintf(&b, `    <div class="layer-name">Layer y=%d</div>`+"\n", y)
		b.WriteString(`    <div class="map-container">` + "\n")
		for _, row := range layer.Cells {
			b.WriteString(`        <div class="map-row">`)
			for _, cell := range row {
				k := renderer.CellKind(cell)
				icon := k.Icon()
				if k == renderer.KindAir || k == renderer.KindVoid {
					icon = "·"
				}
				fmt.Fprintf(&b, `<span class="%s">%s</span>`, kindClasses[k], icon)
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("    </div>\n")
	}

	if len(s.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range s.Messages {
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(msg))
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	io.WriteString(w, b.String())
}
