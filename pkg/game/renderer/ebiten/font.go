package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFont parses the embedded Go Mono font
func (e *EbitenRenderer) loadFont() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	e.monoFontSource = src
	e.cachedMonoFace = nil
	return nil
}

// getMonoFontFace returns a cached monospace font face for the HUD
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   hudFontSize,
		}
	}
	return e.cachedMonoFace
}
