//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const captionText = "Drag to orbit, right-drag to pan, scroll to zoom. Press T for the tour"

// Overlay draws the chrome on top of the scene.
type Overlay struct {
	chrome *Chrome
}

// NewOverlay returns an overlay for chrome.
func NewOverlay(chrome *Chrome) *Overlay {
	return &Overlay{chrome: chrome}
}

// Draw paints the chrome onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.chrome == nil {
		return
	}
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()

	if !o.chrome.Loaded() {
		drawCentered(screen, "Loading...", w/2, h/2, color.RGBA{R: 180, G: 180, B: 200, A: 255})
	}
	if label, alpha := o.chrome.Label(); label != "" && alpha > 0 {
		a := uint8(alpha * 255)
		drawCentered(screen, label, w/2, h/5, color.RGBA{R: a, G: a, B: a, A: a})
	}
	if o.chrome.Caption() {
		drawCentered(screen, captionText, w/2, h-24, color.RGBA{R: 150, G: 160, B: 190, A: 255})
	}
	if veil := o.chrome.Veil(); veil > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{A: uint8(veil * 255)}, false)
	}
}

func drawCentered(dst *ebiten.Image, s string, cx, y int, clr color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	text.Draw(dst, s, face, cx-bounds.Dx()/2, y, clr)
}
