package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// faceHeight is the pixel height of basicfont.Face7x13. Larger sizes are
// drawn scaled.
const faceHeight = 13

type screenRenderer struct {
	screen *ebiten.Image
}

func (r *screenRenderer) Clear(c color.RGBA) {
	r.screen.Fill(c)
}

func (r *screenRenderer) DrawRect(x, y, w, h int, c color.RGBA) {
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (r *screenRenderer) DrawText(s string, x, y, size int, c color.RGBA) {
	text.DrawWithOptions(r.screen, s, basicfont.Face7x13, textOptions(x, y, size, c))
}

// textOptions places text with its top-left corner at (x, y), scaled so the
// line is size pixels tall.
func textOptions(x, y, size int, c color.RGBA) *ebiten.DrawImageOptions {
	scale := textScale(size)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(float64(x), float64(y)+float64(basicfont.Face7x13.Ascent)*scale)
	opts.ColorScale.ScaleWithColor(c)
	return opts
}

func textScale(size int) float64 {
	if size <= 0 {
		return 1
	}
	return float64(size) / faceHeight
}
