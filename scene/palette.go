package scene

import (
	"image/color"

	"github.com/plus3/quadblox/quadblox"
)

var (
	Black      = color.RGBA{0, 0, 0, 255}
	Purple     = color.RGBA{200, 122, 255, 255}
	DarkPurple = color.RGBA{112, 31, 126, 255}
	Green      = color.RGBA{0, 228, 48, 255}
	White      = color.RGBA{255, 255, 255, 255}
	Yellow     = color.RGBA{253, 249, 0, 255}
	Red        = color.RGBA{230, 41, 55, 255}
	Maroon     = color.RGBA{190, 33, 55, 255}
	Orange     = color.RGBA{255, 161, 0, 255}
	Blue       = color.RGBA{0, 121, 241, 255}
	LightGray  = color.RGBA{200, 200, 200, 255}
)

// Palette maps tile colors to screen colors. Index 0 is the empty cell.
var Palette = [quadblox.MaxColor + 1]color.RGBA{
	Black, Purple, DarkPurple, Green, White, Yellow, Red, Maroon, Orange,
}

// ColorOf returns the screen color of a tile color.
func ColorOf(c quadblox.Color) color.RGBA {
	return Palette[c]
}
