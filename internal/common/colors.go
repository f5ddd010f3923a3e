package common

import (
	"image/color"

	"github.com/numcog/gridgames/internal/game/object"
)

// PaletteColors maps canvas palette values to display colors for snapshot
// rendering.
var PaletteColors = map[float64]color.Color{
	object.ColorDefault: color.RGBA{0, 0, 0, 255},        // empty - black
	object.ColorDivider: color.RGBA{90, 90, 90, 255},     // divider - gray
	object.ColorPlayer:  color.RGBA{50, 100, 200, 255},   // player - blue
	object.ColorTarg:    color.RGBA{200, 50, 50, 255},    // targ - red
	object.ColorItem:    color.RGBA{50, 200, 50, 255},    // item - green
	object.ColorPile:    color.RGBA{200, 200, 50, 255},   // pile - yellow
	object.ColorButton:  color.RGBA{200, 120, 200, 255},  // button - purple
	object.ColorSignal:  color.RGBA{255, 255, 255, 255},  // signal - white
}

// UI colors
var (
	BackgroundColor = color.Black
	GridLineColor   = color.RGBA{50, 50, 50, 255}
)
