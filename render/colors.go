package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gesture-arcade/core"
)

// UI colors shared by both games
var (
	RgbHUD       = tcell.NewRGBColor(255, 255, 255)
	RgbHUDDim    = tcell.NewRGBColor(150, 150, 150)
	RgbPanel     = tcell.NewRGBColor(26, 27, 38) // Menu and game over panel
	RgbTitle     = tcell.NewRGBColor(255, 200, 0)
	RgbGameOver  = tcell.NewRGBColor(255, 80, 80)
	RgbDebug     = tcell.NewRGBColor(120, 200, 120)
	RgbHandMark  = tcell.NewRGBColor(255, 165, 0)
	RgbDefaultBg = tcell.NewRGBColor(0, 0, 0)
)

// toColor converts a palette color to a terminal color
func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
