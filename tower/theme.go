package tower

import "github.com/lixenwraith/gesture-arcade/core"

// Theme is one row of the tower palette table; blocks pick from Colors
type Theme struct {
	Name       string
	Colors     []core.RGB
	Background core.RGB
}

// Themes is the palette table cycled by theme selection
var Themes = []Theme{
	{
		Name: "Classic",
		Colors: []core.RGB{
			{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 0, G: 0, B: 255},
			{R: 255, G: 255, B: 0}, {R: 255, G: 0, B: 255},
		},
		Background: core.RGB{R: 240, G: 240, B: 240},
	},
	{
		Name: "Nocturnal",
		Colors: []core.RGB{
			{R: 70, G: 130, B: 180}, {R: 100, G: 149, B: 237}, {R: 123, G: 104, B: 238},
			{R: 138, G: 43, B: 226}, {R: 147, G: 112, B: 219},
		},
		Background: core.RGB{R: 30, G: 30, B: 40},
	},
	{
		Name: "Nature",
		Colors: []core.RGB{
			{R: 34, G: 139, B: 34}, {R: 107, G: 142, B: 35}, {R: 152, G: 251, B: 152},
			{R: 60, G: 179, B: 113}, {R: 46, G: 139, B: 87},
		},
		Background: core.RGB{R: 245, G: 245, B: 220},
	},
}
