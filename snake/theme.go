package snake

import "github.com/lixenwraith/gesture-arcade/core"

// Theme is one row of the snake palette table
type Theme struct {
	Name       string
	Snake      core.RGB
	Food       core.RGB
	Trail      core.RGB
	Background core.RGB
}

// Themes is the palette table cycled by theme selection
var Themes = []Theme{
	{
		Name:       "Neon",
		Snake:      core.RGB{R: 0, G: 255, B: 0},
		Food:       core.RGB{R: 255, G: 0, B: 255},
		Trail:      core.RGB{R: 0, G: 100, B: 100},
		Background: core.RGB{R: 10, G: 10, B: 20},
	},
	{
		Name:       "Retro",
		Snake:      core.RGB{R: 0, G: 255, B: 0},
		Food:       core.RGB{R: 255, G: 0, B: 0},
		Trail:      core.RGB{R: 0, G: 80, B: 0},
		Background: core.RGB{R: 0, G: 0, B: 0},
	},
}
