package core

import "image/color"

// Color represents a fill color for a shape or screen cell.
// Terminal hosts map it to ANSI 256-color codes, window hosts to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var rgba = map[Color]color.RGBA{
	ColorDefault:       {200, 200, 200, 255},
	ColorRed:           {220, 60, 60, 255},
	ColorGreen:         {70, 200, 90, 255},
	ColorYellow:        {235, 210, 70, 255},
	ColorBlue:          {70, 120, 230, 255},
	ColorMagenta:       {200, 80, 200, 255},
	ColorCyan:          {80, 200, 220, 255},
	ColorWhite:         {235, 235, 235, 255},
	ColorBrightRed:     {255, 100, 100, 255},
	ColorBrightGreen:   {120, 255, 140, 255},
	ColorBrightYellow:  {255, 240, 120, 255},
	ColorBrightBlue:    {120, 170, 255, 255},
	ColorBrightMagenta: {255, 130, 255, 255},
	ColorBrightCyan:    {140, 240, 255, 255},
	ColorBrightWhite:   {255, 255, 255, 255},
	ColorOrange:        {240, 150, 50, 255},
	ColorGray:          {120, 120, 130, 255},
}

// RGBA returns the color as 8-bit RGBA.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[ColorDefault]
}
