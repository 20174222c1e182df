package core

import (
	"image/color"
	"strings"
)

// Color represents a foreground color for a screen cell or a pen.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors.
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

var colorNames = []string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "brightred",
	ColorBrightGreen:   "brightgreen",
	ColorBrightYellow:  "brightyellow",
	ColorBrightBlue:    "brightblue",
	ColorBrightMagenta: "brightmagenta",
	ColorBrightCyan:    "brightcyan",
	ColorBrightWhite:   "brightwhite",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// rgb approximates the xterm palette entries used by the terminal renderer.
var rgb = []color.RGBA{
	ColorDefault:       {0xff, 0xff, 0xff, 0xff},
	ColorRed:           {0xcd, 0x00, 0x00, 0xff},
	ColorGreen:         {0x00, 0xcd, 0x00, 0xff},
	ColorYellow:        {0xcd, 0xcd, 0x00, 0xff},
	ColorBlue:          {0x00, 0x00, 0xee, 0xff},
	ColorMagenta:       {0xcd, 0x00, 0xcd, 0xff},
	ColorCyan:          {0x00, 0xcd, 0xcd, 0xff},
	ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	ColorBrightRed:     {0xff, 0x00, 0x00, 0xff},
	ColorBrightGreen:   {0x00, 0xff, 0x00, 0xff},
	ColorBrightYellow:  {0xff, 0xff, 0x00, 0xff},
	ColorBrightBlue:    {0x5c, 0x5c, 0xff, 0xff},
	ColorBrightMagenta: {0xff, 0x00, 0xff, 0xff},
	ColorBrightCyan:    {0x00, 0xff, 0xff, 0xff},
	ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

// String returns the color's name as accepted by ParseColor.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// RGBA returns the color's approximate true-color value.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(rgb) {
		return rgb[c]
	}
	return rgb[ColorDefault]
}

// Next returns the following non-default color, wrapping around.
func (c Color) Next() Color {
	n := c + 1
	if int(n) >= len(colorNames) {
		n = ColorRed
	}
	return n
}

// ParseColor looks up a color by name. Case and a "bright-" or "grey" spelling
// are tolerated.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	if name == "grey" {
		name = "gray"
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// ColorNames lists every color name in palette order.
func ColorNames() []string {
	names := make([]string, len(colorNames))
	copy(names, colorNames)
	return names
}
