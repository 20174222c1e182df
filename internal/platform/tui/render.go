package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-turtle/internal/core"
)

// xterm indexes for core's palette, in core.Color order.
var ansiCodes = []string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette maps pen colors to terminal styles for the canvas.
type Palette struct {
	styles []lipgloss.Style
}

// ColorPalette renders every pen in its own color.
func ColorPalette() Palette {
	p := Palette{styles: make([]lipgloss.Style, len(ansiCodes))}
	for c, code := range ansiCodes {
		if code == "" {
			p.styles[c] = lipgloss.NewStyle()
			continue
		}
		p.styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// MonochromePalette renders every pen in the terminal's foreground color.
func MonochromePalette() Palette {
	return Palette{}
}

// Style returns the style for c. Unknown colors and monochrome palettes get
// an unstyled cell.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if int(c) < len(p.styles) {
		return p.styles[c]
	}
	return lipgloss.NewStyle()
}

// Paint converts a Screen buffer to a styled string, one line per row.
// Each run of same-colored cells is wrapped in a single style, and a braille
// row is usually a few long runs of one pen color.
func (p Palette) Paint(s *core.Screen) string {
	rows := make([]string, s.Height())
	var row, run strings.Builder

	for y := range rows {
		row.Reset()
		run.Reset()
		current := s.GetCell(0, y).Color

		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				row.WriteString(p.Style(current).Render(run.String()))
				run.Reset()
				current = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			row.WriteString(p.Style(current).Render(run.String()))
		}
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}
