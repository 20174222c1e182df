package tui

import (
	"math"

	"github.com/vovakirdan/tui-turtle/internal/core"
	"github.com/vovakirdan/tui-turtle/internal/turtle"
)

// maxBrush caps the brush radius in dots so thick pens stay legible.
const maxBrush = 3

// cursorGlyphs are indexed by heading octant, starting east and turning
// counter-clockwise.
var cursorGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// ScreenRenderer draws a turtle onto a braille dot canvas covering part of
// a Screen. Canvas coordinates are scaled uniformly to fit and centered.
type ScreenRenderer struct {
	dots    *core.Dots
	canvasW float64
	canvasH float64
	scale   float64
	offX    float64
	offY    float64

	cursorColor core.Color
	cursorSet   bool
	cursorX     int // cell
	cursorY     int
	cursorRune  rune
}

// NewScreenRenderer creates a renderer for a canvas of canvasW x canvasH
// turtle units shown in cols x rows cells.
func NewScreenRenderer(cols, rows int, canvasW, canvasH float64, cursor core.Color) *ScreenRenderer {
	r := &ScreenRenderer{
		dots:        core.NewDots(cols, rows),
		canvasW:     canvasW,
		canvasH:     canvasH,
		cursorColor: cursor,
	}
	r.fit()
	return r
}

// Resize changes the area in cells. The canvas keeps its turtle size and is
// rescaled to fit.
func (r *ScreenRenderer) Resize(cols, rows int) {
	r.dots.Resize(cols, rows)
	r.fit()
}

func (r *ScreenRenderer) fit() {
	w, h := float64(r.dots.Width()), float64(r.dots.Height())
	if r.canvasW <= 0 || r.canvasH <= 0 || w == 0 || h == 0 {
		r.scale = 0
		return
	}
	r.scale = math.Min(w/r.canvasW, h/r.canvasH)
	r.offX = (w - r.canvasW*r.scale) / 2
	r.offY = (h - r.canvasH*r.scale) / 2
}

// Scale returns dots per turtle unit.
func (r *ScreenRenderer) Scale() float64 {
	return r.scale
}

// ToDots maps a canvas position to dot coordinates.
func (r *ScreenRenderer) ToDots(p turtle.Position) (int, int) {
	return core.Round(r.offX + p.X*r.scale), core.Round(r.offY + p.Y*r.scale)
}

// Clear implements turtle.Renderer.
func (r *ScreenRenderer) Clear() {
	r.dots.Clear()
	r.cursorSet = false
}

// Stroke implements turtle.Renderer.
func (r *ScreenRenderer) Stroke(l turtle.Line) {
	if r.scale == 0 {
		return
	}
	x0, y0 := r.ToDots(l.Start)
	x1, y1 := r.ToDots(l.End)
	r.dots.Line(x0, y0, x1, y1, r.brush(l.Pen.Size), l.Pen.Color)
}

// brush converts a pen size to a dot radius.
func (r *ScreenRenderer) brush(size float64) int {
	return core.Clamp(core.Round((size*r.scale-1)/2), 0, maxBrush)
}

// Cursor implements turtle.Renderer.
func (r *ScreenRenderer) Cursor(pos turtle.Position, heading float64) {
	if r.scale == 0 {
		return
	}
	x, y := r.ToDots(pos)
	cx, cy := floorDiv(x, core.DotsPerCellX), floorDiv(y, core.DotsPerCellY)
	cols, rows := r.dots.Width()/core.DotsPerCellX, r.dots.Height()/core.DotsPerCellY
	r.cursorX = core.Clamp(cx, 0, cols-1)
	r.cursorY = core.Clamp(cy, 0, rows-1)
	r.cursorRune = CursorGlyph(heading)
	r.cursorSet = true
}

// Flush copies the canvas onto dst with its top-left corner at (x, y).
func (r *ScreenRenderer) Flush(dst *core.Screen, x, y int) {
	r.dots.Render(dst, x, y)
	if r.cursorSet {
		dst.SetCell(x+r.cursorX, y+r.cursorY, core.Cell{Rune: r.cursorRune, Color: r.cursorColor})
	}
}

// CursorGlyph returns the arrow closest to heading.
func CursorGlyph(heading float64) rune {
	if math.IsNaN(heading) || math.IsInf(heading, 0) {
		return cursorGlyphs[0]
	}
	octant := int(math.Floor(turtle.Normalize(heading+22.5)/45)) % 8
	return cursorGlyphs[octant]
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
