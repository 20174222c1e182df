// Package raster renders turtle drawings to images with gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-turtle/internal/turtle"
)

// cursorSize is the length of the cursor triangle in canvas units.
const cursorSize = 12

// Options controls image output.
type Options struct {
	Scale      float64     // Pixels per canvas unit
	Background color.Color // Fill color
	Cursor     color.Color // Cursor color; nil hides the cursor
}

// DefaultOptions renders at 1:1 on black without a cursor.
func DefaultOptions() Options {
	return Options{
		Scale:      1,
		Background: color.Black,
	}
}

// Renderer implements turtle.Renderer on a gg drawing context.
type Renderer struct {
	dc    *gg.Context
	scale float64
	bg    color.Color
	fg    color.Color
}

// NewRenderer creates an image for a width x height canvas.
func NewRenderer(width, height float64, opts Options) *Renderer {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	w := int(math.Ceil(width * opts.Scale))
	h := int(math.Ceil(height * opts.Scale))
	return &Renderer{
		dc:    gg.NewContext(max(w, 1), max(h, 1)),
		scale: opts.Scale,
		bg:    opts.Background,
		fg:    opts.Cursor,
	}
}

// Clear implements turtle.Renderer.
func (r *Renderer) Clear() {
	r.dc.SetColor(r.bg)
	r.dc.Clear()
}

// Stroke implements turtle.Renderer.
func (r *Renderer) Stroke(l turtle.Line) {
	r.dc.SetColor(l.Pen.Color.RGBA())
	r.dc.SetLineWidth(math.Max(l.Pen.Size*r.scale, 1))
	r.dc.SetLineCapRound()
	r.dc.DrawLine(l.Start.X*r.scale, l.Start.Y*r.scale, l.End.X*r.scale, l.End.Y*r.scale)
	r.dc.Stroke()
}

// Cursor implements turtle.Renderer. The cursor is a triangle pointing
// along heading.
func (r *Renderer) Cursor(pos turtle.Position, heading float64) {
	if r.fg == nil {
		return
	}
	rad := gg.Radians(heading)
	tip := pos.Add(turtle.Pos(math.Cos(rad), -math.Sin(rad)).Scale(cursorSize / 2))
	back := pos.Sub(turtle.Pos(math.Cos(rad), -math.Sin(rad)).Scale(cursorSize / 2))
	side := turtle.Pos(math.Sin(rad), math.Cos(rad)).Scale(cursorSize / 3)

	r.dc.SetColor(r.fg)
	r.dc.MoveTo(tip.X*r.scale, tip.Y*r.scale)
	r.dc.LineTo((back.X+side.X)*r.scale, (back.Y+side.Y)*r.scale)
	r.dc.LineTo((back.X-side.X)*r.scale, (back.Y-side.Y)*r.scale)
	r.dc.ClosePath()
	r.dc.Fill()
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// EncodePNG writes the image as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

// Render draws the turtle's current frame.
func Render(t *turtle.Turtle, opts Options) *Renderer {
	w, h := t.Size()
	r := NewRenderer(w, h, opts)
	t.Draw(r)
	return r
}

// SavePNG renders the turtle's current frame to path, creating parent
// directories as needed.
func SavePNG(t *turtle.Turtle, path string, opts Options) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("raster: cannot create %s: %w", dir, err)
		}
	}
	if err := Render(t, opts).dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: cannot save %s: %w", path, err)
	}
	return nil
}
