package turtle

import "github.com/vovakirdan/tui-turtle/internal/core"

// Pen describes how lines are stroked.
type Pen struct {
	Size    float64    // Stroke width in canvas units
	Color   core.Color // Stroke color
	Drawing bool       // Whether movement leaves a line
}

// DefaultPen returns a drawing pen of width 1 in the default color.
func DefaultPen() Pen {
	return Pen{
		Size:    1,
		Color:   core.ColorDefault,
		Drawing: true,
	}
}

// Copy returns an independent snapshot of the pen.
// Pen has no reference fields, so a value copy is already a deep copy.
func (p Pen) Copy() Pen {
	return p
}
