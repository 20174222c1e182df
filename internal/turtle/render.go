package turtle

// Renderer is the drawing surface a Turtle paints itself onto.
// The turtle never reads state back from the surface.
type Renderer interface {
	// Clear wipes the frame.
	Clear()

	// Stroke draws a single line segment with its frozen pen.
	Stroke(line Line)

	// Cursor draws the turtle glyph at pos, pointing along heading
	// (degrees, counter-clockwise, 0 = east).
	Cursor(pos Position, heading float64)
}

// Draw paints one frame: the completed lines in completion order, the segment
// currently being animated, then the cursor at its visual position.
func (t *Turtle) Draw(r Renderer) {
	r.Clear()
	for _, l := range t.lines {
		l.Draw(r)
	}
	if t.stroke != nil {
		t.stroke.Draw(r)
	}
	r.Cursor(t.position, t.angle)
}
