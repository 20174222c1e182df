package turtle

// Line is a finished or in-progress segment, stroked with the pen as it was
// when the owning command was issued.
type Line struct {
	Pen   Pen
	Start Position
	End   Position
}

// NewLine builds a line from a pen snapshot and two endpoints.
func NewLine(pen Pen, start, end Position) Line {
	return Line{Pen: pen.Copy(), Start: start, End: end}
}

// Visible reports whether the line leaves a mark.
func (l Line) Visible() bool {
	return l.Pen.Drawing
}

// Draw strokes the line onto r. Lines drawn with the pen up are skipped.
func (l Line) Draw(r Renderer) {
	if !l.Visible() {
		return
	}
	r.Stroke(l)
}
