package turtle

import (
	"testing"
	"time"
)

// recorder is a Renderer that logs every call.
type recorder struct {
	calls   []string
	strokes []Line
	cursor  Position
	heading float64
}

func (r *recorder) Clear() {
	r.calls = append(r.calls, "clear")
}

func (r *recorder) Stroke(l Line) {
	r.calls = append(r.calls, "stroke")
	r.strokes = append(r.strokes, l)
}

func (r *recorder) Cursor(pos Position, heading float64) {
	r.calls = append(r.calls, "cursor")
	r.cursor = pos
	r.heading = heading
}

func TestDrawOrder(t *testing.T) {
	opts := DefaultOptions()
	opts.Delay = 100 * time.Millisecond
	tt := New(opts)

	tt.Forward(10)
	tt.Left(90)
	tt.Forward(10)
	tt.Tick(t0)
	tt.Tick(t0.Add(200 * time.Millisecond)) // first move done
	tt.Tick(t0.Add(200 * time.Millisecond))
	tt.Tick(t0.Add(400 * time.Millisecond)) // turn done
	tt.Tick(t0.Add(400 * time.Millisecond))
	tt.Tick(t0.Add(450 * time.Millisecond)) // second move half way

	r := &recorder{}
	tt.Draw(r)

	expected := []string{"clear", "stroke", "stroke", "cursor"}
	if len(r.calls) != len(expected) {
		t.Fatalf("calls = %v, expected %v", r.calls, expected)
	}
	for i := range expected {
		if r.calls[i] != expected[i] {
			t.Errorf("call %d = %q, expected %q", i, r.calls[i], expected[i])
		}
	}

	// Second stroke is the in-progress segment ending at the cursor.
	if r.strokes[1].End != r.cursor {
		t.Errorf("in-progress stroke ends at %v, cursor at %v", r.strokes[1].End, r.cursor)
	}
	if r.heading != 90 {
		t.Errorf("cursor heading = %v, expected 90", r.heading)
	}
}

func TestDrawSkipsPenUpLines(t *testing.T) {
	opts := DefaultOptions()
	opts.Delay = 100 * time.Millisecond
	tt := New(opts)
	tt.PenUp()
	tt.Forward(10)
	tt.Tick(t0)
	tt.Tick(t0.Add(50 * time.Millisecond))

	r := &recorder{}
	tt.Draw(r)

	if len(r.strokes) != 0 {
		t.Errorf("pen-up move produced %d strokes", len(r.strokes))
	}
}

func TestLineDraw(t *testing.T) {
	pen := DefaultPen()
	up := pen.Copy()
	up.Drawing = false

	r := &recorder{}
	drawn := NewLine(pen, Pos(0, 0), Pos(1, 1))
	hidden := NewLine(up, Pos(0, 0), Pos(1, 1))
	drawn.Draw(r)
	hidden.Draw(r)

	if !drawn.Visible() || hidden.Visible() {
		t.Errorf("Visible() = %v/%v, expected true/false", drawn.Visible(), hidden.Visible())
	}

	if len(r.strokes) != 1 {
		t.Errorf("strokes = %d, expected 1", len(r.strokes))
	}
	if !pen.Drawing {
		t.Error("Copy() mutated the original pen")
	}
}
