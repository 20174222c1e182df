package tui

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-turtle/internal/core"
	"github.com/vovakirdan/tui-turtle/internal/turtle"
)

func TestScreenRendererScalesAndCenters(t *testing.T) {
	// 40x10 cells = 80x40 dots; a 100x100 canvas scales by 0.4 and is
	// centered horizontally.
	r := NewScreenRenderer(40, 10, 100, 100, core.ColorGreen)

	if r.Scale() != 0.4 {
		t.Fatalf("Scale() = %v, expected 0.4", r.Scale())
	}
	x, y := r.ToDots(turtle.Pos(0, 0))
	if x != 20 || y != 0 {
		t.Errorf("ToDots(0,0) = (%d, %d), expected (20, 0)", x, y)
	}
	x, y = r.ToDots(turtle.Pos(100, 100))
	if x != 60 || y != 40 {
		t.Errorf("ToDots(100,100) = (%d, %d), expected (60, 40)", x, y)
	}
}

func TestScreenRendererDrawsTurtle(t *testing.T) {
	opts := turtle.DefaultOptions()
	opts.Width, opts.Height = 80, 40
	opts.Delay = 0
	tt := turtle.New(opts)
	tt.SetColor(core.ColorRed)
	tt.Forward(20)
	tt.Settle()

	r := NewScreenRenderer(40, 10, 80, 40, core.ColorGreen)
	screen := core.NewScreen(40, 10)
	tt.Draw(r)
	r.Flush(screen, 0, 0)

	// The line runs along dot row 20 = cell row 5 from dot x 40 to 60.
	cell := screen.GetCell(25, 5)
	if cell.Rune < 0x2800 || cell.Rune > 0x28ff || cell.Color != core.ColorRed {
		t.Errorf("cell on line = %q %v, expected red braille", cell.Rune, cell.Color)
	}

	cursor := screen.GetCell(30, 5)
	if cursor.Rune != '→' || cursor.Color != core.ColorGreen {
		t.Errorf("cursor cell = %q %v, expected green →", cursor.Rune, cursor.Color)
	}

	if blank := screen.GetCell(5, 1); blank.Rune != ' ' {
		t.Errorf("empty cell = %q, expected blank", blank.Rune)
	}
}

func TestScreenRendererResize(t *testing.T) {
	r := NewScreenRenderer(10, 10, 100, 100, core.ColorDefault)
	before := r.Scale()
	r.Resize(20, 20)
	if r.Scale() != before*2 {
		t.Errorf("Scale() after doubling = %v, expected %v", r.Scale(), before*2)
	}

	r.Resize(0, 0)
	r.Stroke(turtle.NewLine(turtle.DefaultPen(), turtle.Pos(0, 0), turtle.Pos(50, 50)))
	r.Cursor(turtle.Pos(0, 0), 0)
	r.Flush(core.NewScreen(1, 1), 0, 0)
}

func TestCursorGlyph(t *testing.T) {
	tests := []struct {
		heading  float64
		expected rune
	}{
		{0, '→'},
		{22, '→'},
		{23, '↗'},
		{90, '↑'},
		{180, '←'},
		{270, '↓'},
		{-45, '↘'},
		{359, '→'},
		{720 + 135, '↖'},
	}

	for _, tc := range tests {
		if got := CursorGlyph(tc.heading); got != tc.expected {
			t.Errorf("CursorGlyph(%v) = %q, expected %q", tc.heading, got, tc.expected)
		}
	}
}

func TestFitCanvas(t *testing.T) {
	w, h := FitCanvas(80, 22) // 160x88 dots
	if math.Abs(h-canvasUnits) > 1e-9 {
		t.Errorf("short side = %v, expected %v", h, canvasUnits)
	}
	if math.Abs(w/h-160.0/88.0) > 1e-9 {
		t.Errorf("aspect = %v, expected %v", w/h, 160.0/88.0)
	}

	if w, h := FitCanvas(0, 10); w != turtle.DefaultWidth || h != turtle.DefaultHeight {
		t.Errorf("FitCanvas(0, 10) = %v x %v, expected defaults", w, h)
	}
}
