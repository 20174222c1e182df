package core

import "testing"

func TestDotsSetRendersBraille(t *testing.T) {
	d := NewDots(2, 1)
	if d.Width() != 4 || d.Height() != 4 {
		t.Fatalf("dot size = %dx%d, expected 4x4", d.Width(), d.Height())
	}

	d.Set(0, 0, ColorRed)
	d.Set(1, 3, ColorRed)
	d.Set(99, 99, ColorRed) // ignored

	s := NewScreen(2, 1)
	d.Render(s, 0, 0)

	if got := s.GetCell(0, 0); got.Rune != rune(0x2800+0x01+0x80) || got.Color != ColorRed {
		t.Errorf("cell 0 = %+v, expected braille 0x2881 red", got)
	}
	if s.Get(1, 0) != ' ' {
		t.Errorf("empty cell rendered as %q", s.Get(1, 0))
	}
}

func TestDotsLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		lit            [][2]int
	}{
		{"horizontal", 0, 0, 3, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical", 1, 0, 1, 3, [][2]int{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"reversed", 3, 3, 0, 0, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single point", 2, 2, 2, 2, [][2]int{{2, 2}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDots(4, 2)
			d.Line(tc.x0, tc.y0, tc.x1, tc.y1, 0, ColorWhite)
			for _, p := range tc.lit {
				if !d.IsSet(p[0], p[1]) {
					t.Errorf("dot (%d, %d) not set", p[0], p[1])
				}
			}
		})
	}
}

func TestDotsLineClipsHugeSegments(t *testing.T) {
	d := NewDots(4, 2)
	d.Line(-1<<30, 2, 1<<30, 2, 0, ColorWhite)

	for x := 0; x < d.Width(); x++ {
		if !d.IsSet(x, 2) {
			t.Errorf("dot (%d, 2) not set", x)
		}
	}

	d.Clear()
	d.Line(-100, -100, -50, -50, 0, ColorWhite)
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			if d.IsSet(x, y) {
				t.Fatalf("off-canvas segment lit (%d, %d)", x, y)
			}
		}
	}
}

func TestDotsBrushRadius(t *testing.T) {
	d := NewDots(4, 2)
	d.Line(3, 3, 3, 3, 1, ColorWhite)

	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			if !d.IsSet(x, y) {
				t.Errorf("brush dot (%d, %d) not set", x, y)
			}
		}
	}
	if d.IsSet(5, 3) {
		t.Error("brush should not reach radius 2")
	}
}
