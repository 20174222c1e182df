package programs

import (
	"testing"

	"github.com/vovakirdan/tui-turtle/internal/registry"
	"github.com/vovakirdan/tui-turtle/internal/turtle"
)

func runProgram(t *testing.T, id string) *turtle.Turtle {
	t.Helper()
	opts := turtle.DefaultOptions()
	opts.Delay = 0
	tt := turtle.New(opts)
	if err := registry.Run(tt, id); err != nil {
		t.Fatalf("Run(%q) error: %v", id, err)
	}
	tt.Settle()
	return tt
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"square", "star", "flower", "squares", "spiral", "tree", "retrace"} {
		if !registry.Exists(id) {
			t.Errorf("program %q not registered", id)
		}
	}
}

func TestBuiltinLineCounts(t *testing.T) {
	tests := []struct {
		id    string
		lines int
	}{
		{"square", 4},
		{"star", 5},
		{"flower", 12 * 36},
		{"squares", 18 * 4},
		{"spiral", 60},
		{"tree", 63},
		{"retrace", 3},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			tt := runProgram(t, tc.id)
			if got := len(tt.Lines()); got != tc.lines {
				t.Errorf("len(Lines()) = %d, expected %d", got, tc.lines)
			}
			if tt.Busy() {
				t.Error("turtle still busy after Settle()")
			}
		})
	}
}

func TestBuiltinsStayOnCanvas(t *testing.T) {
	for _, info := range registry.List() {
		tt := runProgram(t, info.ID)
		w, h := tt.Size()
		for _, l := range tt.Lines() {
			for _, p := range []turtle.Position{l.Start, l.End} {
				if p.X < 0 || p.Y < 0 || p.X > w || p.Y > h {
					t.Errorf("%s: point %v outside %vx%v canvas", info.ID, p, w, h)
				}
			}
		}
	}
}

func TestSquareAndTreeReturnHome(t *testing.T) {
	for _, id := range []string{"square", "star", "tree"} {
		tt := runProgram(t, id)
		c := tt.Center()
		p := tt.Position()
		if dx, dy := p.X-c.X, p.Y-c.Y; dx*dx+dy*dy > 1e-6 {
			t.Errorf("%s ended at %v, expected %v", id, p, c)
		}
		if tt.Heading() != 0 {
			t.Errorf("%s heading = %v, expected 0", id, tt.Heading())
		}
	}
}
