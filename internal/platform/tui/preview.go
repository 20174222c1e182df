package tui

import (
	"github.com/vovakirdan/tui-turtle/internal/core"
	"github.com/vovakirdan/tui-turtle/internal/script"
	"github.com/vovakirdan/tui-turtle/internal/turtle"
)

// Thumbnail size in cells.
const (
	thumbCols = 24
	thumbRows = 8
)

// emptyLabel marks a thumbnail whose program leaves no ink.
const emptyLabel = "(no ink)"

// Thumbnail draws the finished result of stmts, without the cursor, into a
// cols x rows braille screen. A program that stops on an error keeps what
// it drew up to that point; one that draws nothing gets a label instead.
func Thumbnail(stmts []script.Stmt, cols, rows int) *core.Screen {
	opts := turtle.DefaultOptions()
	opts.Delay = 0
	t := turtle.New(opts)
	_ = script.Run(t, stmts)
	t.Settle()

	w, h := t.Size()
	r := NewScreenRenderer(cols, rows, w, h, core.ColorDefault)
	r.Clear()
	inked := false
	for _, l := range t.Lines() {
		inked = inked || l.Visible()
		l.Draw(r)
	}

	screen := core.NewScreen(cols, rows)
	r.Flush(screen, 0, 0)
	if !inked {
		screen.DrawText((cols-len(emptyLabel))/2, rows/2, emptyLabel, core.ColorGray)
	}
	return screen
}
