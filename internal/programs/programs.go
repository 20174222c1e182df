// Package programs registers the built-in demo drawings.
package programs

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-turtle/internal/registry"
)

func init() {
	registry.Register("square", registry.Program{
		Title:       "Square",
		Description: "Four sides and four right turns",
		Source: `
# start at the top-left corner so the square is centered
pu bk 75 lt 90 fd 75 rt 90 pd
repeat 4 [ fd 150 rt 90 ]
pu home pd`,
	})

	registry.Register("star", registry.Program{
		Title:       "Star",
		Description: "Five-pointed star in yellow",
		Source: `
pu bk 100 lt 90 bk 30 rt 90 pd
color yellow width 2
repeat 5 [ fd 200 rt 144 ]
pu home pd`,
	})

	registry.Register("flower", registry.Program{
		Title:       "Flower",
		Description: "Twelve circular petals",
		Source: `
delay 40
color magenta
repeat 12 [ repeat 36 [ fd 8 rt 10 ] rt 30 ]`,
	})

	registry.Register("squares", registry.Program{
		Title:       "Squares",
		Description: "A square rotated around the center",
		Source: `
delay 60
color cyan
repeat 18 [ repeat 4 [ fd 100 rt 90 ] rt 20 ]`,
	})

	registry.Register("spiral", registry.Program{
		Title:       "Spiral",
		Description: "Square spiral with growing sides",
		Source:      spiral(60, 5, 91),
	})

	registry.Register("tree", registry.Program{
		Title:       "Tree",
		Description: "Recursive binary tree",
		Source:      tree(6, 80),
	})

	registry.Register("retrace", registry.Program{
		Title:       "Retrace",
		Description: "Draws a zigzag and undoes half of it",
		Source: `
color orange
repeat 3 [ fd 60 lt 120 fd 60 rt 120 ]
undo 6`,
	})
}

// spiral draws n segments, each step units longer than the last.
func spiral(n int, step float64, turn float64) string {
	var b strings.Builder
	b.WriteString("delay 50\ncolor green\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "fd %g rt %g\n", float64(i)*step, turn)
	}
	return b.String()
}

// tree emits a recursive tree of the given depth growing upwards. Each branch
// returns the turtle to where it started.
func tree(depth int, length float64) string {
	var b strings.Builder
	b.WriteString("delay 30\ncolor green\npu rt 90 fd 150 lt 180 pd\n")
	branch(&b, depth, length)
	b.WriteString("pu home pd\n")
	return b.String()
}

func branch(b *strings.Builder, depth int, length float64) {
	if depth == 0 {
		return
	}
	fmt.Fprintf(b, "fd %g\n", length)
	b.WriteString("lt 25\n")
	branch(b, depth-1, length*0.7)
	b.WriteString("rt 50\n")
	branch(b, depth-1, length*0.7)
	b.WriteString("lt 25\n")
	fmt.Fprintf(b, "pu bk %g pd\n", length)
}
