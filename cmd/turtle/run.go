package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-turtle/internal/platform/tui"
	"github.com/vovakirdan/tui-turtle/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a script file on the canvas",
	Long: `Parse a turtle script and watch it draw. The canvas stays open for
interactive drawing afterwards.

Script commands:
  fd|forward N     bk|back N        lt|left A       rt|right A
  seth|setheading A                 goto X Y        face X Y
  home             pu|penup         pd|pendown      color NAME
  width N          delay MS         undo [N]        reset
  repeat N [ ... ]

Commands are separated by spaces, newlines or ';'. '#' starts a comment.

Examples:
  turtle run ./square.logo
  turtle run ./spiral.logo --speed fast`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func runRun(cmd *cobra.Command, args []string) {
	path := args[0]
	prog, err := loadScript(path)
	if err != nil {
		fail("%v", err)
	}
	runCanvas(prog)
}

// loadScript reads and parses a script file. Parse errors are reported
// before any UI starts.
func loadScript(path string) (tui.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tui.Program{}, err
	}
	stmts, err := script.Parse(string(data))
	if err != nil {
		return tui.Program{}, err
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return tui.Program{Title: title, Stmts: stmts}, nil
}
