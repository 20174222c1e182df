package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-turtle/internal/platform/tui"
	"github.com/vovakirdan/tui-turtle/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [program]",
	Short: "Draw interactively",
	Long: `Open the canvas, optionally running a built-in program first.

Controls:
  Up/Down    - Forward/back one step
  Left/Right - Turn
  U          - Undo the last move or turn (animated)
  Space      - Pen up/down
  C          - Next color
  [ / ]      - Thinner/thicker pen
  + / -      - Faster/slower animation
  H          - Home
  R          - Reset the canvas
  :          - Command prompt (e.g. "repeat 4 [ fd 50 rt 90 ]")
  ?          - Full help
  Ctrl+S     - Save a PNG snapshot to ~/.turtle/snapshots
  Q/Ctrl+C   - Quit

Examples:
  turtle play
  turtle play star
  turtle play tree --speed instant
  turtle play --config ./my-turtle.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	id := ""
	if len(args) == 1 {
		id = args[0]
		if !registry.Exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown program %q\n", id)
			fmt.Fprintln(os.Stderr, "Run 'turtle list' to see available programs.")
			os.Exit(1)
		}
	}

	prog, err := tui.ProgramFor(id)
	if err != nil {
		fail("%v", err)
	}
	runCanvas(prog)
}

// runCanvas opens a standalone drawing screen.
func runCanvas(prog tui.Program) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	logger.Info("starting", "program", prog.Title, "config", settings.Source)

	_, runErr := tui.Run(tui.ModelOptions{
		Settings:    settings,
		Runtime:     runtimeConfig(settings),
		Program:     prog,
		Logger:      logger,
		SnapshotDir: snapshotDir(),
	})
	if runErr != nil {
		closeLog()
		fail("running canvas: %v", runErr)
	}
}
