package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-turtle/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick programs from a menu",
	Long: `Start the turtle in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to open a program.
Esc on the canvas returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Open program
  N            - Blank canvas
  Q/Esc        - Quit

Examples:
  turtle menu
  turtle menu --speed fast`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	rc := runtimeConfig(settings)
	theme := tui.ThemeByName(settings.UI.Theme)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(rc, theme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			break
		}

		prog, err := tui.ProgramFor(menuResult.ProgramID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		logger.Info("opening program", "program", prog.Title)
		back, err := tui.Run(tui.ModelOptions{
			Settings:    settings,
			Runtime:     rc,
			Program:     prog,
			Logger:      logger,
			SnapshotDir: snapshotDir(),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running canvas: %v\n", err)
			break
		}
		if !back {
			break
		}
	}
}
