// turtle is an animated turtle-graphics canvas for the terminal.
//
// Usage:
//
//	turtle list                  - List built-in programs
//	turtle play [program]        - Draw interactively, optionally starting from a program
//	turtle run <file>            - Run a script file on the canvas
//	turtle menu                  - Pick programs from a menu
//	turtle serve                 - Start SSH server, one canvas per session
//	turtle render <program|file> - Render a finished drawing to PNG
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: from config, 60)
//	--delay <ms>      - Animation time per command (default: from config)
//	--speed <preset>  - slow, normal, fast or instant
//	--config <path>   - Use a specific config file
//	--log-file <path> - Write logs to a file while the TUI owns the terminal
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-turtle/internal/config"
	"github.com/vovakirdan/tui-turtle/internal/core"

	// Import programs to register them
	_ "github.com/vovakirdan/tui-turtle/internal/programs"
)

var (
	// Global flags
	flagFPS     int
	flagDelay   int
	flagSpeed   string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turtle",
	Short: "Turtle graphics in your terminal",
	Long: `Turtle drives an animated cursor around a canvas. Every move and turn
animates, and every call can be undone.

Available commands:
  list     - Show built-in programs
  play     - Draw interactively
  run      - Run a script file
  menu     - Interactive program picker
  serve    - Start SSH server for remote drawing
  render   - Render a drawing to PNG

Examples:
  turtle play
  turtle play tree --speed fast
  turtle run ./spiral.logo --delay 50
  turtle render flower -o flower.png
  turtle serve`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagDelay, "delay", -1, "Animation time per command in ms (-1 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, instant")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
}

// loadSettings loads the config and applies the global flag overrides.
func loadSettings() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagSpeed != "" {
		preset, ok := config.ParseSpeed(flagSpeed)
		if !ok {
			return cfg, fmt.Errorf("unknown speed %q (valid: slow, normal, fast, instant)", flagSpeed)
		}
		config.ApplySpeedPreset(&cfg, preset)
	}
	if flagDelay >= 0 {
		cfg.Animation.DelayMS = flagDelay
	}
	if flagFPS > 0 {
		cfg.Animation.TickRate = flagFPS
	}

	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// runtimeConfig sizes a runtime config to the current terminal.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := cfg.Runtime()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}

// openLogger returns a logger writing to --log-file, or a discarding logger.
// The returned func closes the file.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "turtle",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// snapshotDir is where ctrl+s saves PNGs.
func snapshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".turtle", "snapshots")
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
