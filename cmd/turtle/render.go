package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-turtle/internal/platform/tui"
	"github.com/vovakirdan/tui-turtle/internal/raster"
	"github.com/vovakirdan/tui-turtle/internal/registry"
	"github.com/vovakirdan/tui-turtle/internal/script"
	"github.com/vovakirdan/tui-turtle/internal/turtle"
)

var (
	flagOutput     string
	flagScale      float64
	flagShowCursor bool
)

var renderCmd = &cobra.Command{
	Use:   "render <program|file>",
	Short: "Render a finished drawing to PNG",
	Long: `Run a built-in program or a script file without a terminal UI and
save the finished drawing as a PNG. Animations are skipped.

Examples:
  turtle render flower -o flower.png
  turtle render ./spiral.logo -o spiral.png --scale 2
  turtle render tree --cursor`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default <name>.png)")
	renderCmd.Flags().Float64Var(&flagScale, "scale", 0, "Pixels per canvas unit (0 = from config)")
	renderCmd.Flags().BoolVar(&flagShowCursor, "cursor", false, "Draw the turtle")
}

func runRender(_ *cobra.Command, args []string) {
	settings, err := loadSettings()
	if err != nil {
		fail("%v", err)
	}

	name := args[0]
	var prog tui.Program
	base := name
	if registry.Exists(name) {
		prog, err = tui.ProgramFor(name)
	} else {
		prog, err = loadScript(name)
		base = prog.Title
	}
	if err != nil {
		fail("%v", err)
	}

	t := turtle.New(settings.TurtleOptions(turtle.DefaultWidth, turtle.DefaultHeight))
	if err := script.Run(t, prog.Stmts); err != nil {
		fail("%v", err)
	}
	t.Settle()

	opts := raster.DefaultOptions()
	opts.Scale = settings.Canvas.ExportScale
	if flagScale > 0 {
		opts.Scale = flagScale
	}
	if flagShowCursor {
		opts.Cursor = settings.CursorColor().RGBA()
	}

	out := flagOutput
	if out == "" {
		out = base + ".png"
	}
	if err := raster.SavePNG(t, out, opts); err != nil {
		fail("%v", err)
	}

	w, h := t.Size()
	fmt.Printf("Rendered %d lines on a %.0fx%.0f canvas to %s\n", len(t.Lines()), w*opts.Scale, h*opts.Scale, out)
}
