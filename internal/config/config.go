// Package config provides YAML-based configuration loading, validation and
// animation speed presets for the turtle.
package config

import (
	"time"

	"github.com/vovakirdan/tui-turtle/internal/core"
	"github.com/vovakirdan/tui-turtle/internal/turtle"
)

// Config contains all turtle settings.
type Config struct {
	Canvas    CanvasConfig    `yaml:"canvas"`
	Animation AnimationConfig `yaml:"animation"`
	Pen       PenConfig       `yaml:"pen"`
	Cursor    CursorConfig    `yaml:"cursor"`
	Keyboard  KeyboardConfig  `yaml:"keyboard"`
	UI        UIConfig        `yaml:"ui"`
	SSH       SSHConfig       `yaml:"ssh"`

	// Source is where the config was loaded from ("embedded" for the default).
	Source string `yaml:"-"`
}

// CanvasConfig sizes the drawing area.
type CanvasConfig struct {
	Width       float64 `yaml:"width" validate:"gte=0"`  // 0 = fit terminal
	Height      float64 `yaml:"height" validate:"gte=0"` // 0 = fit terminal
	ExportScale float64 `yaml:"export_scale" validate:"gt=0,lte=16"`
}

// AnimationConfig controls timing.
type AnimationConfig struct {
	DelayMS  int    `yaml:"delay_ms" validate:"gte=0,lte=600000"`
	TickRate int    `yaml:"tick_rate" validate:"gte=1,lte=240"`
	Speed    string `yaml:"speed" validate:"omitempty,oneof=slow normal fast instant"`
}

// PenConfig is the pen a new turtle starts with.
type PenConfig struct {
	Size  float64 `yaml:"size" validate:"gt=0,lte=64"`
	Color string  `yaml:"color" validate:"color"`
	Down  bool    `yaml:"down"`
}

// CursorConfig styles the turtle glyph.
type CursorConfig struct {
	Color string `yaml:"color" validate:"color"`
}

// KeyboardConfig sets how far arrow keys move and turn.
type KeyboardConfig struct {
	Step float64 `yaml:"step" validate:"gt=0"`
	Turn float64 `yaml:"turn" validate:"gt=0,lte=360"`
}

// UIConfig styles the terminal interface.
type UIConfig struct {
	Theme string `yaml:"theme" validate:"oneof=default mono"`
}

// SSHConfig configures `turtle serve`.
type SSHConfig struct {
	Address            string `yaml:"address" validate:"required"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes" validate:"gte=1"`
}

// Delay returns the animation delay as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.Animation.DelayMS) * time.Millisecond
}

// PenColor returns the parsed pen color.
func (c Config) PenColor() core.Color {
	col, _ := core.ParseColor(c.Pen.Color)
	return col
}

// CursorColor returns the parsed cursor color.
func (c Config) CursorColor() core.Color {
	col, _ := core.ParseColor(c.Cursor.Color)
	return col
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMinutes) * time.Minute
}

// Runtime converts the config to the settings a session starts with.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = c.Animation.TickRate
	rc.Delay = c.Delay()
	rc.CanvasW = c.Canvas.Width
	rc.CanvasH = c.Canvas.Height
	return rc
}

// TurtleOptions builds options for a new turtle. Canvas dimensions left at 0
// are taken from fitW and fitH.
func (c Config) TurtleOptions(fitW, fitH float64) turtle.Options {
	opts := turtle.DefaultOptions()
	opts.Width = c.Canvas.Width
	if opts.Width == 0 {
		opts.Width = fitW
	}
	opts.Height = c.Canvas.Height
	if opts.Height == 0 {
		opts.Height = fitH
	}
	opts.Delay = c.Delay()
	opts.Pen = turtle.Pen{
		Size:    c.Pen.Size,
		Color:   c.PenColor(),
		Drawing: c.Pen.Down,
	}
	return opts
}
