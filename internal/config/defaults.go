package config

import (
	_ "embed"
)

//go:embed defaults/turtle.yaml
var defaultTurtleYAML []byte

// DefaultConfig returns the built-in configuration. It matches
// defaults/turtle.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			ExportScale: 1,
		},
		Animation: AnimationConfig{
			DelayMS:  500,
			TickRate: 60,
		},
		Pen: PenConfig{
			Size:  1,
			Color: "white",
			Down:  true,
		},
		Cursor: CursorConfig{
			Color: "brightgreen",
		},
		Keyboard: KeyboardConfig{
			Step: 10,
			Turn: 15,
		},
		UI: UIConfig{
			Theme: "default",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
		Source: "builtin",
	}
}
