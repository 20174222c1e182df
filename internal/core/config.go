package core

import "time"

// RuntimeConfig carries the terminal-facing settings a session starts with.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	TickRate int           // Frames per second (default 60)
	Delay    time.Duration // Animation time per turtle command
	CanvasW  float64       // Turtle canvas width; 0 = fit the screen
	CanvasH  float64       // Turtle canvas height; 0 = fit the screen
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Delay:    500 * time.Millisecond,
	}
}
