// Package core provides the terminal-side building blocks shared by the
// platform and renderers: a colored character Screen, a braille dot canvas
// and the color palette. It has no Bubble Tea dependency.
package core

import "math"

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Round converts a float to the nearest int. Non-finite values and values
// outside ±1<<30 are clamped so rasterisers never loop on them.
func Round(f float64) int {
	const limit = 1 << 30
	switch {
	case math.IsNaN(f):
		return 0
	case f > limit:
		return limit
	case f < -limit:
		return -limit
	}
	return int(math.Round(f))
}
