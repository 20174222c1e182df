package config

import (
	"strings"
	"time"
)

// SpeedPreset names a canned animation delay.
type SpeedPreset string

const (
	SpeedSlow    SpeedPreset = "slow"
	SpeedNormal  SpeedPreset = "normal"
	SpeedFast    SpeedPreset = "fast"
	SpeedInstant SpeedPreset = "instant"
)

// AllSpeeds returns all available speed presets, slowest first.
func AllSpeeds() []SpeedPreset {
	return []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedInstant}
}

// ParseSpeed converts a string to a SpeedPreset.
func ParseSpeed(s string) (SpeedPreset, bool) {
	switch SpeedPreset(strings.ToLower(strings.TrimSpace(s))) {
	case SpeedSlow:
		return SpeedSlow, true
	case SpeedNormal:
		return SpeedNormal, true
	case SpeedFast:
		return SpeedFast, true
	case SpeedInstant:
		return SpeedInstant, true
	}
	return "", false
}

// DelayMS returns the delay in milliseconds for the preset.
func (p SpeedPreset) DelayMS() int {
	switch p {
	case SpeedSlow:
		return 1000
	case SpeedFast:
		return 150
	case SpeedInstant:
		return 0
	default:
		return 500
	}
}

// ApplySpeedPreset sets the animation delay from a preset.
func ApplySpeedPreset(cfg *Config, preset SpeedPreset) {
	cfg.Animation.Speed = string(preset)
	cfg.Animation.DelayMS = preset.DelayMS()
}

// delaySteps is the ladder walked by Faster and Slower, in milliseconds.
var delaySteps = []int{0, 25, 50, 100, 150, 250, 500, 750, 1000, 1500, 2000, 3000}

// Faster returns the next shorter delay on the ladder.
func Faster(d time.Duration) time.Duration {
	ms := int(d / time.Millisecond)
	for i := len(delaySteps) - 1; i >= 0; i-- {
		if delaySteps[i] < ms {
			return time.Duration(delaySteps[i]) * time.Millisecond
		}
	}
	return 0
}

// Slower returns the next longer delay on the ladder. Delays at or past the
// top step are returned unchanged.
func Slower(d time.Duration) time.Duration {
	ms := int(d / time.Millisecond)
	for _, s := range delaySteps {
		if s > ms {
			return time.Duration(s) * time.Millisecond
		}
	}
	return d
}
