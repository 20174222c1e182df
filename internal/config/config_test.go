package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-turtle/internal/core"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultTurtleYAML)
	if err != nil {
		t.Fatalf("embedded config invalid: %v", err)
	}
	def := DefaultConfig()
	def.Source = ""
	if cfg != def {
		t.Errorf("embedded config = %+v\nexpected %+v", cfg, def)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := Validate(DefaultConfig()); err != nil {
		t.Errorf("DefaultConfig() invalid: %v", err)
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("pen:\n  color: red\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.PenColor() != core.ColorRed {
		t.Errorf("PenColor() = %v, expected red", cfg.PenColor())
	}
	if !cfg.Pen.Down || cfg.Pen.Size != 1 {
		t.Errorf("pen = %+v, expected defaults for size and down", cfg.Pen)
	}
	if cfg.Delay() != 500*time.Millisecond {
		t.Errorf("Delay() = %v, expected 500ms", cfg.Delay())
	}
}

func TestParseSpeedPresetOverridesDelay(t *testing.T) {
	cfg, err := Parse([]byte("animation:\n  delay_ms: 42\n  speed: fast\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Animation.DelayMS != 150 {
		t.Errorf("DelayMS = %d, expected 150", cfg.Animation.DelayMS)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"negative delay", "animation:\n  delay_ms: -5\n", "DelayMS"},
		{"zero tick rate", "animation:\n  tick_rate: 0\n", "TickRate"},
		{"bad speed", "animation:\n  speed: ludicrous\n", "Speed"},
		{"unknown color", "pen:\n  color: chartreuse\n", "Color"},
		{"zero pen size", "pen:\n  size: 0\n", "Size"},
		{"empty address", "ssh:\n  address: \"\"\n", "Address"},
		{"turn too big", "keyboard:\n  turn: 720\n", "Turn"},
		{"unknown theme", "ui:\n  theme: neon\n", "Theme"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q does not mention %s", err, tc.field)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("pen: [")); err == nil {
		t.Error("expected YAML error")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	if err := os.WriteFile(path, []byte("animation:\n  delay_ms: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Animation.DelayMS != 100 {
		t.Errorf("DelayMS = %d, expected 100", cfg.Animation.DelayMS)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("pen:\n  size: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for custom config")
	}
}

func TestParseSpeed(t *testing.T) {
	for _, p := range AllSpeeds() {
		got, ok := ParseSpeed(strings.ToUpper(string(p)))
		if !ok || got != p {
			t.Errorf("ParseSpeed(%q) = %q, %v", p, got, ok)
		}
	}
	if _, ok := ParseSpeed("warp"); ok {
		t.Error("ParseSpeed(warp) should fail")
	}
}

func TestSpeedLadder(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		in, faster, slower time.Duration
	}{
		{500 * ms, 250 * ms, 750 * ms},
		{0, 0, 25 * ms},
		{300 * ms, 250 * ms, 500 * ms},
		{3000 * ms, 2000 * ms, 3000 * ms},
		{9000 * ms, 3000 * ms, 9000 * ms},
	}
	for _, tc := range tests {
		if got := Faster(tc.in); got != tc.faster {
			t.Errorf("Faster(%v) = %v, expected %v", tc.in, got, tc.faster)
		}
		if got := Slower(tc.in); got != tc.slower {
			t.Errorf("Slower(%v) = %v, expected %v", tc.in, got, tc.slower)
		}
	}
}

func TestTurtleOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Canvas.Width = 300
	cfg.Pen.Down = false

	opts := cfg.TurtleOptions(160, 96)
	if opts.Width != 300 || opts.Height != 96 {
		t.Errorf("canvas = %vx%v, expected 300x96", opts.Width, opts.Height)
	}
	if opts.Pen.Drawing {
		t.Error("pen should start up")
	}
	if opts.Pen.Color != core.ColorWhite {
		t.Errorf("pen color = %v, expected white", opts.Pen.Color)
	}
	if opts.Delay != 500*time.Millisecond {
		t.Errorf("Delay = %v, expected 500ms", opts.Delay)
	}

	rc := cfg.Runtime()
	if rc.TickRate != 60 || rc.CanvasW != 300 {
		t.Errorf("Runtime() = %+v", rc)
	}
}
