package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-turtle/internal/script"
)

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "zigzag.logo")
	if err := os.WriteFile(path, []byte("repeat 3 [ fd 10 lt 90 fd 10 rt 90 ]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	prog, err := loadScript(path)
	if err != nil {
		t.Fatalf("loadScript() error: %v", err)
	}
	if prog.Title != "zigzag" {
		t.Errorf("Title = %q, expected zigzag", prog.Title)
	}
	if len(prog.Stmts) != 1 || prog.Stmts[0].Op != script.OpRepeat {
		t.Errorf("Stmts = %+v, expected one repeat", prog.Stmts)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.logo")
	if err := os.WriteFile(bad, []byte("fd 10\njump 3"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadScript(bad); !errors.Is(err, script.ErrUnknownCommand) {
		t.Errorf("error = %v, expected ErrUnknownCommand", err)
	}
	if _, err := loadScript(filepath.Join(dir, "missing.logo")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, expected not-exist", err)
	}
}
