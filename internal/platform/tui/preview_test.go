package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-turtle/internal/core"
	"github.com/vovakirdan/tui-turtle/internal/script"
)

func inked(s *core.Screen) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				n++
			}
		}
	}
	return n
}

func TestThumbnail(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		inked bool
	}{
		{"empty", "", false},
		{"pen up", "pu fd 200", false},
		{"line", "fd 200", true},
		{"stops on error", "fd 200 repeat 100000 [ repeat 100000 [ ] ]", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stmts, err := script.Parse(tc.src)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			s := Thumbnail(stmts, thumbCols, thumbRows)
			if s.Width() != thumbCols || s.Height() != thumbRows {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), thumbCols, thumbRows)
			}
			labelled := strings.Contains(s.String(), emptyLabel)
			if labelled == tc.inked {
				t.Errorf("labelled = %v for inked = %v", labelled, tc.inked)
			}
			if tc.inked && inked(s) == 0 {
				t.Error("expected ink on the thumbnail")
			}
			if strings.ContainsAny(s.String(), string(cursorGlyphs[:])) {
				t.Error("thumbnail should not show the cursor")
			}
		})
	}
}

func TestMenuShowsPreview(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), DefaultTheme())
	if m.previews[0] != "" {
		t.Error("blank canvas should have no preview")
	}

	idx := -1
	for i, item := range m.items {
		if item.ProgramID == "tui-test-line" {
			idx = i
		}
	}
	if idx < 0 || m.previews[idx] == "" {
		t.Fatalf("test program preview missing (index %d)", idx)
	}

	for i := 0; i < idx; i++ {
		m = menuUpdate(t, m, runes("j"))
	}
	if !strings.Contains(m.View(), "╭") {
		t.Error("View() should frame the highlighted preview")
	}

	narrow := m
	narrow.width = menuPreviewMinWidth - 1
	if strings.Contains(narrow.View(), "╭") {
		t.Error("narrow View() should hide the preview")
	}
}
