package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-turtle/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionForward},
		{"w", runes("w"), core.ActionForward},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionBackward},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"u", runes("u"), core.ActionUndo},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, core.ActionUndo},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPen},
		{"c", runes("c"), core.ActionColor},
		{"]", runes("]"), core.ActionWider},
		{"[", runes("["), core.ActionNarrower},
		{"+", runes("+"), core.ActionFaster},
		{"-", runes("-"), core.ActionSlower},
		{"h", runes("h"), core.ActionHome},
		{"r", runes("r"), core.ActionReset},
		{":", runes(":"), core.ActionPrompt},
		{"?", runes("?"), core.ActionHelp},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionSnapshot},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestMapKeyDisabledBinding(t *testing.T) {
	keys := DefaultKeyMap()
	keys.Snapshot.SetEnabled(false)
	km := NewKeyMapperWith(keys)

	if got := km.MapKey(tea.KeyMsg{Type: tea.KeyCtrlS}); got != core.ActionNone {
		t.Errorf("disabled binding mapped to %v", got)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runes("n"), MenuActionBlank},
		{runes("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runes("x"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}
