package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-turtle/internal/core"
)

// KeyMap defines the key bindings for the drawing screen.
type KeyMap struct {
	Forward  key.Binding
	Backward key.Binding
	Left     key.Binding
	Right    key.Binding
	Undo     key.Binding
	Pen      key.Binding
	Color    key.Binding
	Wider    key.Binding
	Narrower key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Home     key.Binding
	Reset    key.Binding
	Prompt   key.Binding
	Help     key.Binding
	Snapshot key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Left, k.Undo, k.Pen, k.Prompt, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Forward, k.Backward, k.Left, k.Right, k.Home},
		{k.Pen, k.Color, k.Wider, k.Narrower},
		{k.Undo, k.Reset, k.Faster, k.Slower},
		{k.Prompt, k.Snapshot, k.Help, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "back"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "turn right"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Pen: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pen up/down"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "color"),
		),
		Wider: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "thicker"),
		),
		Narrower: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "thinner"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home (2 undos)"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Prompt: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save png"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to turtle actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     KeyMap
	bindings []boundAction
}

type boundAction struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return NewKeyMapperWith(DefaultKeyMap())
}

// NewKeyMapperWith creates a key mapper for the given bindings.
func NewKeyMapperWith(keys KeyMap) *KeyMapper {
	km := &KeyMapper{keys: keys}
	k := &km.keys
	km.bindings = []boundAction{
		{&k.Quit, core.ActionQuit},
		{&k.Forward, core.ActionForward},
		{&k.Backward, core.ActionBackward},
		{&k.Left, core.ActionLeft},
		{&k.Right, core.ActionRight},
		{&k.Undo, core.ActionUndo},
		{&k.Pen, core.ActionPen},
		{&k.Color, core.ActionColor},
		{&k.Wider, core.ActionWider},
		{&k.Narrower, core.ActionNarrower},
		{&k.Faster, core.ActionFaster},
		{&k.Slower, core.ActionSlower},
		{&k.Home, core.ActionHome},
		{&k.Reset, core.ActionReset},
		{&k.Prompt, core.ActionPrompt},
		{&k.Help, core.ActionHelp},
		{&k.Snapshot, core.ActionSnapshot},
		{&k.Back, core.ActionBack},
	}
	return km
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns ActionNone for unbound keys.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	for _, b := range km.bindings {
		if key.Matches(msg, *b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBlank
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "n":
		return MenuActionBlank
	}

	return MenuActionNone
}
