package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-turtle/internal/core"
	"github.com/vovakirdan/tui-turtle/internal/registry"
)

// menuPreviewMinWidth is the narrowest terminal that still shows thumbnails.
const menuPreviewMinWidth = 60

// MenuItem represents a selectable program in the menu.
// An empty ProgramID is the blank canvas.
type MenuItem struct {
	ProgramID   string
	Title       string
	Description string
}

// MenuModel is the Bubble Tea model for the program picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	theme     Theme
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user picks a program

	previews []string // Rendered thumbnails, parallel to items
}

// NewMenuModel creates a new menu model listing every registered program
// after a blank canvas entry.
func NewMenuModel(cfg core.RuntimeConfig, theme Theme) MenuModel {
	programs := registry.List()
	items := make([]MenuItem, 0, len(programs)+1)
	items = append(items, MenuItem{
		Title:       "Blank canvas",
		Description: "Draw with the keyboard and the : prompt",
	})

	previews := make([]string, 1, len(programs)+1)

	for _, p := range programs {
		items = append(items, MenuItem{
			ProgramID:   p.ID,
			Title:       p.Title,
			Description: p.Description,
		})

		preview := ""
		if prog, err := registry.Get(p.ID); err == nil {
			preview = theme.Canvas.Paint(Thumbnail(prog.Statements(), thumbCols, thumbRows))
		}
		previews = append(previews, preview)
	}

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		theme:     theme,
		keyMapper: NewKeyMapper(),
		previews:  previews,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit // Exit menu to start drawing

	case MenuActionBlank:
		blank := m.items[0]
		m.selected = &blank
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu: the program list with a thumbnail of the
// highlighted program beside it.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	th := m.theme
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
	}

	list := make([]string, 0, len(m.items))
	for i, item := range m.items {
		if i == m.cursor {
			list = append(list, th.MenuItemActive.Render("> "+item.Title))
		} else {
			list = append(list, th.MenuItemNormal.Render("  "+item.Title))
		}
	}
	body := lipgloss.JoinVertical(lipgloss.Left, list...)

	if preview := m.previews[m.cursor]; preview != "" && m.width >= menuPreviewMinWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "    ", th.MenuPreview.Render(preview))
	}

	lines := []string{
		"",
		center(th.MenuTitle.Render("  T U R T L E  ")),
		"",
		center(th.MenuDescription.Render("Pick something to draw")),
		"",
		center(body),
		"",
		center(th.MenuDescription.Render(m.items[m.cursor].Description)),
		"",
		center(th.MenuControls.Render("Up/Down: Navigate  |  Enter: Draw  |  N: Blank  |  Q: Quit")),
	}
	return strings.Join(lines, "\n") + "\n"
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ProgramID string // Empty for the blank canvas
	Config    core.RuntimeConfig
	Quit      bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, theme Theme) (MenuResult, error) {
	model := NewMenuModel(cfg, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.ProgramID = m.Selected().ProgramID
	return result, nil
}

// ProgramFor resolves a menu selection to the program a drawing screen
// runs. An empty ID is the blank canvas.
func ProgramFor(id string) (Program, error) {
	if id == "" {
		return Program{Title: "blank"}, nil
	}
	p, err := registry.Get(id)
	if err != nil {
		return Program{}, err
	}
	return Program{Title: p.Title, Stmts: p.Statements()}, nil
}
