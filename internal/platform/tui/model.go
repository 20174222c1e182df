package tui

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-turtle/internal/config"
	"github.com/vovakirdan/tui-turtle/internal/core"
	"github.com/vovakirdan/tui-turtle/internal/raster"
	"github.com/vovakirdan/tui-turtle/internal/script"
	"github.com/vovakirdan/tui-turtle/internal/turtle"
)

// canvasUnits is the length of the shorter canvas side when the canvas is
// fitted to the terminal.
const canvasUnits = 450

// maxPromptHistory bounds the remembered prompt lines.
const maxPromptHistory = 50

// Program is what a drawing screen runs when it opens.
type Program struct {
	Title string
	Stmts []script.Stmt
}

// ModelOptions configures a drawing screen.
type ModelOptions struct {
	Settings config.Config
	Runtime  core.RuntimeConfig
	Program  Program
	Logger   *log.Logger

	// SnapshotDir receives ctrl+s PNGs. Empty disables snapshots.
	SnapshotDir string

	// Embedded is set when the screen runs inside a SessionModel; Back then
	// hands control to the menu instead of quitting the program.
	Embedded bool
}

// Model is the Bubble Tea model for the drawing screen.
type Model struct {
	turtle   *turtle.Turtle
	canvas   *ScreenRenderer
	screen   *core.Screen
	config   core.RuntimeConfig
	settings config.Config
	title    string

	keys   *KeyMapper
	help   help.Model
	prompt textinput.Model
	theme  Theme
	logger *log.Logger

	history     []string
	historyPos  int
	snapshotDir string
	embedded    bool

	message    string
	isError    bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a drawing screen and runs its program on a fresh turtle.
func NewModel(opts ModelOptions) Model {
	rc := opts.Runtime
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	title := opts.Program.Title
	if title == "" {
		title = "turtle"
	}

	rows := max(rc.ScreenH-2, 1)
	cw, ch := rc.CanvasW, rc.CanvasH
	fitW, fitH := FitCanvas(rc.ScreenW, rows)
	if cw <= 0 {
		cw = fitW
	}
	if ch <= 0 {
		ch = fitH
	}
	tOpts := opts.Settings.TurtleOptions(cw, ch)
	tOpts.Width, tOpts.Height = cw, ch
	tOpts.Delay = rc.Delay

	t := turtle.New(tOpts)

	prompt := textinput.New()
	prompt.Prompt = ": "
	prompt.Placeholder = "fd 50; rt 90; repeat 4 [ fd 20 lt 90 ]"
	prompt.CharLimit = 1024

	theme := ThemeByName(opts.Settings.UI.Theme)
	prompt.PromptStyle = theme.Prompt

	hm := help.New()
	hm.ShowAll = false

	m := Model{
		turtle:      t,
		canvas:      NewScreenRenderer(rc.ScreenW, rows, cw, ch, opts.Settings.CursorColor()),
		screen:      core.NewScreen(rc.ScreenW, rows),
		config:      rc,
		settings:    opts.Settings,
		title:       title,
		keys:        NewKeyMapper(),
		help:        hm,
		prompt:      prompt,
		theme:       theme,
		logger:      logger,
		snapshotDir: opts.SnapshotDir,
		embedded:    opts.Embedded,
	}
	m.layout()

	if len(opts.Program.Stmts) > 0 {
		logger.Info("running program", "title", title, "statements", len(opts.Program.Stmts))
		if err := script.Run(t, opts.Program.Stmts); err != nil {
			logger.Warn("program stopped", "title", title, "error", err)
			m.setError(err)
		}
	}

	return m
}

// FitCanvas returns a canvas size with the aspect ratio of cols x rows
// cells and the shorter side canvasUnits long.
func FitCanvas(cols, rows int) (float64, float64) {
	w := float64(cols * core.DotsPerCellX)
	h := float64(rows * core.DotsPerCellY)
	if w <= 0 || h <= 0 {
		return turtle.DefaultWidth, turtle.DefaultHeight
	}
	k := canvasUnits / math.Min(w, h)
	return w * k, h * k
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompt.Focused() {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.layout()
		return m, nil

	case TickMsg:
		m.turtle.Tick(time.Time(msg))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// layout sizes the canvas to whatever the status line and footer leave.
func (m *Model) layout() {
	m.help.Width = m.config.ScreenW
	m.prompt.Width = max(m.config.ScreenW-len(m.prompt.Prompt)-1, 1)

	footer := 1
	if m.help.ShowAll && !m.prompt.Focused() {
		footer = lipgloss.Height(m.help.View(m.keys.Keys()))
	}
	rows := max(m.config.ScreenH-1-footer, 1)
	m.screen.Resize(m.config.ScreenW, rows)
	m.canvas.Resize(m.config.ScreenW, rows)
}

// handleKey processes keyboard input on the canvas.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.message, m.isError = "", false

	t := m.turtle
	kb := m.settings.Keyboard

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}

	case core.ActionForward:
		t.Forward(kb.Step)
	case core.ActionBackward:
		t.Backward(kb.Step)
	case core.ActionLeft:
		t.Left(kb.Turn)
	case core.ActionRight:
		t.Right(kb.Turn)
	case core.ActionHome:
		t.Home()

	case core.ActionUndo:
		if !t.Undo() {
			m.setMessage("nothing to undo")
		}

	case core.ActionPen:
		if t.IsDown() {
			t.PenUp()
		} else {
			t.PenDown()
		}

	case core.ActionColor:
		t.SetColor(t.Pen().Color.Next())
	case core.ActionWider:
		t.SetPenSize(t.Pen().Size + 1)
	case core.ActionNarrower:
		t.SetPenSize(math.Max(t.Pen().Size-1, 1))

	case core.ActionFaster:
		t.SetDelay(config.Faster(t.Delay()))
	case core.ActionSlower:
		t.SetDelay(config.Slower(t.Delay()))

	case core.ActionReset:
		t.Reset()
		m.logger.Debug("canvas reset", "title", m.title)

	case core.ActionPrompt:
		m.historyPos = len(m.history)
		cmd := m.prompt.Focus()
		m.layout()
		return m, cmd

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case core.ActionSnapshot:
		m.snapshot()
	}

	return m, nil
}

// handlePromptKey edits and submits the command prompt.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		src := strings.TrimSpace(m.prompt.Value())
		m.closePrompt()
		if src != "" {
			m.remember(src)
			m.exec(src)
		}
		return m, nil

	case tea.KeyEsc:
		m.closePrompt()
		return m, nil

	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyUp:
		if m.historyPos > 0 {
			m.historyPos--
			m.prompt.SetValue(m.history[m.historyPos])
			m.prompt.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyPos < len(m.history)-1 {
			m.historyPos++
			m.prompt.SetValue(m.history[m.historyPos])
			m.prompt.CursorEnd()
		} else {
			m.historyPos = len(m.history)
			m.prompt.SetValue("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompt.Reset()
	m.prompt.Blur()
	m.layout()
}

func (m *Model) remember(src string) {
	if n := len(m.history); n > 0 && m.history[n-1] == src {
		m.historyPos = n
		return
	}
	m.history = append(m.history, src)
	if len(m.history) > maxPromptHistory {
		m.history = m.history[len(m.history)-maxPromptHistory:]
	}
	m.historyPos = len(m.history)
}

// exec runs a prompt line against the turtle.
func (m *Model) exec(src string) {
	m.message, m.isError = "", false
	if err := script.Exec(m.turtle, src); err != nil {
		m.logger.Debug("prompt error", "src", src, "error", err)
		m.setError(err)
		return
	}
	m.logger.Debug("prompt", "src", src)
}

// snapshot saves the current frame as a PNG.
func (m *Model) snapshot() {
	if m.snapshotDir == "" {
		m.setMessage("snapshots are disabled")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.snapshotDir, fmt.Sprintf("%s_%s.png", fileSlug(m.title), timestamp))

	opts := raster.DefaultOptions()
	opts.Scale = m.settings.Canvas.ExportScale
	if err := raster.SavePNG(m.turtle, path, opts); err != nil {
		m.logger.Error("snapshot failed", "path", path, "error", err)
		m.setError(err)
		return
	}
	m.logger.Info("snapshot saved", "path", path)
	m.setMessage("saved " + path)
}

func (m *Model) setMessage(s string) {
	m.message, m.isError = s, false
}

func (m *Model) setError(err error) {
	m.message, m.isError = err.Error(), true
}

// fileSlug makes a title safe for a file name.
func fileSlug(title string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '_'
	}, title)
	if s == "" {
		return "turtle"
	}
	return s
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.turtle.Draw(m.canvas)
	m.canvas.Flush(m.screen, 0, 0)

	return m.theme.Canvas.Paint(m.screen) + "\n" + m.statusLine() + "\n" + m.footer()
}

// statusLine shows the turtle's logical state.
func (m Model) statusLine() string {
	t := m.turtle
	th := m.theme
	p := t.Position()
	pen := t.Pen()

	state := "up"
	if pen.Drawing {
		state = "down"
	}

	field := func(name, value string) string {
		return th.HUDSeparator.Render(name+" ") + th.HUDValue.Render(value)
	}

	queue := field("queue", strconv.Itoa(t.Pending()))
	if t.Busy() {
		queue = th.HUDSeparator.Render("queue ") + th.HUDBusy.Render(strconv.Itoa(t.Pending()))
	}

	parts := []string{
		th.HUDTitle.Render(m.title),
		field("pos", fmt.Sprintf("%.0f,%.0f", p.X, p.Y)),
		field("heading", fmt.Sprintf("%.0f°", t.Heading())),
		field("pen", fmt.Sprintf("%s %s %g", state, pen.Color, pen.Size)),
		field("delay", t.Delay().String()),
		queue,
		field("undo", strconv.Itoa(t.UndoDepth())),
	}
	line := strings.Join(parts, th.HUDSeparator.Render(" | "))

	if m.message != "" {
		style := th.Message
		if m.isError {
			style = th.Error
		}
		line += "  " + style.Render(m.message)
	}

	return lipgloss.NewStyle().MaxWidth(m.config.ScreenW).Render(line)
}

// footer shows the prompt when it is open, otherwise the key help.
func (m Model) footer() string {
	if m.prompt.Focused() {
		return m.prompt.View()
	}
	return m.help.View(m.keys.Keys())
}

// Turtle returns the turtle driven by this screen.
func (m Model) Turtle() *turtle.Turtle {
	return m.turtle
}

// Message returns the last status message.
func (m Model) Message() string {
	return m.message
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the drawing screen and blocks until it exits. It reports
// whether the user asked to go back to the menu.
func Run(opts ModelOptions) (bool, error) {
	opts.Embedded = false
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
