package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-homestead/internal/core"
	"github.com/vovakirdan/tui-homestead/internal/homestead"
)

// Options configures the terminal front end.
type Options struct {
	// MoveHold is how many frames a movement key counts as held after its
	// last press or auto-repeat; 0 selects core.DefaultMoveHold.
	MoveHold int
	// ScreenshotDir receives ctrl+s dumps; empty means ~/.homestead/screenshots.
	ScreenshotDir string
	Logger        *log.Logger
}

// Model is the Bubble Tea model for running the homestead.
type Model struct {
	game     *homestead.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	opts     Options
	input    *core.InputState
	keys     KeyMap
	help     help.Model
	log      *log.Logger
	lastTick time.Time
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given world.
func NewModel(game *homestead.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config: cfg,
		opts:   opts,
		input:  core.NewInputState(opts.MoveHold),
		keys:   DefaultKeyMap(),
		help:   h,
		log:    logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records world actions; they are applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.input.Press(a)
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps running;
// the screen and camera pick up the new size on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.log.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one world frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(dt, m.input.Frame())
	m.input.Advance()
	m.state = result.State

	if m.state.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.log.Error("screenshot", "err", err)
			return
		}
		dir = filepath.Join(home, ".homestead", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Error("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Error("screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// State returns the world summary from the last tick.
func (m Model) State() core.GameState { return m.state }

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	helpView := helpStyle.Render(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-lipgloss.Height(helpView))
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// Run starts the Bubble Tea program with the given world.
func Run(game *homestead.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
