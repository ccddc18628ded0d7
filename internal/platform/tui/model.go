package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sokoban/internal/core"
)

// footerHeight is the number of terminal lines below the game screen.
const footerHeight = 1

// Options configures a Model.
type Options struct {
	Config core.RuntimeConfig
	Keys   KeyMap

	// Watch delivers level numbers whose files changed. Optional.
	Watch <-chan int

	// ScreenshotDir defaults to ~/.sokoban/screenshots.
	ScreenshotDir string

	Logger *log.Logger

	// QuitOnBack ends the program when the player asks for the level list.
	QuitOnBack bool
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	watch      <-chan int
	done       chan struct{} // closed when the program using the model ends
	logger     *log.Logger
	shotDir    string
	quitOnBack bool

	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	statusTTL  int
	quitting   bool
	back       bool
}

// NewModel creates a new Bubble Tea model for the given game.
// Config.ScreenH is the full terminal height; the help footer is taken
// from it before the game sees the screen.
func NewModel(game Game, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".sokoban", "screenshots")
	}
	if opts.Keys.Quit.Keys() == nil {
		opts.Keys = DefaultKeyMap()
	}

	cfg := opts.Config
	cfg.ScreenH -= footerHeight

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       opts.Keys,
		help:       h,
		watch:      opts.Watch,
		done:       make(chan struct{}),
		logger:     logger,
		shotDir:    shotDir,
		quitOnBack: opts.QuitOnBack,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), waitForWatch(m.watch, m.done))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case WatchMsg:
		return m.handleWatch(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionBack:
		m.back = true
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize adapts the screen to the terminal. Games that support it keep
// their progress; others are restarted.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height - footerHeight
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// handleWatch reloads the current level when its files changed.
func (m Model) handleWatch(msg WatchMsg) (tea.Model, tea.Cmd) {
	if r, ok := m.game.(reloader); ok && r.Reload(msg.Level) {
		m.logger.Info("level files changed", "level", msg.Level)
		m.setStatus(fmt.Sprintf("level %d reloaded", msg.Level))
	}
	return m, waitForWatch(m.watch, m.done)
}

// setStatus shows a message in the footer for about two seconds.
func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTTL = 2 * m.config.TickRate
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := helpStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// stop ends the pending watch read, so a later model on the same watch
// channel receives every event. Call it once, after the program exits.
func (m Model) stop() {
	close(m.done)
}

// BackToLevels returns true if the user asked for the level list.
func (m Model) BackToLevels() bool {
	return m.back
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game and returns the
// final model, so callers can tell quitting from going back to the levels.
func Run(game Game, opts Options) (Model, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	model.stop()
	if err != nil {
		return model, err
	}
	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}
