package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

// MaxFrameDelta caps the measured time between ticks, in seconds.
const MaxFrameDelta = 0.05

// holdWindow keeps movement keys active between terminal key repeats,
// since terminals report presses but never releases.
const holdWindow = 150 * time.Millisecond

// Model is the Bubble Tea model for running one game mode.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	input    core.InputFrame
	held     map[core.Action]time.Time
	firing   bool
	view     viewport
	lastTick time.Time
	state    core.GameState
	runSaved bool // whether the finished run has been recorded

	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		input:  core.NewInputFrame(),
		held:   make(map[core.Action]time.Time),
	}
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.view = newViewport(m.game.DrawList(), cfg.ScreenW, cfg.ScreenH)
	m.logger.Info("run started", "mode", game.ID(), "difficulty", cfg.Difficulty)
	return m
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

	case tea.MouseMsg:
		m.firing = m.keys.MapMouse(msg, m.firing)
		m.input.SetPointer(m.view.world(msg.X, msg.Y))
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.view = newViewport(m.game.DrawList(), msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsHeldAction(action):
		m.held[action] = time.Now()
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick advances the simulation by the measured frame time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	dt = core.Clamp(dt, 0, MaxFrameDelta)
	m.lastTick = now

	for a, at := range m.held {
		if now.Sub(at) > holdWindow {
			delete(m.held, a)
			continue
		}
		m.input.Set(a)
	}
	if m.firing {
		m.input.Set(core.ActionFire)
	}

	result := m.game.Step(dt, m.input)
	m.input.Clear()

	if m.state.GameOver && !result.State.GameOver {
		m.runSaved = false
	}
	m.state = result.State

	if m.state.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	if result.Transition == core.TransitionMenu {
		m.logger.Info("back to menu", "mode", m.game.ID())
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged and play goes on.
func (m Model) saveRun() {
	m.logger.Info("game over", "mode", m.game.ID(), "score", m.state.Score, "won", m.state.Won)
	if m.store == nil {
		return
	}
	r, err := m.store.SaveRun(storage.Run{
		Mode:       m.game.ID(),
		Difficulty: m.config.Difficulty,
		Score:      m.state.Score,
		Won:        m.state.Won,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "run_id", r.RunID)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	Rasterize(m.screen, m.game.DrawList())

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.screen, m.game.DrawList())
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// Outcome is how a standalone game run ended.
type Outcome struct {
	BackToMenu bool
	State      core.GameState
}

// Run starts a Bubble Tea program for the given game and blocks until the
// player quits or goes back to the menu.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (Outcome, error) {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // aim follows the pointer without a button held
	)

	finalModel, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Outcome{}, nil
	}
	return Outcome{BackToMenu: m.BackToMenu(), State: m.State()}, nil
}
