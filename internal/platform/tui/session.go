package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arcade/internal/config"
	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenSettings
	screenScores
)

// SessionModel runs the whole arcade in one program: menu, games,
// settings and the scoreboard. Sub-screens quit their own programs when
// done, so their commands are dropped when the session switches screens.
type SessionModel struct {
	store        *storage.Store
	logger       *log.Logger
	config       core.RuntimeConfig
	settings     config.Settings
	settingsPath string

	current    screen
	menu       MenuModel
	game       Model
	settingsUI SettingsModel
	scores     ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session starting at the main menu.
// An empty settingsPath keeps settings changes in memory.
func NewSessionModel(store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, settings config.Settings, settingsPath string) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.Difficulty = settings.Difficulty
	return SessionModel{
		store:        store,
		logger:       logger,
		config:       cfg,
		settings:     settings,
		settingsPath: settingsPath,
		menu:         NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Entry {
	case EntryGame:
		game, err := registry.Create(selected.GameID)
		if err != nil {
			m.logger.Error("cannot create game", "error", err)
			return m.toMenu()
		}
		m.game = NewModel(game, m.store, m.logger, m.config)
		m.current = screenGame
		return m, m.game.Init()

	case EntrySettings:
		m.settingsUI = NewSettingsModel(m.settings, m.settingsPath, m.logger, m.config.ScreenW, m.config.ScreenH)
		m.current = screenSettings
		return m, m.settingsUI.Init()

	case EntryScoreboard:
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scores.Init()
	}

	return m.toMenu()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settingsUI.Update(msg)
	if settingsModel, ok := newModel.(SettingsModel); ok {
		m.settingsUI = settingsModel
	}

	if m.settingsUI.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.settingsUI.IsDone() {
		m.settings = m.settingsUI.Settings()
		m.config.Difficulty = m.settings.Difficulty
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scoreModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = scoreModel
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenSettings:
		return m.settingsUI.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Settings returns the session's current settings.
func (m SessionModel) Settings() config.Settings {
	return m.settings
}
