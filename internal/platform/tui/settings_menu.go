package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brick-arcade/internal/config"
)

// volumeSteps is the number of volume key presses from silent to full.
const volumeSteps = 20

// VolumeStep is how much one key press changes the master volume.
const VolumeStep = 1.0 / volumeSteps

const (
	rowDifficulty = iota
	rowVolume
	settingsRows
)

const volumeBarWidth = 20

// SettingsKeyMap defines the key bindings for the settings screen.
type SettingsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Back, k.Quit},
	}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("left/h", "decrease"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d", "enter", " "),
			key.WithHelp("right/l", "increase"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "save & back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	settingsLabelStyle  = lipgloss.NewStyle().Width(16)
	settingsActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	settingsBarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	settingsErrStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// SettingsModel edits difficulty and master volume.
type SettingsModel struct {
	settings config.Settings
	path     string // empty keeps changes in memory only
	logger   *log.Logger
	cursor   int
	keys     SettingsKeyMap
	help     help.Model
	width    int
	height   int
	err      error
	done     bool
	quitting bool
}

// NewSettingsModel creates a settings screen. Changes are written to path
// when the screen is left with Back; an empty path skips saving.
func NewSettingsModel(s config.Settings, path string, logger *log.Logger, width, height int) SettingsModel {
	h := help.New()
	h.Width = width
	return SettingsModel{
		settings: s,
		path:     path,
		logger:   logger,
		keys:     DefaultSettingsKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if err := m.save(); err != nil {
				m.err = err
				return m, nil
			}
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor + settingsRows - 1) % settingsRows

		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % settingsRows

		case key.Matches(msg, m.keys.Left):
			m.adjust(-1)

		case key.Matches(msg, m.keys.Right):
			m.adjust(1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// adjust changes the selected row by one step in direction dir.
func (m *SettingsModel) adjust(dir int) {
	switch m.cursor {
	case rowDifficulty:
		d := m.settings.Difficulty
		if dir > 0 {
			d = d.Next()
		} else {
			d = d.Prev()
		}
		m.settings.Difficulty = d
	case rowVolume:
		steps := math.Round(m.settings.MasterVolume*volumeSteps) + float64(dir)
		m.settings.SetVolume(steps / volumeSteps)
	}
}

func (m *SettingsModel) save() error {
	if m.path == "" {
		return nil
	}
	if err := config.SaveSettings(m.path, m.settings); err != nil {
		if m.logger != nil {
			m.logger.Error("could not save settings", "error", err)
		}
		return err
	}
	if m.logger != nil {
		m.logger.Info("settings saved", "difficulty", m.settings.Difficulty, "volume", m.settings.MasterVolume)
	}
	return nil
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(menuTitleStyle.Render(centerText("SETTINGS", m.width)))
	b.WriteString("\n\n")

	filled := int(math.Round(m.settings.MasterVolume * volumeBarWidth))
	bar := settingsBarStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", volumeBarWidth-filled)

	rows := []string{
		settingsLabelStyle.Render("Difficulty") + "< " + m.settings.Difficulty.Title() + " >",
		settingsLabelStyle.Render("Master Volume") + fmt.Sprintf("%s %3d%%", bar, int(math.Round(m.settings.MasterVolume*100))),
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = settingsActiveStyle.Render("> ")
		}
		b.WriteString("    " + cursor + row + "\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(settingsErrStyle.Render(fmt.Sprintf("    Could not save: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuFooterStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Settings returns the edited settings.
func (m SettingsModel) Settings() config.Settings {
	return m.settings
}

// IsDone returns true once the user left the screen with Back.
func (m SettingsModel) IsDone() bool {
	return m.done
}

// IsQuitting returns true if user wants to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// SettingsResult holds the outcome of the settings screen.
type SettingsResult struct {
	Settings config.Settings
	Quit     bool
}

// RunSettings runs the settings screen and returns the edited settings.
func RunSettings(s config.Settings, path string, logger *log.Logger, width, height int) (SettingsResult, error) {
	p := tea.NewProgram(NewSettingsModel(s, path, logger, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return SettingsResult{Settings: s}, err
	}

	m, ok := finalModel.(SettingsModel)
	if !ok {
		return SettingsResult{Settings: s, Quit: true}, nil
	}
	return SettingsResult{Settings: m.Settings(), Quit: m.IsQuitting()}, nil
}
