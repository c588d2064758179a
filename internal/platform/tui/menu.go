package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/registry"
)

// MenuEntry identifies what a main menu item does.
type MenuEntry int

const (
	EntryGame MenuEntry = iota
	EntrySettings
	EntryScoreboard
	EntryQuit
)

// MenuItem is one line of the main menu.
type MenuItem struct {
	Entry  MenuEntry
	GameID string // set for EntryGame
	Title  string
	Blurb  string
}

// modeBlurbs describe the registered modes on the menu.
var modeBlurbs = map[string]string{
	"classic": "paddle and ball, clear the wall",
	"reborn":  "aim the cannon, hold the line",
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuBlurbStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	menuFooterStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).Padding(1, 3)
)

// MenuModel is the main menu: every registered mode, then settings, the
// scoreboard and quit. Picking an item ends the program so the caller can
// run the matching screen.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	config   core.RuntimeConfig
	keys     *KeyMapper
	quitting bool
	selected *MenuItem
}

func menuItems() []MenuItem {
	modes := registry.List()
	items := make([]MenuItem, 0, len(modes)+3)
	for _, g := range modes {
		items = append(items, MenuItem{Entry: EntryGame, GameID: g.ID, Title: g.Title, Blurb: modeBlurbs[g.ID]})
	}
	return append(items,
		MenuItem{Entry: EntrySettings, Title: "Settings", Blurb: "difficulty and volume"},
		MenuItem{Entry: EntryScoreboard, Title: "High Scores", Blurb: "best and recent runs"},
		MenuItem{Entry: EntryQuit, Title: "Quit"},
	)
}

// NewMenuModel builds the menu sized to cfg's screen.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{items: menuItems(), config: cfg, keys: NewKeyMapper()}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		return m.choose(m.items[m.cursor])
	case MenuActionScoreboard:
		return m.choose(MenuItem{Entry: EntryScoreboard, Title: "High Scores"})
	case MenuActionQuit, MenuActionBack:
		// Esc at the main menu leaves the program.
		return m.choose(MenuItem{Entry: EntryQuit})
	}
	return m, nil
}

func (m MenuModel) choose(item MenuItem) (tea.Model, tea.Cmd) {
	if item.Entry == EntryQuit {
		m.quitting = true
	} else {
		m.selected = &item
	}
	return m, tea.Quit
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := make([]string, 0, len(m.items)*2)
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, menuSelectedStyle.Render("> "+item.Title))
		} else {
			lines = append(lines, "  "+item.Title)
		}
		if i == m.cursor && item.Blurb != "" {
			lines = append(lines, menuBlurbStyle.Render("    "+item.Blurb))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render("B R I C K   A R C A D E"),
		"",
		fmt.Sprintf("Difficulty: %s", m.config.Difficulty.Title()),
		"",
		menuBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)),
		"",
		menuFooterStyle.Render("↑/↓ move · enter select · tab scores · esc quit"),
	)
	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return body
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen item, or nil when none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the player quit from the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config with the latest screen size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left to centre it in width columns.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Entry  MenuEntry
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.Entry = m.Selected().Entry
	result.GameID = m.Selected().GameID
	return result, nil
}
