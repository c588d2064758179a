package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

const (
	scoreboardRows   = 100 // runs loaded per view
	scoreboardChrome = 9   // rows taken by title, stats, tabs and help
)

// scoreView selects which runs the scoreboard lists.
type scoreView int

const (
	viewBest   scoreView = iota // best runs of the selected mode
	viewRecent                  // latest runs of every mode
)

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	scoreActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	scoreFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	scoreEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Prev, k.Next}, {k.Toggle, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev mode")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next mode")),
		Toggle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "best/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists finished runs from the score store. It works
// without a store and then shows an empty board.
type ScoreboardModel struct {
	store  *storage.Store
	modes  []registry.GameInfo
	cursor int
	view   scoreView

	runs  []storage.Run
	stats map[string]*storage.ModeStats
	err   error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the board on the first mode's best runs.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  registry.List(),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// modeID is the selected mode, or "" when no mode is registered.
func (m ScoreboardModel) modeID() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.cursor].ID
}

// reload fetches runs and stats for the current view and rebuilds the
// table.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		switch m.view {
		case viewRecent:
			m.runs, m.err = m.store.RecentRuns(scoreboardRows)
		default:
			if id := m.modeID(); id != "" {
				m.runs, m.err = m.store.TopScores(id, scoreboardRows)
			}
		}
		if m.err == nil {
			m.stats, m.err = m.store.Stats()
		}
	}
	m.table = m.newTable()
}

func (m ScoreboardModel) columns() []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 8},
		{Title: "Result", Width: 7},
		{Title: "Date", Width: 13},
	}
	if m.view == viewRecent {
		cols = slices.Insert(cols, 1, table.Column{Title: "Mode", Width: 8})
	}
	return cols
}

func (m ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		result := "Lose"
		if r.Won {
			result = "Win"
		}
		row := table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			r.Difficulty.Title(),
			result,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
		if m.view == viewRecent {
			row = slices.Insert(row, 1, m.modeTitle(r.Mode))
		}
		rows = append(rows, row)
	}
	return rows
}

func (m ScoreboardModel) modeTitle(id string) string {
	for _, g := range m.modes {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves the mode cursor. The recent view lists every mode, so moving
// the cursor there switches back to the best view.
func (m *ScoreboardModel) step(dir int) {
	if len(m.modes) == 0 {
		return
	}
	n := len(m.modes)
	if m.view == viewBest {
		m.cursor = (m.cursor + dir + n) % n
	}
	m.view = viewBest
	m.reload()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := "HIGH SCORES"
	if m.view == viewRecent {
		title = "RECENT RUNS"
	}
	b.WriteString(scoreTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.tabs()))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	switch {
	case m.err != nil:
		body = scoreEmptyStyle.Render("Could not read scores: " + m.err.Error())
	case len(m.runs) == 0:
		body = scoreEmptyStyle.Render("No scores recorded yet.\nFinish a run to set a high score!")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, scoreFrameStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(menuFooterStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, 0, len(m.modes))
	for i, g := range m.modes {
		if m.view == viewBest && i == m.cursor {
			tabs = append(tabs, scoreActiveTab.Render(g.Title))
		} else {
			tabs = append(tabs, scoreTabStyle.Render(g.Title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// statsLine summarises every run of the selected mode.
func (m ScoreboardModel) statsLine() string {
	if m.view == viewRecent {
		total := 0
		for _, st := range m.stats {
			total += st.Runs
		}
		return fmt.Sprintf("Runs across all modes: %d", total)
	}
	st := m.stats[m.modeID()]
	if st == nil {
		return "No runs yet"
	}
	return fmt.Sprintf("Runs: %d    Wins: %d    Best: %d    Avg: %.0f", st.Runs, st.Wins, st.HighScore, st.AvgScore)
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard. It reports whether the player went
// back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
