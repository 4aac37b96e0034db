package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spaceshots/internal/config"
	"github.com/vovakirdan/spaceshots/internal/storage"
)

const maxRuns = 100

// Table chrome: title, tab bar, borders and help line.
const boardChromeRows = 8

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("241"))
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	boardStyle     = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

var runColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Score", Width: 8},
	{Title: "Levels", Width: 7},
	{Title: "Tier", Width: 7},
	{Title: "Tries", Width: 6},
	{Title: "Seed", Width: 20},
	{Title: "Played", Width: 13},
}

// BoardKeyMap holds the scoreboard bindings.
type BoardKeyMap struct {
	Up, Down   key.Binding
	Next, Prev key.Binding
	Quit       key.Binding
}

func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Quit}
}

func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultBoardKeyMap uses arrows or vim keys to move and tab to switch tiers.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tier")),
		Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev tier")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "close")),
	}
}

// ScoreboardModel lists stored runs, one tab per hardest-tier filter.
type ScoreboardModel struct {
	store  *storage.Store
	filter []string // "" matches every tier
	active int
	runs   []storage.Run
	err    error

	table table.Model
	help  help.Model
	keys  BoardKeyMap
	width int
	done  bool
}

// NewScoreboardModel creates a scoreboard over store. A nil store shows an
// empty board.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	filter := []string{""}
	for _, t := range config.Tiers {
		filter = append(filter, string(t))
	}

	m := ScoreboardModel{
		store:  store,
		filter: filter,
		keys:   DefaultBoardKeyMap(),
		help:   help.New(),
		width:  width,
		table:  newRunTable(height),
	}
	m.reload()
	return m
}

func newRunTable(height int) table.Model {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("14"))
	styles.Selected = styles.Selected.Bold(true).Foreground(lipgloss.Color("11"))

	return table.New(
		table.WithColumns(runColumns),
		table.WithHeight(max(height-boardChromeRows, 3)),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
}

func runRow(rank int, r storage.Run) table.Row {
	return table.Row{
		strconv.Itoa(rank),
		strconv.FormatFloat(r.Score, 'f', 0, 64),
		strconv.Itoa(r.LevelsWon) + "/" + strconv.Itoa(r.Levels),
		r.MaxTier,
		strconv.Itoa(r.Attempts),
		strconv.FormatInt(r.Seed, 10),
		r.CreatedAt.Local().Format("Jan 02 15:04"),
	}
}

func (m *ScoreboardModel) reload() {
	m.runs, m.err = nil, nil
	if m.store != nil {
		m.runs, m.err = m.store.TopRuns(m.filter[m.active], maxRuns)
	}

	rows := make([]table.Row, 0, len(m.runs))
	for i, r := range m.runs {
		rows = append(rows, runRow(i+1, r))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchTab(delta int) {
	n := len(m.filter)
	m.active = ((m.active+delta)%n + n) % n
	m.reload()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-boardChromeRows, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}

	tabs := make([]string, len(m.filter))
	for i, f := range m.filter {
		if f == "" {
			f = "all"
		}
		if i == m.active {
			tabs[i] = activeTabStyle.Render(f)
		} else {
			tabs[i] = tabStyle.Render(f)
		}
	}

	var body string
	switch {
	case m.err != nil:
		body = alertStyle.Render(m.err.Error())
	case len(m.runs) == 0:
		body = dimStyle.Padding(1, 2).Render("Nothing recorded for this tier yet.")
	default:
		body = m.table.View()
	}

	return strings.Join([]string{
		centerText(hudStyle.Render("BEST RUNS"), m.width),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		boardStyle.Render(body),
		dimStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

// Runs returns the runs shown in the current tab.
func (m ScoreboardModel) Runs() []storage.Run {
	return m.runs
}

// RunScoreboard shows the scoreboard until the user closes it.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}
