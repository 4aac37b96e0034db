package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spaceshots/internal/canvas"
	"github.com/vovakirdan/spaceshots/internal/game"
	"github.com/vovakirdan/spaceshots/internal/storage"
)

// Rows reserved around the playfield: HUD above, help below.
const chromeRows = 2

// Terminals report key presses but not releases, so a thrust key counts as
// held for this long after its last (auto-repeated) press.
const holdSeconds = 0.5

// Options configures a play session.
type Options struct {
	Game   *game.Game
	Store  *storage.Store // May be nil; the run is then not recorded
	Seed   int64
	Logger *log.Logger
	Width  int // Terminal size
	Height int
}

// Model is the Bubble Tea model for playing a run.
type Model struct {
	game   *game.Game
	store  *storage.Store
	logger *log.Logger
	seed   int64

	canvas *canvas.Canvas
	keys   KeyMap
	help   help.Model
	width  int
	height int

	command   game.Command
	hold      int // Ticks left before the held command is released
	holdTicks int

	message      string
	messageTicks int

	saved    bool
	saveErr  error
	quitting bool
}

// NewModel creates a play model for the given options.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = 80, 24
	}

	return Model{
		game:      opts.Game,
		store:     opts.Store,
		logger:    logger,
		seed:      opts.Seed,
		canvas:    canvas.New(width, max(height-chromeRows, 1)),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
		holdTicks: max(int(holdSeconds*float64(opts.Game.FPS())), 1),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.FPS())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.canvas.Resize(msg.Width, max(msg.Height-chromeRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.step()
		return m, tickCmd(m.game.FPS())
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.game.LevelsWon() > 0 {
			m.saveRun()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if cmd, ok := m.keys.Command(msg); ok {
		m.command = cmd
		m.hold = m.holdTicks
	}
	return m, nil
}

// step advances the game by one tick with the currently held command.
func (m *Model) step() {
	if m.messageTicks > 0 {
		m.messageTicks--
		if m.messageTicks == 0 {
			m.message = ""
		}
	}
	if m.game.Done() {
		return
	}

	if m.hold > 0 {
		m.hold--
		if m.hold == 0 {
			m.command = game.CommandNone
		}
	}

	level := m.game.Index()
	res := m.game.Step(m.command)
	if res.Message == "" {
		return
	}

	m.message = res.Message
	m.messageTicks = 2 * m.game.FPS()
	m.command, m.hold = game.CommandNone, 0
	m.logger.Debug("scene transition", "level", level+1, "message", res.Message, "tick", m.game.Tick())

	if res.Done {
		m.saveRun()
	}
}

// saveRun records the run once. Storage failures are logged and shown on
// the end screen; they never interrupt play.
func (m *Model) saveRun() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	total, bonus := m.game.Score()
	run := storage.Run{
		Seed:      m.seed,
		Score:     total,
		GasBonus:  bonus,
		LevelsWon: m.game.LevelsWon(),
		Levels:    len(m.game.Scenes()),
		MaxTier:   string(m.game.MaxTier()),
		Attempts:  m.game.Attempts(),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.saveErr = err
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.logger.Info("run saved", "score", total, "levels_won", run.LevelsWon)
}

func (m *Model) restart() {
	if !m.saved && m.game.LevelsWon() > 0 {
		m.saveRun()
	}
	m.game.Reset()
	m.command, m.hold = game.CommandNone, 0
	m.message, m.messageTicks = "", 0
	m.saved, m.saveErr = false, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Run starts the Bubble Tea program for a play session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
