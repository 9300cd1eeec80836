package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordhunt/internal/config"
	"github.com/vovakirdan/wordhunt/internal/core"
	"github.com/vovakirdan/wordhunt/internal/dictionary"
	"github.com/vovakirdan/wordhunt/internal/session"
	"github.com/vovakirdan/wordhunt/internal/storage"
)

// Deps bundles what every game screen needs.
type Deps struct {
	Options config.Options // base options, before a difficulty preset
	Dict    dictionary.Dictionary
	Store   *storage.Store // may be nil
	Logger  *log.Logger
	Player  string
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// GameModel is the Bubble Tea model for one word hunt board.
type GameModel struct {
	deps        Deps
	id          int
	difficulty  config.DifficultyPreset
	engine      *session.Engine
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	help        help.Model
	cursor      core.Pos
	dragging    bool
	last        *session.Result // most recent submission, for the status line
	lastTick    time.Time
	quitting    bool
	backToMenu  bool
	resultSaved bool
}

// NewGameModel creates a game for the given difficulty and deals the first board.
func NewGameModel(deps Deps, difficulty config.DifficultyPreset, cfg core.RuntimeConfig) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	opts := deps.Options
	config.ApplyPreset(&opts, difficulty)

	engine, err := session.New(deps.Dict, opts, rand.New(rand.NewSource(cfg.Seed)),
		session.WithLogger(deps.logger()))
	if err != nil {
		return GameModel{}, err
	}
	if err := engine.Restart(opts.TargetWordCount); err != nil {
		return GameModel{}, err
	}

	h := help.New()
	h.ShowAll = false

	return GameModel{
		deps:       deps,
		difficulty: difficulty,
		engine:     engine,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
	}, nil
}

// Init starts the session clock.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.id)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Game != m.id {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsBack(msg) {
		m.backToMenu = true
		return m, nil
	}
	return m.apply(m.keyMapper.MapKey(msg))
}

// apply runs one game action against the engine.
func (m GameModel) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		dRow, dCol, _ := action.Move()
		last := m.engine.Board().Grid.Size() - 1
		m.cursor = core.P(
			core.Clamp(m.cursor.Row+dRow, 0, last),
			core.Clamp(m.cursor.Col+dCol, 0, last),
		)

	case core.ActionSelect:
		m.engine.Toggle(m.cursor)

	case core.ActionRetract:
		m.engine.RetractLast()

	case core.ActionSubmit:
		if len(m.engine.Selection()) > 0 {
			res := m.engine.Submit()
			m.last = &res
		}

	case core.ActionEnd:
		m.engine.EndSession()
		m.saveResult()

	case core.ActionRestart:
		if err := m.engine.Restart(m.engine.Options().TargetWordCount); err != nil {
			m.deps.logger().Error("cannot start new board", "error", err)
			return m, nil
		}
		m.cursor = core.Pos{}
		m.last = nil
		m.resultSaved = false
	}

	return m, nil
}

// handleMouse lets the player tap and drag across letters.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.engine.State() != session.StateActive || msg.Button != tea.MouseButtonLeft {
		if msg.Action == tea.MouseActionRelease {
			m.dragging = false
		}
		return m, nil
	}

	p, ok := cellAt(msg.X, msg.Y, m.engine.Board().Grid.Size())

	switch msg.Action {
	case tea.MouseActionPress:
		m.dragging = true
		if ok {
			m.cursor = p
			m.engine.Toggle(p)
		}
	case tea.MouseActionMotion:
		if m.dragging && ok && !m.engine.IsSelected(p) {
			m.cursor = p
			m.engine.ExtendSelection(p)
		}
	case tea.MouseActionRelease:
		m.dragging = false
	}
	return m, nil
}

// handleTick advances the session clock.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.engine.Tick(elapsed) {
		m.deps.logger().Debug("time is up", "score", m.engine.Score())
		m.saveResult()
	}

	return m, tickCmd(m.config.TickRate, m.id)
}

// saveResult records a finished game once. Empty games are not recorded.
func (m *GameModel) saveResult() {
	if m.resultSaved || m.engine.State() != session.StateOver {
		return
	}
	m.resultSaved = true

	summary := m.engine.Summary()
	if summary.Score == 0 || m.deps.Store == nil {
		return
	}

	_, err := m.deps.Store.SaveResult(storage.Result{
		Difficulty:   string(m.difficulty),
		Player:       m.deps.Player,
		Score:        summary.Score,
		TargetsFound: summary.Progress.Found,
		TargetsTotal: summary.Progress.Total,
		WordsFound:   summary.Found,
	})
	if err != nil {
		m.deps.logger().Warn("could not save result", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.engine.State() == session.StateOver {
		return renderSummary(m.engine.Summary(), string(m.difficulty))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(gridLeft)
	return renderGame(m.engine, m.cursor, m.last, string(m.difficulty)) +
		"\n\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Engine exposes the running session.
func (m GameModel) Engine() *session.Engine {
	return m.engine
}

// Cursor returns the keyboard cursor position.
func (m GameModel) Cursor() core.Pos {
	return m.cursor
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
