package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/wordhunt/internal/config"
	"github.com/vovakirdan/wordhunt/internal/core"
)

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// AppModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for both local and SSH play.
type AppModel struct {
	deps     Deps
	config   core.RuntimeConfig
	screen   screen
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	games    int
	status   string // shown on the menu after a failed start
	quitting bool
}

// NewAppModel creates a session that opens on the difficulty menu.
func NewAppModel(deps Deps, cfg core.RuntimeConfig) AppModel {
	return AppModel{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(deps.Options, cfg),
	}
}

// NewAppModelWithGame creates a session that skips the menu and starts
// a game at the given difficulty.
func NewAppModelWithGame(deps Deps, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) (AppModel, error) {
	m := NewAppModel(deps, cfg)
	if err := m.startGame(difficulty); err != nil {
		return AppModel{}, err
	}
	return m, nil
}

// startGame deals a board. A fixed seed only applies to the first game.
func (m *AppModel) startGame(difficulty config.DifficultyPreset) error {
	game, err := NewGameModel(m.deps, difficulty, m.config)
	if err != nil {
		return err
	}
	m.config.Seed = 0
	m.games++
	game.id = m.games
	m.game = game
	m.screen = screenGame
	m.status = ""
	return nil
}

// Init initializes the session.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.deps.Store, m.deps.Logger, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		difficulty := m.menu.Selected().Difficulty
		if err := m.startGame(difficulty); err != nil {
			m.deps.logger().Error("cannot start game", "difficulty", difficulty, "error", err)
			m.status = "Could not start game: " + err.Error()
			m.resetMenu()
			return m, nil
		}
		m.deps.logger().Debug("game started", "difficulty", difficulty, "player", m.deps.Player)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		// Leaving mid-game still records the result.
		m.game.engine.EndSession()
		m.game.saveResult()
		m.resetMenu()
		return m, nil
	}

	return m, cmd
}

// updateScores handles updates when showing the scoreboard.
func (m AppModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.resetMenu()
		return m, nil
	}
	return m, cmd
}

func (m *AppModel) resetMenu() {
	m.menu = NewMenuModel(m.deps.Options, m.config)
	m.screen = screenMenu
}

// View renders the current view.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}

	view := m.menu.View()
	if m.status != "" {
		view += "\n" + centerText(badStyle.Render(m.status), m.config.ScreenW)
	}
	return view
}

// Run starts a local Bubble Tea program. With a difficulty the menu is
// skipped.
func Run(deps Deps, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) error {
	model := NewAppModel(deps, cfg)
	if difficulty != "" {
		var err error
		if model, err = NewAppModelWithGame(deps, cfg, difficulty); err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
