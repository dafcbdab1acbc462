package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/audio"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/multiplayer"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/storage"
)

// matchReporter is implemented by two-player games that produce a full match
// result instead of a single score.
type matchReporter interface {
	Scores() (p1, p2 int)
	Winner() core.PlayerID
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game        registry.Game
	players     int
	screen      *core.Screen
	store       *storage.Store
	sound       *audio.Manager
	keys        *KeyMapper
	config      core.RuntimeConfig
	frame       core.MultiInputFrame
	gameState   core.GameState
	startedAt   time.Time
	quitting    bool
	resultSaved bool // Whether the outcome has been persisted for this game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	players := 1
	if info, ok := registry.Info(game.ID()); ok {
		players = info.Players
	}

	return Model{
		game:      game,
		players:   players,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		sound:     sound,
		keys:      NewKeyMapper(players),
		config:    cfg,
		frame:     core.NewMultiInputFrame(),
		startedAt: time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
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
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, player, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionMute:
		// Audio controls are a platform concern; games never see them.
		if m.sound != nil {
			m.sound.ToggleMute()
		}
	case core.ActionVolumeUp:
		if m.sound != nil {
			m.sound.VolumeUp()
		}
	case core.ActionVolumeDown:
		if m.sound != nil {
			m.sound.VolumeDown()
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.frame.SetFor(player, action)
		}
	default:
		m.frame.SetFor(player, action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.frame.Player1().Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.startedAt = time.Now()
		m.frame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.frame)
	m.gameState = result.State

	if m.sound != nil {
		for _, e := range result.Events {
			m.sound.PlayEvent(e)
		}
	}

	// Persist the outcome on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	// Clear input for next frame
	m.frame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the game outcome: a match record for two-player games,
// a plain score otherwise. Best-effort; the game continues regardless.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}

	if mr, ok := m.game.(matchReporter); ok && m.players >= 2 {
		p1, p2 := mr.Scores()
		//nolint:errcheck
		m.store.SaveMatchResult(multiplayer.MatchResultData{
			GameID:       m.game.ID(),
			Mode:         multiplayer.ModeForPlayers(m.players),
			Player1Score: p1,
			Player2Score: p2,
			Winner:       mr.Winner(),
			Duration:     time.Since(m.startedAt),
		})
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".chase-arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
