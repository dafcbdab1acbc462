package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/core"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/multiplayer"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/registry"
	"github.com/Marcelo-Flores-A/chase-arcade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.chase-arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.chase-arcade/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the arcade.
// Audio is a local concern and is never attached to SSH sessions.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	sessions *multiplayer.SessionRegistry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		sessions: multiplayer.NewSessionRegistry(),
		logger:   logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".chase-arcade", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	// The SSH layer's session ID keys the registry entry, so the logging
	// middleware can find and close the handle when the connection ends.
	handle := multiplayer.NewChannelSession(multiplayer.SessionID(sshSession.Context().SessionID()), 16)
	s.sessions.Register(handle)
	go s.watchSession(handle)

	return NewSessionModel(s.store, cfg, sshSession.User(), handle), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// watchSession logs match lifecycle events for one session until its handle
// closes.
func (s *SSHServer) watchSession(handle *multiplayer.ChannelSession) {
	for {
		select {
		case evt := <-handle.Events():
			switch e := evt.(type) {
			case multiplayer.MatchStartedEvent:
				s.logger.Info("match started",
					"session", handle.ID(),
					"match", e.MatchID,
					"mode", e.Mode.String(),
				)
			case multiplayer.MatchEndedEvent:
				s.logger.Info("match ended",
					"session", handle.ID(),
					"match", e.MatchID,
					"game", e.Result.GameID,
					"score", e.Result.Player1Score,
				)
			}
		case <-handle.Done():
			return
		}
	}
}

// endSession closes a session's handle and drops it from the registry.
// Unknown IDs are ignored; sessions without a PTY never register.
func (s *SSHServer) endSession(id multiplayer.SessionID) {
	handle, ok := s.sessions.Get(id)
	if !ok {
		return
	}
	if ch, ok := handle.(*multiplayer.ChannelSession); ok {
		ch.Close()
	}
	s.sessions.Unregister(id)
}

// loggingMiddleware logs SSH session events and tears the session's registry
// entry down once the handler returns.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.sessions.Count(),
		)
		next(sshSession)
		s.endSession(multiplayer.SessionID(sshSession.Context().SessionID()))
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.sessions.Count(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full arcade session flow: menu -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	username  string
	sessionID multiplayer.SessionID
	handle    multiplayer.SessionHandle
	menu      MenuModel
	game      registry.Game
	gameModel *GameModel
	inGame    bool
	quitting  bool
}

// NewSessionModel creates a new session model. The handle carries match
// lifecycle events back to the server and may be nil for handle-less hosts.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, handle multiplayer.SessionHandle) SessionModel {
	sessionID := multiplayer.SessionID(fmt.Sprintf("%s-%d", username, time.Now().UnixNano()))
	if handle != nil {
		sessionID = handle.ID()
	}

	return SessionModel{
		store:     store,
		config:    cfg,
		username:  username,
		sessionID: sessionID,
		handle:    handle,
		menu:      NewMenuModel(store, nil, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			return m, nil
		}

		m.game = game
		m.config = m.menu.Config() // Get possibly updated config from resize

		match := multiplayer.NewMatch(
			multiplayer.MatchID(fmt.Sprintf("match-%d", time.Now().UnixNano())),
			selected.Mode,
			m.sessionID,
		)
		if m.handle != nil {
			m.handle.Send(multiplayer.MatchStartedEvent{MatchID: match.ID(), Mode: match.Mode()})
		}

		gameModel := NewGameModel(game, m.store, m.config, match, m.handle)
		m.gameModel = &gameModel
		m.inGame = true

		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	// Check if user quit game (back to menu)
	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m.game = nil
		m.menu = NewMenuModel(m.store, nil, m.config)
		return m, m.menu.Init()
	}

	if m.gameModel != nil && m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}

// GameModel wraps a game with match plumbing and back-to-menu capability.
type GameModel struct {
	game        registry.Game
	players     int
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	match       *multiplayer.Match
	handle      multiplayer.SessionHandle
	frame       core.MultiInputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	startedAt   time.Time
	quitting    bool
	backToMenu  bool
	resultSaved bool
}

// NewGameModel creates a new game model for an SSH session.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, match *multiplayer.Match, handle multiplayer.SessionHandle) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	players := 1
	if info, ok := registry.Info(game.ID()); ok {
		players = info.Players
	}

	return GameModel{
		game:      game,
		players:   players,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		match:     match,
		handle:    handle,
		frame:     core.NewMultiInputFrame(),
		keyMapper: NewKeyMapper(players),
		startedAt: time.Now(),
	}
}

// Init initializes the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToMultiFrame(msg, &m.frame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu (B or Esc when game over or paused)
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.frame.Player1().Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.startedAt = time.Now()
		m.frame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.frame)
	m.gameState = result.State

	// Persist the outcome on game over (once)
	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.frame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult reports the outcome on the session handle and persists it: a
// match record for two-player games, a plain score otherwise. Persistence is
// best-effort; the event fires even when storage is unavailable.
func (m *GameModel) saveResult() {
	result := multiplayer.MatchResultData{
		GameID:   m.game.ID(),
		Mode:     m.match.Mode(),
		Duration: time.Since(m.startedAt),
	}
	mr, isMatch := m.game.(matchReporter)
	isMatch = isMatch && m.players >= 2
	if isMatch {
		result.Player1Score, result.Player2Score = mr.Scores()
		result.Winner = mr.Winner()
	} else {
		result.Player1Score = m.gameState.Score
	}

	if m.handle != nil {
		m.handle.Send(multiplayer.MatchEndedEvent{MatchID: m.match.ID(), Result: result})
	}

	if m.store == nil {
		return
	}
	if isMatch {
		//nolint:errcheck
		m.store.SaveMatchResult(result)
	} else if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
