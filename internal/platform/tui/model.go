package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathdrop/internal/core"
	"github.com/vovakirdan/mathdrop/internal/registry"
	"github.com/vovakirdan/mathdrop/internal/storage"
)

// Player receives the sound cues a game raises. audio.SoundManager
// implements it; SSH sessions run without one.
type Player interface {
	Play(c core.Cue)
	ToggleMute() bool
}

// Resizer is implemented by games that can adapt to a new window size
// without restarting the run.
type Resizer interface {
	Resize(w, h int)
}

// Options carries the collaborators of a GameModel. Every field is optional.
type Options struct {
	Store  *storage.Store
	Sound  Player
	Logger *log.Logger

	// AllowMenu lets B return to the menu while paused or after game over.
	AllowMenu bool
}

// GameModel is the Bubble Tea model that drives one game at a fixed tick.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	played     time.Duration // Simulated time spent playing this run
	lastRun    *storage.Run
	saveErr    error
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.inputFrame.Has(core.ActionMute):
		m.inputFrame.Actions[core.ActionMute] = false
		if m.opts.Sound != nil {
			m.opts.Sound.ToggleMute()
		}
	case m.inputFrame.Has(core.ActionBack):
		m.inputFrame.Actions[core.ActionBack] = false
		if m.opts.AllowMenu && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}
	}

	return m, nil
}

// handleResize keeps the run going when the game supports it.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Restart with a fresh seed
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.played = 0
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if !m.gameState.Paused && !m.gameState.GameOver {
		m.played += time.Second / time.Duration(m.config.TickRate)
	}

	if m.opts.Sound != nil {
		for _, c := range result.Cues {
			m.opts.Sound.Play(c)
		}
	}

	// Save the run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Empty runs are not recorded.
func (m *GameModel) saveRun() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	run, err := m.opts.Store.SaveRun(storage.Run{
		Mode:     m.game.ID(),
		Score:    m.gameState.Score,
		Level:    m.gameState.Level,
		Solved:   m.gameState.Solved,
		Duration: m.played,
	})
	if err != nil {
		m.saveErr = err
		if m.opts.Logger != nil {
			m.opts.Logger.Warn("could not save run", "mode", m.game.ID(), "error", err)
		}
		return
	}
	m.lastRun = &run
	if m.opts.Logger != nil {
		m.opts.Logger.Info("run saved", "mode", run.Mode, "run", run.RunID, "score", run.Score)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".mathdrop", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
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

// LastRun returns the most recently saved run, or nil.
func (m GameModel) LastRun() *storage.Run {
	return m.lastRun
}

// SaveErr returns the error from the last failed save, if any.
func (m GameModel) SaveErr() error {
	return m.saveErr
}

// Played returns the simulated play time of the current run.
func (m GameModel) Played() time.Duration {
	return m.played
}

// Run starts the Bubble Tea program with the given game and blocks until
// the player quits. It returns the first save error, if any, so the caller
// can report it once the terminal is restored.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(GameModel); ok && m.SaveErr() != nil {
		return fmt.Errorf("tui: save run: %w", m.SaveErr())
	}
	return nil
}
