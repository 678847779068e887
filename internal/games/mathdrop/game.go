// Package mathdrop provides the Math Drop falling arithmetic puzzle for the platform.
package mathdrop

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathdrop/internal/config"
	platformcore "github.com/vovakirdan/mathdrop/internal/core"
	"github.com/vovakirdan/mathdrop/internal/games/mathdrop/core"
	"github.com/vovakirdan/mathdrop/internal/registry"
)

// Mode is a registered way to play: a difficulty preset under its own ID,
// so scores are kept per mode.
type Mode struct {
	ID     string
	Title  string
	Preset config.DifficultyPreset
}

// Modes lists every playable mode in menu order.
var Modes = []Mode{
	{ID: "classic", Title: "Math Drop", Preset: config.DifficultyNormal},
	{ID: "easy", Title: "Math Drop (Easy)", Preset: config.DifficultyEasy},
	{ID: "hard", Title: "Math Drop (Hard)", Preset: config.DifficultyHard},
	{ID: "zen", Title: "Math Drop (Zen)", Preset: config.DifficultyFixed},
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// presetOverride replaces the preset of every mode when set via CLI
var presetOverride config.DifficultyPreset

// SetDifficultyPreset overrides the difficulty preset of every mode.
// An empty preset restores each mode's own.
func SetDifficultyPreset(p config.DifficultyPreset) {
	presetOverride = p
}

// logger receives config warnings; silent unless set via CLI
var logger = log.New(io.Discard)

// SetLogger sets where config warnings go. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func (m Mode) preset() config.DifficultyPreset {
	if presetOverride != "" {
		return presetOverride
	}
	return m.Preset
}

// LoadConfig loads the config file and MATHDROP_* overrides, applies the
// mode's preset and validates the result.
func (m Mode) LoadConfig() (config.MathDropConfig, error) {
	cfg, err := config.LoadMathDrop(configPath)
	if err != nil {
		return config.MathDropConfig{}, fmt.Errorf("mathdrop: %s: %w", m.ID, err)
	}
	config.ApplyMathDropPreset(&cfg, m.preset())
	if err := cfg.Validate(); err != nil {
		return config.MathDropConfig{}, fmt.Errorf("mathdrop: %s: %w", m.ID, err)
	}
	return cfg, nil
}

// Layout constants
const (
	cellW      = 8 // Terminal columns per grid column, including the gap
	hudHeight  = 2 // Score line and banner line
	footHeight = 2 // Answer line and key hint
	bannerTime = 1200 * time.Millisecond
	wrongTime  = 300 * time.Millisecond
)

// banner is a short floating message such as "+30" or "COMBO x5!".
type banner struct {
	text  string
	color platformcore.Color
	until time.Duration
}

// Game adapts the Math Drop engine to the platform's fixed-tick contract.
type Game struct {
	mode    Mode
	runtime platformcore.RuntimeConfig
	cfg     config.MathDropConfig
	engine  *core.Engine
	tickLen time.Duration

	input      []rune // Answer buffer
	banner     banner
	wrongUntil time.Duration
	ticks      uint64

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.mode.Title
}

func (g *Game) preset() config.DifficultyPreset {
	return g.mode.preset()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime

	// A broken file or environment must not stop the game.
	cfg, err := g.mode.LoadConfig()
	if err != nil {
		logger.Warn("using default config", "mode", g.mode.ID, "error", err)
		cfg = config.DefaultMathDropConfig()
		config.ApplyMathDropPreset(&cfg, g.preset())
	}

	engine, err := core.New(cfg, runtime.Seed)
	if err != nil {
		logger.Error("could not start engine", "mode", g.mode.ID, "error", err)
		cfg = config.DefaultMathDropConfig()
		engine, _ = core.New(cfg, runtime.Seed)
	}
	g.cfg = cfg
	g.engine = engine

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.tickLen = time.Second / time.Duration(tickRate)

	g.input = g.input[:0]
	g.banner = banner{}
	g.wrongUntil = 0
	g.ticks = 0

	// Check screen size
	g.minScreenW = cfg.Grid.Columns*cellW + 2
	g.minScreenH = cfg.Grid.MaxRows + hudHeight + footHeight + 2
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}

// Resize updates the screen dimensions without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.screenTooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(platformcore.ActionRestart) && g.engine.Status() == core.StatusGameOver {
		g.Reset(g.runtime)
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.engine.TogglePause()
	}
	if g.engine.Status() != core.StatusPlaying {
		return platformcore.StepResult{State: g.State()}
	}

	g.ticks++
	g.handleTyping(in)

	report := g.engine.Step(g.tickLen)
	return platformcore.StepResult{
		State: g.State(),
		Cues:  g.handleEvents(report.Events),
	}
}

// handleTyping edits the answer buffer and checks it after every digit.
func (g *Game) handleTyping(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionClear) {
		g.input = g.input[:0]
	}
	if in.Has(platformcore.ActionDelete) && len(g.input) > 0 {
		g.input = g.input[:len(g.input)-1]
	}
	for _, r := range in.Digits {
		g.input = append(g.input, r)
		if g.engine.SubmitInput(string(g.input)).ResetInput() {
			g.input = g.input[:0]
		}
	}
}

// handleEvents turns engine events into sound cues and banners.
func (g *Game) handleEvents(events []core.Event) []platformcore.Cue {
	var cues []platformcore.Cue
	for _, ev := range events {
		switch ev.Kind {
		case core.EventLanded:
			cues = append(cues, platformcore.CueLand)
		case core.EventMatched:
			if ev.Sum {
				cues = append(cues, platformcore.CueMegaClear)
				g.showBanner(fmt.Sprintf("EXCELLENT! +%d", ev.Points), platformcore.ColorBrightYellow, ev.At)
			} else {
				cues = append(cues, platformcore.CueCorrect)
				g.showBanner(fmt.Sprintf("+%d", ev.Points), colorFor(ev.Color), ev.At)
			}
		case core.EventClusterCleared:
			cues = append(cues, platformcore.CueCorrect)
			g.showBanner(fmt.Sprintf("CLEAR x%d +%d", ev.Size, ev.Points), platformcore.ColorBrightGreen, ev.At)
		case core.EventComboCleared:
			cues = append(cues, platformcore.CueMegaClear)
			if !ev.Sum {
				g.showBanner(fmt.Sprintf("COMBO x%d! +%d", ev.Size, ev.Points), platformcore.ColorBrightMagenta, ev.At)
			}
		case core.EventWrongInput:
			cues = append(cues, platformcore.CueWrong)
			g.wrongUntil = ev.At + wrongTime
		case core.EventLevelUp:
			g.showBanner(fmt.Sprintf("LEVEL %d", ev.Level), platformcore.ColorBrightCyan, ev.At)
		case core.EventGameOver:
			cues = append(cues, platformcore.CueGameOver)
		}
	}
	return cues
}

func (g *Game) showBanner(text string, c platformcore.Color, at time.Duration) {
	g.banner = banner{text: text, color: c, until: at + bannerTime}
}

// Input returns the current answer buffer.
func (g *Game) Input() string {
	return string(g.input)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.engine == nil {
		return platformcore.GameState{}
	}
	d := g.engine.Difficulty()
	status := g.engine.Status()
	return platformcore.GameState{
		Score:    g.engine.Score(),
		Level:    d.Level,
		Solved:   d.Solved,
		GameOver: status == core.StatusGameOver,
		Paused:   status == core.StatusPaused,
	}
}

// Snapshot contains the game state for determinism tests.
type Snapshot struct {
	Tick   uint64
	Input  string
	Engine core.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.ticks,
		Input:  string(g.input),
		Engine: g.engine.Snapshot(),
	}
}

// Register every mode with the registry
func init() {
	for _, m := range Modes {
		registry.Register(m.ID, func() registry.Game {
			return New(m)
		})
	}
}
