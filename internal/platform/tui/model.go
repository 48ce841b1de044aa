package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gate-snake/internal/core"
	"github.com/vovakirdan/gate-snake/internal/games/snake"
	"github.com/vovakirdan/gate-snake/internal/registry"
	"github.com/vovakirdan/gate-snake/internal/sfx"
	"github.com/vovakirdan/gate-snake/internal/storage"
)

// Services are the side channels a play session reports to.
// Every field is optional.
type Services struct {
	Journal *storage.Store
	Sound   *sfx.Player
	Logger  *log.Logger
	RunID   string
	Debug   bool // map the debug keys
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	stageOpen  bool // a stage started and has no journal row yet
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, svc Services, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if svc.RunID == "" {
		svc.RunID = storage.NewRunID()
	}

	km := NewKeyMapper()
	if svc.Debug {
		km = NewDebugKeyMapper()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:        svc,
		config:     cfg,
		keyMapper:  km,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: the StageStarted event arrives with the first tick

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

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit || action == core.ActionBack {
		m.quit()
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// quit journals an unfinished stage as abandoned.
func (m *Model) quit() {
	if m.stageOpen {
		m.record(storage.OutcomeAbandoned, "")
	}
	m.logInfo("session ended", "score", m.gameState.Score)
	m.quitting = true
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		// Note: This resets the game - could be improved to preserve state
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// a stage can be replaced within one step, so keep its last summary
	var left snake.StageReport
	hasLeft := false
	if m.stageOpen {
		left, hasLeft = m.stageReport()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.handleEvents(result.Events, left, hasLeft)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleEvents forwards game events to the sound player, the log and the
// journal. left is the open stage as it was before the step; a stage start
// that replaces it journals it as abandoned.
func (m *Model) handleEvents(events []core.Event, left snake.StageReport, hasLeft bool) {
	for _, ev := range events {
		if m.svc.Sound != nil {
			m.svc.Sound.Play(sfx.CueFor(ev))
		}

		switch ev.Kind {
		case core.EventStageStarted:
			if m.stageOpen {
				m.logInfo("stage left", "stage", left.Stage, "name", left.Name)
				m.recordReport(left, hasLeft, storage.OutcomeAbandoned, "")
			}
			m.stageOpen = true
			m.logInfo("stage started", "stage", ev.Stage, "name", ev.Detail)
		case core.EventStageCleared:
			m.logInfo("stage cleared", "stage", ev.Stage, "score", ev.Score)
			m.record(storage.OutcomeCleared, "")
		case core.EventGameOver:
			m.logInfo("game over", "stage", ev.Stage, "reason", ev.Detail, "score", ev.Score)
			if m.stageOpen {
				m.record(storage.OutcomeDied, ev.Detail)
			}
		case core.EventCampaignComplete:
			m.logInfo("campaign complete", "score", ev.Score)
		default:
			if m.svc.Logger != nil {
				m.svc.Logger.Debug(ev.Kind.String(), "stage", ev.Stage, "detail", ev.Detail)
			}
		}
	}
}

func (m *Model) logInfo(msg string, keyvals ...any) {
	if m.svc.Logger != nil {
		m.svc.Logger.Info(msg, append([]any{"game", m.game.ID()}, keyvals...)...)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".gatesnake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil && m.svc.Logger != nil {
		m.svc.Logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewModel(game, svc, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
