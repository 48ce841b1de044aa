package snake

import (
	"math/rand"

	"github.com/vovakirdan/gate-snake/internal/config"
	"github.com/vovakirdan/gate-snake/internal/core"
	"github.com/vovakirdan/gate-snake/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

const (
	hudHeight  = 2
	panelWidth = 22
)

// Game adapts a Session to the game registry: it paces simulation ticks
// against platform frames, moves between stages and renders the board.
type Game struct {
	mode    Mode
	cfg     config.SnakeConfig
	rng     *rand.Rand
	session *Session
	frame   uint64

	stageIndex int // 0-based, keeps counting across endless cycles
	banked     int // points from finished stages
	liveBanked bool
	moveTicker int
	pending    Input
	reason     string // why the last stage ended
	configErr  error  // the configuration failed to load; nothing can start
	events     []core.Event

	screenW int
	screenH int

	gameOver     bool
	stageCleared bool
	won          bool
	paused       bool
	tooSmall     bool
	clearTicks   int
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "snake_endless"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Gate Snake (Endless)"
	}
	return "Gate Snake"
}

// Reset initializes the game and starts the first (or selected) stage.
// A configuration that cannot be loaded ends the game at once with the
// load error as the reason.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, g.configErr = loadConfig()
	if g.configErr != nil {
		g.cfg = config.DefaultSnakeConfig()
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.session = nil
	g.events = nil
	g.frame = 0
	g.banked = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.stageIndex = 0
	if g.configErr != nil {
		g.gameOver = true
		g.reason = g.configErr.Error()
		g.emit(core.EventGameOver, g.reason)
		return
	}
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= len(g.cfg.Stages) {
		g.stageIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	}

	g.loadStage()
}

// Resize adapts to a new screen size without touching the simulation.
// The game holds still while the board does not fit.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.cfg.Board.Width || h < g.cfg.Board.Height+hudHeight
}

// loadStage starts the stage at stageIndex. A stage that cannot be generated
// ends the game with the generation error as the reason.
func (g *Game) loadStage() {
	sc, err := StageFromConfig(g.cfg, g.stageIndex, g.rng)
	if err == nil {
		if g.session == nil {
			g.session, err = NewSession(RulesFromConfig(g.cfg), g.rng, sc)
		} else {
			err = g.session.ResetStage(sc)
		}
	}

	g.moveTicker = 0
	g.pending = Input{}
	g.stageCleared = false
	g.clearTicks = 0
	g.liveBanked = false

	if err != nil {
		g.gameOver = true
		g.reason = err.Error()
		g.emit(core.EventGameOver, g.reason)
		return
	}
	g.reason = ""
	g.emit(core.EventStageStarted, g.stageName())
}

// Step advances the game by one platform frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++

	// Handle restart: a lost stage is replayed, a finished campaign starts over
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.restart()
		return g.result()
	}

	if input.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return g.result()
	}

	if g.stageCleared {
		g.clearTicks++
		if g.clearTicks >= g.cfg.Pacing.StageClearFrames {
			g.advanceStage()
		}
		return g.result()
	}

	g.bufferInput(input)

	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		g.tick()
	}

	return g.result()
}

// result reports the state and hands over the events collected since the
// previous frame.
func (g *Game) result() core.StepResult {
	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{
		Kind:   kind,
		Stage:  g.stageIndex%max(len(g.cfg.Stages), 1) + 1,
		Detail: detail,
		Score:  g.score(),
	})
}

// bufferInput keeps the latest direction and debug command until the next
// simulation tick consumes them.
func (g *Game) bufferInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.pending.Dir = DirUp
	case input.Has(core.ActionDown):
		g.pending.Dir = DirDown
	case input.Has(core.ActionLeft):
		g.pending.Dir = DirLeft
	case input.Has(core.ActionRight):
		g.pending.Dir = DirRight
	}

	if input.Has(core.ActionDebugMissions) {
		g.pending.Debug = DebugCompleteMissions
	}
	for a := core.ActionDebugStage1; a <= core.ActionDebugStage4; a++ {
		if input.Has(a) && a.DebugStage() <= len(g.cfg.Stages) {
			g.pending.Debug = DebugJumpStage
			g.pending.Stage = a.DebugStage()
		}
	}
}

// tick runs one simulation step and turns its result into events and
// stage transitions.
func (g *Game) tick() {
	res := g.session.Tick(g.pending)
	g.pending = Input{}

	for _, k := range res.Picked {
		g.emit(core.EventItemPicked, k.String())
	}
	if res.GateUsed {
		g.emit(core.EventGateUsed, "")
	}

	switch {
	case res.JumpStage > 0:
		g.stageIndex = g.cycle()*len(g.cfg.Stages) + res.JumpStage - 1
		g.loadStage()
	case !res.Alive:
		g.gameOver = true
		g.reason = res.Reason
		g.emit(core.EventGameOver, res.Reason)
	case res.MissionCompleted:
		g.stageCleared = true
		g.clearTicks = 0
		g.banked += g.session.Score() + PointsStage
		g.liveBanked = true
		g.emit(core.EventStageCleared, g.stageName())
	}
}

// advanceStage moves to the next stage after the clear overlay.
func (g *Game) advanceStage() {
	g.stageIndex++
	if g.mode == ModeCampaign && g.stageIndex >= len(g.cfg.Stages) {
		g.stageIndex = len(g.cfg.Stages) - 1
		g.stageCleared = false
		g.won = true
		g.emit(core.EventCampaignComplete, "")
		return
	}
	g.loadStage()
}

func (g *Game) restart() {
	if g.configErr != nil {
		return
	}
	if g.won {
		g.won = false
		g.banked = 0
		g.stageIndex = 0
	}
	g.gameOver = false
	g.paused = false
	g.loadStage()
}

// cycle returns how many times the stage table has been completed.
func (g *Game) cycle() int {
	if len(g.cfg.Stages) == 0 {
		return 0
	}
	return g.stageIndex / len(g.cfg.Stages)
}

// moveInterval returns the number of frames between simulation ticks.
// Endless mode speeds up by one frame per cycle; a time boost divides the
// interval by its multiplier.
func (g *Game) moveInterval() int {
	interval := g.cfg.Pacing.MoveEveryFrames
	if g.mode == ModeEndless {
		interval = max(g.cfg.Pacing.MinMoveFrames, interval-g.cycle())
	}
	if g.session != nil {
		interval = int(float64(interval) / g.session.SpeedMultiplier())
	}
	return max(interval, 1)
}

func (g *Game) score() int {
	s := g.banked
	if g.session != nil && !g.liveBanked {
		s += g.session.Score()
	}
	return s
}

func (g *Game) stageName() string {
	if len(g.cfg.Stages) == 0 {
		return ""
	}
	return g.cfg.Stages[g.stageIndex%len(g.cfg.Stages)].Name
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Reason returns why the last stage ended, or an empty string.
func (g *Game) Reason() string {
	return g.reason
}

// Session returns the running simulation, nil before the first stage.
func (g *Game) Session() *Session {
	return g.session
}
