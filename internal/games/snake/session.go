package snake

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Points awarded by the simulation.
const (
	PointsGrowth = 10
	PointsGate   = 5
)

// Rules are the tunable constants of a session.
type Rules struct {
	ShieldTicks     int     // invulnerability window of a shield pickup
	BoostTicks      int     // speed window of a time pickup
	BoostMultiplier float64 // tick rate factor while boosted
	StaleTicks      int     // moving ticks before an item respawns on its own
	SpawnAttempts   int     // random draws before the spawner scans
	RelocateTicks   int     // moving ticks between gate relocations
	Missions        MissionRules
}

// DefaultRules returns the standard session rules.
func DefaultRules() Rules {
	return Rules{
		ShieldTicks:     40,
		BoostTicks:      40,
		BoostMultiplier: 1.5,
		StaleTicks:      50,
		SpawnAttempts:   DefaultSpawnAttempts,
		RelocateTicks:   80,
		Missions:        DefaultMissionRules(),
	}
}

// DebugCommand is a developer shortcut delivered as tick input.
type DebugCommand int

const (
	DebugNone DebugCommand = iota
	DebugCompleteMissions
	DebugJumpStage
)

// Input is what the player supplies for one tick.
type Input struct {
	Dir   Direction // DirNone keeps the current heading
	Debug DebugCommand
	Stage int // 1-based target of DebugJumpStage
}

// TickResult is the verdict of one tick.
type TickResult struct {
	Alive            bool
	Reason           string // failure reason when !Alive
	MissionCompleted bool
	Picked           []Kind // items collected this tick
	GateUsed         bool
	JumpStage        int // stage requested by DebugJumpStage, 0 otherwise
}

// Session owns the mutable state of one stage and advances it tick by tick.
// It is not safe for concurrent use.
type Session struct {
	rules   Rules
	rng     RNG
	stage   StageConfig
	board   *Board
	spawner *Spawner

	snake    Snake
	items    [len(ItemKinds)]Item
	gates    GatePair
	counters Counters
	missions Missions

	shield    int
	boost     int
	ticks     int // moving ticks this stage
	gateTimer int
	maxLen    int
	score     int

	dead bool
	last TickResult
}

// NewSession creates a session and starts the given stage.
func NewSession(rules Rules, rng RNG, cfg StageConfig) (*Session, error) {
	s := &Session{rules: rules, rng: rng}
	if err := s.ResetStage(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// ResetStage rebuilds the board, snake, items, gates, counters and missions
// for a fresh stage. On error the session keeps its previous state.
func (s *Session) ResetStage(cfg StageConfig) error {
	board, err := GenerateBoard(cfg, s.rng)
	if err != nil {
		return fmt.Errorf("reset stage %d: %w", cfg.Index, err)
	}
	gates, err := GenerateGates(board, s.rng)
	if err != nil {
		return fmt.Errorf("reset stage %d: %w", cfg.Index, err)
	}

	head, body, _ := startLayout(cfg.Height, cfg.Width)

	s.stage = cfg
	s.board = board
	s.spawner = NewSpawner(board, s.rng, s.rules.SpawnAttempts)
	s.snake = newSnake(head, body)
	s.gates = gates
	s.counters = Counters{}
	s.shield, s.boost = 0, 0
	s.ticks, s.gateTimer = 0, 0
	s.maxLen = s.snake.Len()
	s.score = 0
	s.dead = false

	for i, k := range ItemKinds {
		s.items[i] = Item{Kind: k}
	}
	s.respawn(KindGrowth)
	s.respawn(KindPoison)
	s.respawn(KindTime)

	s.missions = s.rules.Missions.Evaluate(s.snake.Len(), s.counters)
	s.last = TickResult{Alive: true}
	return nil
}

// Tick advances the stage by one step. Once a tick has failed, further
// ticks return the same failure until ResetStage is called.
func (s *Session) Tick(in Input) TickResult {
	if s.dead {
		return s.last
	}

	res := TickResult{Alive: true}

	switch in.Debug {
	case DebugJumpStage:
		res.JumpStage = in.Stage
		res.MissionCompleted = s.missions.All
		s.last = res
		return res
	case DebugCompleteMissions:
		s.forceMissions()
	}

	s.snake.steer(in.Dir)
	s.gates.Decay()

	moved := false
	if s.snake.Heading.Concrete() {
		s.snake.AdvanceBody()
		s.snake.Move(s.snake.Heading)
		moved = true
		s.ticks++
	}

	if moved {
		if i := s.gates.At(s.snake.Head); i >= 0 {
			s.gates.Enter(i, &s.snake, s.board)
			s.counters.Gates++
			s.score += PointsGate
			res.GateUsed = true
		}
	}

	for i := range s.items {
		it := &s.items[i]
		if !it.Present || it.Pos != s.snake.Head {
			continue
		}
		res.Picked = append(res.Picked, it.Kind)
		if !s.applyEffect(it.Kind) {
			return s.fail(res, ReasonTooShort)
		}
		if it.Kind == KindShield || it.Kind == KindRandom {
			s.clear(it.Kind)
		} else {
			s.respawn(it.Kind)
		}
	}

	if moved {
		s.ageItems()
		s.relocateGates()
	}

	if s.shield > 0 {
		s.shield--
	}
	if s.boost > 0 {
		s.boost--
	}

	s.maxLen = max(s.maxLen, s.snake.Len())
	s.missions = s.rules.Missions.Evaluate(s.snake.Len(), s.counters)
	res.MissionCompleted = s.missions.All

	if reason, ok := validate(s.board, &s.snake, s.shield > 0); !ok {
		return s.fail(res, reason)
	}
	s.last = res
	return res
}

func (s *Session) fail(res TickResult, reason string) TickResult {
	res.Alive = false
	res.Reason = reason
	s.dead = true
	s.last = res
	return res
}

// applyEffect applies the effect of an item kind. It returns false when a
// poison effect would shrink the snake below MinLength.
func (s *Session) applyEffect(k Kind) bool {
	switch k {
	case KindGrowth:
		s.counters.Growth++
		s.score += PointsGrowth
		s.snake.Grow()
	case KindPoison:
		s.counters.Poison++
		return s.snake.Shrink()
	case KindTime:
		s.boost = s.rules.BoostTicks
	case KindShield:
		s.shield = s.rules.ShieldTicks
	case KindRandom:
		effects := [...]Kind{KindGrowth, KindPoison, KindTime, KindShield}
		return s.applyEffect(effects[s.rng.Intn(len(effects))])
	}
	return true
}

// forceMissions sets every counter to its threshold and pads the body to
// the length threshold.
func (s *Session) forceMissions() {
	m := s.rules.Missions
	s.counters.Growth = max(s.counters.Growth, m.Growth)
	s.counters.Poison = max(s.counters.Poison, m.Poison)
	s.counters.Gates = max(s.counters.Gates, m.Gates)
	s.snake.padTo(m.Length)
}

// ageItems respawns every item, present or absent, whose staleness timer
// reached the threshold.
func (s *Session) ageItems() {
	for i := range s.items {
		s.items[i].Stale++
		if s.items[i].Stale >= s.rules.StaleTicks {
			s.respawn(s.items[i].Kind)
		}
	}
}

// relocateGates regenerates the gate pair at a fixed interval while no gate
// is active. A failed regeneration keeps the current pair.
func (s *Session) relocateGates() {
	s.gateTimer++
	if s.gateTimer < s.rules.RelocateTicks || s.gates.Active() {
		return
	}
	s.gateTimer = 0
	if gates, err := GenerateGates(s.board, s.rng); err == nil {
		s.gates = gates
	}
}

// occupied collects the cells an item may not be placed on.
func (s *Session) occupied() mapset.Set[Coord] {
	set := mapset.New[Coord]()
	set.Put(s.snake.Head)
	for _, seg := range s.snake.Body {
		set.Put(seg)
	}
	for _, g := range s.gates.Gates {
		set.Put(g.Pos)
	}
	for _, it := range s.items {
		if it.Present {
			set.Put(it.Pos)
		}
	}
	return set
}

func (s *Session) respawn(k Kind) {
	it := &s.items[k.itemIndex()]
	pos, ok := s.spawner.Spawn(k, false, s.occupied())
	it.Pos, it.Present, it.Stale = pos, ok, 0
}

func (s *Session) clear(k Kind) {
	it := &s.items[k.itemIndex()]
	it.Present, it.Stale = false, 0
}

// Alive reports whether the stage is still running.
func (s *Session) Alive() bool {
	return !s.dead
}

// Score returns the points collected this stage.
func (s *Session) Score() int {
	return s.score
}

// SpeedMultiplier returns the tick rate factor currently in effect.
func (s *Session) SpeedMultiplier() float64 {
	if s.boost > 0 {
		return s.rules.BoostMultiplier
	}
	return 1
}

// Stage returns the configuration the current stage was started with.
func (s *Session) Stage() StageConfig {
	return s.stage
}
