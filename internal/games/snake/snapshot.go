package snake

// Snapshot is a read-only copy of a session, for drawing and inspection.
type Snapshot struct {
	Stage    StageConfig
	Height   int
	Width    int
	Walls    []Wall
	Snake    Snake
	Items    []Item
	Gates    GatePair
	Counters Counters
	Missions Missions

	ShieldTicks int // remaining invulnerability
	BoostTicks  int // remaining speed boost
	Ticks       int // moving ticks this stage
	MaxLength   int
	Score       int
	Alive       bool
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	sn := s.snake
	sn.Body = append([]Coord(nil), s.snake.Body...)

	return Snapshot{
		Stage:       s.stage,
		Height:      s.board.Height,
		Width:       s.board.Width,
		Walls:       s.board.Walls(),
		Snake:       sn,
		Items:       append([]Item(nil), s.items[:]...),
		Gates:       s.gates,
		Counters:    s.counters,
		Missions:    s.missions,
		ShieldTicks: s.shield,
		BoostTicks:  s.boost,
		Ticks:       s.ticks,
		MaxLength:   s.maxLen,
		Score:       s.score,
		Alive:       !s.dead,
	}
}

// Grid returns the board as rows of kinds, indexed [row-1][col-1].
// Later layers win: walls, gates, items, body, head.
func (v Snapshot) Grid() [][]Kind {
	grid := make([][]Kind, v.Height)
	for r := range grid {
		grid[r] = make([]Kind, v.Width)
	}
	put := func(c Coord, k Kind) {
		if c.Row >= 1 && c.Row <= v.Height && c.Col >= 1 && c.Col <= v.Width {
			grid[c.Row-1][c.Col-1] = k
		}
	}

	for _, w := range v.Walls {
		if w.Immune {
			put(w.Pos, KindImmuneWall)
		} else {
			put(w.Pos, KindWall)
		}
	}
	for _, g := range v.Gates.Gates {
		put(g.Pos, KindGate)
	}
	for _, it := range v.Items {
		if it.Present {
			put(it.Pos, it.Kind)
		}
	}
	for _, seg := range v.Snake.Body {
		put(seg, KindSnakeBody)
	}
	put(v.Snake.Head, KindSnakeHead)
	return grid
}

// Item returns the item of kind k.
func (v Snapshot) Item(k Kind) Item {
	for _, it := range v.Items {
		if it.Kind == k {
			return it
		}
	}
	return Item{Kind: k}
}

// GameStateType represents the current state of the game adapter.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateStageCleared GameStateType = "stage_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// GameSnapshot captures the adapter state for determinism tests.
type GameSnapshot struct {
	Frame        uint64
	Stage        int    // 1-based, counting across endless cycles
	Mode         string // "campaign" or "endless"
	Score        int
	Length       int
	Head         Coord
	Heading      Direction
	MoveInterval int
	State        GameStateType
}

// Snapshot returns the current adapter snapshot.
func (g *Game) Snapshot() GameSnapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.stageCleared:
		state = StateStageCleared
	}

	snap := GameSnapshot{
		Frame:        g.frame,
		Stage:        g.stageIndex + 1,
		Mode:         string(g.mode),
		Score:        g.score(),
		MoveInterval: g.moveInterval(),
		State:        state,
	}
	if g.session != nil {
		snap.Length = g.session.snake.Len()
		snap.Head = g.session.snake.Head
		snap.Heading = g.session.snake.Heading
	}
	return snap
}

// StageReport summarizes the current stage for the results journal.
type StageReport struct {
	Mode      string
	Stage     int // 1-based, counting across endless cycles
	Name      string
	Variant   Variant
	Length    int
	MaxLength int
	Counters  Counters
	Ticks     int
	Score     int
}

// StageReport returns the summary of the stage being played or just finished.
func (g *Game) StageReport() StageReport {
	r := StageReport{
		Mode:  g.ID(),
		Stage: g.stageIndex + 1,
		Name:  g.stageName(),
		Score: g.score(),
	}
	if g.session != nil {
		v := g.session.Snapshot()
		r.Variant = v.Stage.Variant
		r.Length = v.Snake.Len()
		r.MaxLength = v.MaxLength
		r.Counters = v.Counters
		r.Ticks = v.Ticks
	}
	return r
}
