package snake

import (
	"math/rand"
	"testing"
)

var stage21x41 = StageConfig{Height: 21, Width: 41, Walls: 0, Variant: VariantBasic, Index: 1}

// newTestSession starts a border-only 21x41 stage with every item removed
// and the gates parked on the left part of the border, away from the snake.
func newTestSession(t *testing.T, rules Rules) *Session {
	t.Helper()
	s, err := NewSession(rules, rand.New(rand.NewSource(11)), stage21x41)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	for i := range s.items {
		s.items[i].Present = false
	}
	s.gates = GatePair{Gates: [2]Gate{
		{Pos: Coord{1, 5}, Exit: DirDown},
		{Pos: Coord{21, 5}, Exit: DirUp},
	}}
	return s
}

func place(s *Session, k Kind, c Coord) {
	it := &s.items[k.itemIndex()]
	it.Pos, it.Present, it.Stale = c, true, 0
}

func down() Input { return Input{Dir: DirDown} }

func TestInitialPlacement(t *testing.T) {
	s, err := NewSession(DefaultRules(), rand.New(rand.NewSource(1)), StageConfig{Height: 21, Width: 41, Walls: 4, Variant: VariantMaze})
	if err != nil {
		t.Fatal(err)
	}
	v := s.Snapshot()

	if v.Snake.Head != (Coord{11, 21}) {
		t.Errorf("head = %v, expected board center (11,21)", v.Snake.Head)
	}
	if v.Snake.Len() != 3 || v.Snake.Heading != DirNone {
		t.Errorf("snake should start with 3 segments and no heading, got %d %v", v.Snake.Len(), v.Snake.Heading)
	}
	for _, k := range []Kind{KindGrowth, KindPoison, KindTime} {
		if !v.Item(k).Present {
			t.Errorf("%v should be spawned at stage start", k)
		}
	}
	for _, k := range []Kind{KindShield, KindRandom} {
		if v.Item(k).Present {
			t.Errorf("%v should start absent", k)
		}
	}
	if v.Missions.All {
		t.Error("missions should start incomplete")
	}
}

func TestNewSessionTooSmall(t *testing.T) {
	_, err := NewSession(DefaultRules(), rand.New(rand.NewSource(1)), StageConfig{Height: 5, Width: 5})
	if err == nil {
		t.Fatal("a 5x5 stage should fail to start")
	}
}

func TestTickDownOnEmptyBoard(t *testing.T) {
	s := newTestSession(t, DefaultRules())

	res := s.Tick(down())
	if !res.Alive {
		t.Fatalf("tick should be alive, got %q", res.Reason)
	}

	v := s.Snapshot()
	if v.Snake.Head != (Coord{12, 21}) {
		t.Errorf("head = %v, expected (12,21)", v.Snake.Head)
	}
	want := []Coord{{11, 21}, {10, 21}, {9, 21}}
	for i, c := range want {
		if v.Snake.Body[i] != c {
			t.Errorf("body[%d] = %v, expected %v", i, v.Snake.Body[i], c)
		}
	}
	if v.Snake.Len() != 3 {
		t.Errorf("length = %d, expected 3", v.Snake.Len())
	}
	if v.Ticks != 1 {
		t.Errorf("moving ticks = %d, expected 1", v.Ticks)
	}
}

func TestIdleTickDoesNotMove(t *testing.T) {
	s := newTestSession(t, DefaultRules())

	res := s.Tick(Input{})
	if !res.Alive {
		t.Fatalf("idle tick should be alive, got %q", res.Reason)
	}
	if v := s.Snapshot(); v.Snake.Head != (Coord{11, 21}) || v.Ticks != 0 {
		t.Errorf("idle tick moved the snake to %v", v.Snake.Head)
	}
}

func TestPoisonAtMinimumLengthIsTerminal(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	place(s, KindPoison, Coord{12, 21})

	res := s.Tick(down())
	if res.Alive {
		t.Fatal("poison at length 3 should end the stage")
	}
	if res.Reason != ReasonTooShort {
		t.Errorf("reason = %q, expected %q", res.Reason, ReasonTooShort)
	}
	if s.Snapshot().Counters.Poison != 1 {
		t.Error("poison counter should still count the pickup")
	}
}

func TestReversalIsTerminal(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	s.Tick(down())

	res := s.Tick(Input{Dir: DirUp})
	if res.Alive || res.Reason != ReasonReversal {
		t.Fatalf("reversal should fail with %q, got alive=%v %q", ReasonReversal, res.Alive, res.Reason)
	}
	if s.Snapshot().Snake.Head != (Coord{12, 21}) {
		t.Error("a reversal should not move the snake")
	}
}

func TestReversalSentinelFailsNextTick(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	s.snake.Heading = DirReversal

	res := s.Tick(Input{})
	if res.Alive || res.Reason != ReasonReversal {
		t.Errorf("sentinel heading should fail with %q, got alive=%v %q", ReasonReversal, res.Alive, res.Reason)
	}
}

func TestReversalUnderShield(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	s.Tick(down())
	s.shield = 10

	if res := s.Tick(Input{Dir: DirUp}); !res.Alive {
		t.Fatalf("shield should suspend the reversal rule, got %q", res.Reason)
	}
	if res := s.Tick(Input{Dir: DirRight}); !res.Alive {
		t.Fatalf("turning after a shielded reversal should be alive, got %q", res.Reason)
	}
	if h := s.Snapshot().Snake.Head; h != (Coord{12, 22}) {
		t.Errorf("head = %v, expected (12,22)", h)
	}
}

func TestGrowthPickup(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	place(s, KindGrowth, Coord{12, 21})

	res := s.Tick(down())
	if !res.Alive {
		t.Fatalf("growth tick should be alive, got %q", res.Reason)
	}
	if len(res.Picked) != 1 || res.Picked[0] != KindGrowth {
		t.Errorf("picked = %v, expected [growth]", res.Picked)
	}

	v := s.Snapshot()
	if v.Snake.Len() != 4 {
		t.Fatalf("length = %d, expected 4", v.Snake.Len())
	}
	if tail, _ := v.Snake.Tail(); tail != (Coord{8, 21}) {
		t.Errorf("new tail = %v, expected (8,21) on the line of the old tail", tail)
	}
	if v.Counters.Growth != 1 || v.Score != PointsGrowth {
		t.Errorf("growth counter %d score %d", v.Counters.Growth, v.Score)
	}
	if it := v.Item(KindGrowth); !it.Present || it.Pos == (Coord{12, 21}) {
		t.Errorf("growth should respawn elsewhere, got %+v", it)
	}
	if v.MaxLength != 4 {
		t.Errorf("max length = %d, expected 4", v.MaxLength)
	}
}

func TestShieldAndTimeEffects(t *testing.T) {
	rules := DefaultRules()
	s := newTestSession(t, rules)
	place(s, KindShield, Coord{12, 21})
	place(s, KindTime, Coord{13, 21})

	s.Tick(down())
	v := s.Snapshot()
	if v.ShieldTicks != rules.ShieldTicks-1 {
		t.Errorf("shield ticks = %d, expected %d", v.ShieldTicks, rules.ShieldTicks-1)
	}
	if v.Item(KindShield).Present {
		t.Error("a picked shield is cleared, not respawned")
	}

	s.Tick(down())
	if s.SpeedMultiplier() != rules.BoostMultiplier {
		t.Errorf("speed multiplier = %v, expected %v", s.SpeedMultiplier(), rules.BoostMultiplier)
	}
	if !s.Snapshot().Item(KindTime).Present {
		t.Error("a picked time item respawns")
	}
}

func TestRandomItemAppliesOneEffect(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	s.snake.padTo(5)
	place(s, KindRandom, Coord{12, 21})

	res := s.Tick(down())
	if !res.Alive {
		t.Fatalf("random pickup at length 5 should be survivable, got %q", res.Reason)
	}

	v := s.Snapshot()
	if v.Item(KindRandom).Present {
		t.Error("a picked random item is cleared")
	}
	applied := 0
	if v.Counters.Growth == 1 {
		applied++
	}
	if v.Counters.Poison == 1 {
		applied++
	}
	if v.BoostTicks > 0 {
		applied++
	}
	if v.ShieldTicks > 0 {
		applied++
	}
	if applied != 1 {
		t.Errorf("exactly one effect should apply, got %d (%+v)", applied, v.Counters)
	}
}

func TestGateTraversal(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	entry := Coord{12, 21}
	s.board.walls[entry] = Wall{Pos: entry}
	s.gates = GatePair{Gates: [2]Gate{
		{Pos: entry, Exit: DirJunction},
		{Pos: Coord{1, 30}, Exit: DirDown},
	}}

	res := s.Tick(down())
	if !res.Alive || !res.GateUsed {
		t.Fatalf("gate entry should be alive and reported, got alive=%v used=%v %q", res.Alive, res.GateUsed, res.Reason)
	}

	v := s.Snapshot()
	if v.Snake.Head != (Coord{2, 30}) || v.Snake.Heading != DirDown {
		t.Errorf("head %v heading %v, expected (2,30) down", v.Snake.Head, v.Snake.Heading)
	}
	if !v.Gates.Gates[1].Active || v.Gates.Gates[0].Active {
		t.Error("only the exit gate should be active")
	}
	if v.Gates.Countdown != 3 {
		t.Errorf("countdown = %d, expected body length 3", v.Gates.Countdown)
	}
	if v.Counters.Gates != 1 || !v.Missions.Gate {
		t.Errorf("gate counter %d, gate mission %v", v.Counters.Gates, v.Missions.Gate)
	}
	if v.Score != PointsGate {
		t.Errorf("score = %d, expected %d", v.Score, PointsGate)
	}

	for i := range 3 {
		if res := s.Tick(Input{}); !res.Alive {
			t.Fatalf("tick %d after the gate failed: %q", i, res.Reason)
		}
	}
	if s.Snapshot().Gates.Active() {
		t.Error("gates should deactivate once the body has passed")
	}
}

func TestGateJunctionExit(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	entry := Coord{12, 21}
	exit := Coord{5, 10}
	s.board.walls[entry] = Wall{Pos: entry}
	s.board.walls[exit] = Wall{Pos: exit}
	s.board.walls[Coord{6, 10}] = Wall{Pos: Coord{6, 10}} // straight ahead is blocked
	s.gates = GatePair{Gates: [2]Gate{
		{Pos: entry, Exit: DirJunction},
		{Pos: exit, Exit: DirJunction},
	}}

	res := s.Tick(down())
	if !res.Alive {
		t.Fatalf("junction exit should be alive, got %q", res.Reason)
	}
	// Down is blocked, so the left turn (Right when heading Down) is taken
	if v := s.Snapshot(); v.Snake.Head != (Coord{5, 11}) || v.Snake.Heading != DirRight {
		t.Errorf("head %v heading %v, expected (5,11) right", v.Snake.Head, v.Snake.Heading)
	}
}

func TestMissionCompletionIsRecomputed(t *testing.T) {
	s := newTestSession(t, DefaultRules())

	res := s.Tick(Input{Debug: DebugCompleteMissions})
	if !res.Alive || !res.MissionCompleted {
		t.Fatalf("forced missions should complete, got alive=%v completed=%v", res.Alive, res.MissionCompleted)
	}
	if s.Snapshot().Snake.Len() != 7 {
		t.Fatalf("forced missions should pad the body to 7, got %d", s.Snapshot().Snake.Len())
	}

	place(s, KindPoison, Coord{12, 21})
	res = s.Tick(down())
	if !res.Alive {
		t.Fatalf("poison at length 7 should be survivable, got %q", res.Reason)
	}
	if res.MissionCompleted {
		t.Error("completion must drop when the length falls below 7")
	}
	if m := s.Snapshot().Missions; m.Length || !m.Growth || !m.Poison || !m.Gate {
		t.Errorf("missions = %+v, expected only the length flag to drop", m)
	}
}

func TestDebugJumpStage(t *testing.T) {
	s := newTestSession(t, DefaultRules())

	res := s.Tick(Input{Dir: DirDown, Debug: DebugJumpStage, Stage: 3})
	if res.JumpStage != 3 || !res.Alive {
		t.Errorf("result = %+v, expected a jump to stage 3", res)
	}
	if s.Snapshot().Snake.Head != (Coord{11, 21}) {
		t.Error("a stage jump should not simulate the tick")
	}
}

func TestDeadSessionStaysDead(t *testing.T) {
	s := newTestSession(t, DefaultRules())
	s.Tick(down())
	first := s.Tick(Input{Dir: DirUp})

	again := s.Tick(Input{Dir: DirLeft})
	if again.Alive || again.Reason != first.Reason {
		t.Errorf("a dead session should repeat %q, got alive=%v %q", first.Reason, again.Alive, again.Reason)
	}
	if s.Alive() {
		t.Error("Alive() should be false")
	}

	if err := s.ResetStage(stage21x41); err != nil {
		t.Fatal(err)
	}
	if !s.Alive() || s.Snapshot().Snake.Len() != 3 {
		t.Error("ResetStage should revive the session")
	}
}

func TestWallAndBoundsFailures(t *testing.T) {
	t.Run("wall", func(t *testing.T) {
		s := newTestSession(t, DefaultRules())
		s.snake = newSnake(Coord{11, 40}, []Coord{{11, 39}, {11, 38}, {11, 37}})
		s.snake.Heading = DirRight

		if res := s.Tick(Input{}); res.Alive || res.Reason != ReasonWall {
			t.Errorf("expected %q, got alive=%v %q", ReasonWall, res.Alive, res.Reason)
		}
	})

	t.Run("bounds under shield", func(t *testing.T) {
		s := newTestSession(t, DefaultRules())
		s.snake = newSnake(Coord{1, 21}, []Coord{{2, 21}, {3, 21}, {4, 21}})
		s.snake.Heading = DirUp
		s.shield = 10

		if res := s.Tick(Input{}); res.Alive || res.Reason != ReasonOutOfBounds {
			t.Errorf("expected %q, got alive=%v %q", ReasonOutOfBounds, res.Alive, res.Reason)
		}
	})
}

func TestStaleItemsRespawn(t *testing.T) {
	rules := DefaultRules()
	rules.StaleTicks = 3
	s := newTestSession(t, rules)

	for range 10 {
		s.Tick(Input{})
	}
	if s.Snapshot().Item(KindShield).Present {
		t.Fatal("idle ticks must not age items")
	}

	for range 3 {
		if res := s.Tick(down()); !res.Alive {
			t.Fatalf("tick failed: %q", res.Reason)
		}
	}
	v := s.Snapshot()
	for _, k := range ItemKinds {
		it := v.Item(k)
		if !it.Present || it.Stale != 0 {
			t.Errorf("%v should have respawned, got %+v", k, it)
		}
	}
}

func TestGateRelocation(t *testing.T) {
	rules := DefaultRules()
	rules.RelocateTicks = 2
	s := newTestSession(t, rules)

	s.Tick(down())
	if s.gateTimer != 1 {
		t.Fatalf("gate timer = %d, expected 1", s.gateTimer)
	}
	s.Tick(down())
	if s.gateTimer != 0 {
		t.Errorf("gate timer should reset after relocation, got %d", s.gateTimer)
	}

	s.gates.Gates[0].Active = true
	s.gates.Countdown = 10
	before := s.gates.Gates
	s.Tick(down())
	s.Tick(down())
	if s.gates.Gates[0].Pos != before[0].Pos || s.gates.Gates[1].Pos != before[1].Pos {
		t.Error("active gates must not relocate")
	}
}

func TestAliveInvariants(t *testing.T) {
	driver := rand.New(rand.NewSource(99))
	s, err := NewSession(DefaultRules(), rand.New(rand.NewSource(5)), StageConfig{Height: 21, Width: 41, Walls: 4, Variant: VariantIslands})
	if err != nil {
		t.Fatal(err)
	}

	dirs := []Direction{DirUp, DirLeft, DirRight, DirDown}
	for i := range 3000 {
		in := Input{}
		if driver.Intn(4) == 0 {
			in.Dir = dirs[driver.Intn(len(dirs))]
		}
		if i == 0 {
			in.Dir = DirDown
		}

		res := s.Tick(in)
		if !res.Alive {
			if err := s.ResetStage(s.Stage()); err != nil {
				t.Fatal(err)
			}
			continue
		}

		v := s.Snapshot()
		if v.Snake.Len() < MinLength {
			t.Fatalf("tick %d: alive with length %d", i, v.Snake.Len())
		}
		if v.ShieldTicks == 0 {
			for _, seg := range v.Snake.Body {
				if seg == v.Snake.Head {
					t.Fatalf("tick %d: alive with the head on the body", i)
				}
			}
		}
	}
}
