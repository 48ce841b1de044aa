package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gate-snake/internal/core"
	"github.com/vovakirdan/gate-snake/internal/games/snake"
	"github.com/vovakirdan/gate-snake/internal/sfx"
	"github.com/vovakirdan/gate-snake/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	svc := Services{Journal: store, Sound: sfx.NewPlayer(), RunID: "test-run", Debug: true}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m := NewModel(snake.New(), svc, cfg)
	m.Init()
	return m, store
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelJournalsStages(t *testing.T) {
	m, store := newTestModel(t)

	m = tick(t, m, 1)
	if !m.stageOpen {
		t.Fatal("the first tick should open the stage")
	}

	m, _ = press(t, m, runeKey('D'))
	m = tick(t, m, 20)

	rows, err := store.RunResults("test-run")
	if err != nil {
		t.Fatalf("RunResults() failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Outcome != storage.OutcomeCleared || rows[0].Stage != 1 {
		t.Fatalf("expected one cleared stage 1 row, got %+v", rows)
	}
	if rows[0].Mode != "snake" || rows[0].StageName != "Basic" {
		t.Errorf("unexpected row %+v", rows[0])
	}

	// the next stage starts after the clear overlay
	m = tick(t, m, 100)
	if !m.stageOpen {
		t.Fatal("stage 2 should be open")
	}

	m, cmd := press(t, m, runeKey('q'))
	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}

	rows, _ = store.RunResults("test-run")
	if len(rows) != 2 || rows[1].Outcome != storage.OutcomeAbandoned || rows[1].Stage != 2 {
		t.Errorf("quitting mid-stage should journal an abandoned row, got %+v", rows)
	}
}

func TestModelQuitWithoutStage(t *testing.T) {
	m, store := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.quitting {
		t.Fatal("esc should leave the game")
	}
	if rows, _ := store.RunResults("test-run"); len(rows) != 0 {
		t.Errorf("nothing was played, got %+v", rows)
	}
	if m.View() != "" {
		t.Error("a quitting model should render nothing")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, _ := newTestModel(t)
	m = tick(t, m, 1)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	m = next.(Model)
	m = tick(t, m, 1)
	if m.gameState.GameOver {
		t.Fatal("shrinking the window should not end the game")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if !m.stageOpen {
		t.Error("resizing should not restart the stage")
	}
}

func TestModelJournalsStageLeftByJump(t *testing.T) {
	m, store := newTestModel(t)
	m = tick(t, m, 1)

	m, _ = press(t, m, runeKey('3'))
	m = tick(t, m, 20)

	rows, err := store.RunResults("test-run")
	if err != nil {
		t.Fatalf("RunResults() failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Outcome != storage.OutcomeAbandoned || rows[0].Stage != 1 || rows[0].StageName != "Basic" {
		t.Fatalf("jumping away should journal stage 1 as abandoned, got %+v", rows)
	}
	if !m.stageOpen || m.gameState.GameOver {
		t.Fatal("stage 3 should be open")
	}

	press(t, m, runeKey('q'))
	rows, _ = store.RunResults("test-run")
	if len(rows) != 2 || rows[1].Stage != 3 || rows[1].StageName != "Islands" {
		t.Errorf("quitting should journal stage 3, got %+v", rows)
	}
}
