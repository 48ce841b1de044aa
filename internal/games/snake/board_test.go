package snake

import (
	"errors"
	"math/rand"
	"testing"
)

// fixedRNG always draws the same value, reduced modulo n.
type fixedRNG struct{ v int }

func (r fixedRNG) Intn(n int) int { return r.v % n }

func TestBorderWalls(t *testing.T) {
	b := newBoard(21, 41)

	corners := []Coord{{1, 1}, {1, 41}, {21, 1}, {21, 41}}
	for _, c := range corners {
		w, ok := b.WallAt(c)
		if !ok || !w.Immune {
			t.Errorf("corner %v should be an immune wall", c)
		}
	}

	tests := []struct {
		c    Coord
		want Direction
	}{
		{Coord{1, 20}, DirUp},
		{Coord{21, 20}, DirDown},
		{Coord{10, 1}, DirLeft},
		{Coord{10, 41}, DirRight},
	}
	for _, tc := range tests {
		w, ok := b.WallAt(tc.c)
		if !ok || w.Immune || w.Orientation != tc.want {
			t.Errorf("border wall %v = %+v, expected orientation %v", tc.c, w, tc.want)
		}
	}

	if b.IsWall(Coord{10, 20}) {
		t.Error("interior should start empty")
	}
	if got := len(b.Walls()); got != 2*41+2*19 {
		t.Errorf("border wall count = %d, expected %d", got, 2*41+2*19)
	}
}

func TestGenerateBoardTooSmall(t *testing.T) {
	_, err := GenerateBoard(StageConfig{Height: 8, Width: 41, Walls: 2}, fixedRNG{})
	if !errors.Is(err, ErrBoardTooSmall) {
		t.Errorf("expected ErrBoardTooSmall, got %v", err)
	}
}

func TestGenerateBoardKeepsStartClear(t *testing.T) {
	variants := []Variant{VariantBasic, VariantMaze, VariantIslands, VariantCross}

	for _, v := range variants {
		for seed := int64(1); seed <= 30; seed++ {
			cfg := StageConfig{Height: 21, Width: 41, Walls: 5, Variant: v}
			b, err := GenerateBoard(cfg, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("%v seed %d: %v", v, seed, err)
			}

			head, body, ahead := startLayout(cfg.Height, cfg.Width)
			for _, c := range append(append([]Coord{head}, body...), ahead...) {
				if b.IsWall(c) {
					t.Errorf("%v seed %d: start cell %v is a wall", v, seed, c)
				}
			}
		}
	}
}

func TestGenerateBoardIsConnected(t *testing.T) {
	variants := []Variant{VariantBasic, VariantMaze, VariantIslands, VariantCross}

	for _, v := range variants {
		for seed := int64(1); seed <= 30; seed++ {
			cfg := StageConfig{Height: 21, Width: 41, Walls: 5, Variant: v}
			b, err := GenerateBoard(cfg, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("%v seed %d: %v", v, seed, err)
			}

			head, _, _ := startLayout(cfg.Height, cfg.Width)
			reached := map[Coord]bool{head: true}
			queue := []Coord{head}
			for len(queue) > 0 {
				c := queue[0]
				queue = queue[1:]
				for _, n := range c.Neighbors() {
					if b.Open(n) && !reached[n] {
						reached[n] = true
						queue = append(queue, n)
					}
				}
			}

			for r := 2; r < cfg.Height; r++ {
				for c := 2; c < cfg.Width; c++ {
					cell := Coord{r, c}
					if b.Open(cell) && !reached[cell] {
						t.Fatalf("%v seed %d: open cell %v unreachable from the head", v, seed, cell)
					}
				}
			}
		}
	}
}

func TestGenerateBoardCross(t *testing.T) {
	cfg := StageConfig{Height: 21, Width: 41, Walls: 0, Variant: VariantCross}
	b, err := GenerateBoard(cfg, fixedRNG{})
	if err != nil {
		t.Fatal(err)
	}

	head, _, _ := startLayout(cfg.Height, cfg.Width)
	if !b.IsWall(Coord{head.Row, 4}) || !b.IsWall(Coord{4, head.Col}) {
		t.Error("cross arms should be walls")
	}
	for dr := -3; dr <= 3; dr++ {
		for dc := -3; dc <= 3; dc++ {
			c := Coord{head.Row + dr, head.Col + dc}
			if b.IsWall(c) {
				t.Errorf("cell %v within the clear radius is a wall", c)
			}
		}
	}
}

func TestWallsRowMajor(t *testing.T) {
	b := newBoard(9, 9)
	walls := b.Walls()
	for i := 1; i < len(walls); i++ {
		a, c := walls[i-1].Pos, walls[i].Pos
		if a.Row > c.Row || (a.Row == c.Row && a.Col >= c.Col) {
			t.Fatalf("walls out of order at %d: %v then %v", i, a, c)
		}
	}
}
