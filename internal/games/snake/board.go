package snake

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gate-snake/internal/core"
)

// MinBoardSize is the smallest height and width a stage can have.
const MinBoardSize = 9

var (
	// ErrBoardTooSmall is returned when a stage is smaller than MinBoardSize.
	ErrBoardTooSmall = errors.New("snake: board too small")
	// ErrNoGateSites is returned when fewer than two walls can host a gate.
	ErrNoGateSites = errors.New("snake: not enough gate sites")
)

// Wall is a wall cell. Orientation is set for border walls only and names the
// border the wall belongs to; interior walls carry DirNone.
type Wall struct {
	Pos         Coord
	Orientation Direction
	Immune      bool // corner cells never host a gate
}

// Board is the static wall layout of a stage.
type Board struct {
	Height int
	Width  int
	walls  map[Coord]Wall
}

func newBoard(height, width int) *Board {
	b := &Board{Height: height, Width: width, walls: make(map[Coord]Wall)}
	b.addBorder()
	return b
}

// InBounds reports whether c lies on the board, borders included.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 1 && c.Row <= b.Height && c.Col >= 1 && c.Col <= b.Width
}

// Interior reports whether c lies strictly inside the border.
func (b *Board) Interior(c Coord) bool {
	return c.Row > 1 && c.Row < b.Height && c.Col > 1 && c.Col < b.Width
}

// IsWall reports whether c is a wall of any kind, gate sites included.
func (b *Board) IsWall(c Coord) bool {
	_, ok := b.walls[c]
	return ok
}

// Open reports whether c is on the board and not a wall.
func (b *Board) Open(c Coord) bool {
	return b.InBounds(c) && !b.IsWall(c)
}

// WallAt returns the wall at c.
func (b *Board) WallAt(c Coord) (Wall, bool) {
	w, ok := b.walls[c]
	return w, ok
}

// Walls returns every wall in row-major order.
func (b *Board) Walls() []Wall {
	out := make([]Wall, 0, len(b.walls))
	for r := 1; r <= b.Height; r++ {
		for c := 1; c <= b.Width; c++ {
			if w, ok := b.walls[Coord{Row: r, Col: c}]; ok {
				out = append(out, w)
			}
		}
	}
	return out
}

// openNeighbors counts the orthogonal neighbours of c that are open.
func (b *Board) openNeighbors(c Coord) int {
	n := 0
	for _, nb := range c.Neighbors() {
		if b.Open(nb) {
			n++
		}
	}
	return n
}

func (b *Board) addBorder() {
	for c := 1; c <= b.Width; c++ {
		b.addBorderWall(Coord{Row: 1, Col: c}, DirUp)
		b.addBorderWall(Coord{Row: b.Height, Col: c}, DirDown)
	}
	for r := 2; r < b.Height; r++ {
		b.addBorderWall(Coord{Row: r, Col: 1}, DirLeft)
		b.addBorderWall(Coord{Row: r, Col: b.Width}, DirRight)
	}
}

func (b *Board) addBorderWall(c Coord, orientation Direction) {
	corner := (c.Row == 1 || c.Row == b.Height) && (c.Col == 1 || c.Col == b.Width)
	if corner {
		b.walls[c] = Wall{Pos: c, Immune: true}
		return
	}
	b.walls[c] = Wall{Pos: c, Orientation: orientation}
}

// addSegment lays a straight run of interior walls. Cells outside the
// interior or in reserved are skipped; the run continues past them.
// thickness > 1 widens the run to the right of its direction of travel.
func (b *Board) addSegment(origin Coord, dir Direction, length, thickness int, reserved mapset.Set[Coord]) {
	side := dir.TurnRight()
	cell := origin
	for range length {
		c := cell
		for range thickness {
			if b.Interior(c) && !reserved.Has(c) {
				b.walls[c] = Wall{Pos: c}
			}
			c = c.Step(side)
		}
		cell = cell.Step(dir)
	}
}

func (b *Board) randomSegment(rng RNG, thickness int, reserved mapset.Set[Coord]) {
	origin := Coord{Row: 2 + rng.Intn(b.Height-2), Col: 2 + rng.Intn(b.Width-2)}
	dir := DirUp + Direction(rng.Intn(4))
	length := 4 + rng.Intn(6)
	b.addSegment(origin, dir, length, thickness, reserved)
}

// addCross lays a plus shape through center, leaving every cell within
// radius (Chebyshev distance) of center and a two cell margin to the border open.
func (b *Board) addCross(center Coord, radius int, reserved mapset.Set[Coord]) {
	for c := 4; c <= b.Width-3; c++ {
		cell := Coord{Row: center.Row, Col: c}
		if core.Abs(c-center.Col) > radius && !reserved.Has(cell) {
			b.walls[cell] = Wall{Pos: cell}
		}
	}
	for r := 4; r <= b.Height-3; r++ {
		cell := Coord{Row: r, Col: center.Col}
		if core.Abs(r-center.Row) > radius && !reserved.Has(cell) {
			b.walls[cell] = Wall{Pos: cell}
		}
	}
}

// sealPockets fills every open cell not reachable from start with wall,
// so any free cell left on the board can be reached by the snake.
func (b *Board) sealPockets(start Coord) {
	visited := mapset.New[Coord]()
	queue := []Coord{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range current.Neighbors() {
			if b.Open(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	for r := 2; r < b.Height; r++ {
		for c := 2; c < b.Width; c++ {
			cell := Coord{Row: r, Col: c}
			if !b.IsWall(cell) && !visited.Has(cell) {
				b.walls[cell] = Wall{Pos: cell}
			}
		}
	}
}

// startLayout returns the initial snake placement for a board: the head at
// the center with the body stacked above it, plus the cells below the head
// that must stay open so the first move down is free.
func startLayout(height, width int) (head Coord, body []Coord, clearAhead []Coord) {
	head = Coord{Row: (height + 1) / 2, Col: (width + 1) / 2}
	body = []Coord{
		{Row: head.Row - 1, Col: head.Col},
		{Row: head.Row - 2, Col: head.Col},
		{Row: head.Row - 3, Col: head.Col},
	}
	clearAhead = []Coord{
		{Row: head.Row + 1, Col: head.Col},
		{Row: head.Row + 2, Col: head.Col},
	}
	return head, body, clearAhead
}

// GenerateBoard builds the wall layout for a stage. Interior segments never
// cover the initial snake placement, and unreachable pockets are sealed.
func GenerateBoard(cfg StageConfig, rng RNG) (*Board, error) {
	if cfg.Height < MinBoardSize || cfg.Width < MinBoardSize {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrBoardTooSmall, cfg.Height, cfg.Width, MinBoardSize, MinBoardSize)
	}

	b := newBoard(cfg.Height, cfg.Width)

	head, body, clearAhead := startLayout(cfg.Height, cfg.Width)
	reserved := mapset.New[Coord]()
	reserved.Put(head)
	for _, c := range body {
		reserved.Put(c)
	}
	for _, c := range clearAhead {
		reserved.Put(c)
	}

	walls := max(cfg.Walls, 0)
	switch cfg.Variant {
	case VariantMaze:
		for range walls * 2 {
			b.randomSegment(rng, 1, reserved)
		}
	case VariantIslands:
		for range walls {
			b.randomSegment(rng, 2, reserved)
		}
	case VariantCross:
		b.addCross(head, 3, reserved)
		for range walls / 2 {
			b.randomSegment(rng, 1, reserved)
		}
	default:
		for range walls {
			b.randomSegment(rng, 1, reserved)
		}
	}

	b.sealPockets(head)
	return b, nil
}
