package snake

import "github.com/vovakirdan/gate-snake/internal/core"

// Autopilot steers a snake without a player: it looks one cell ahead in
// every candidate direction, refuses walls and the body, and leans toward
// the growth item. It drives the headless simulate command.
//
// The candidates are straight, left and right of the heading. A snake
// without a heading may go anywhere its body is not.
func Autopilot(v Snapshot, rng RNG) Direction {
	grid := v.Grid()
	head := v.Snake.Head

	candidates := []Direction{DirUp, DirLeft, DirRight, DirDown}
	if h := v.Snake.Heading; h.Concrete() {
		candidates = []Direction{h, h.TurnLeft(), h.TurnRight()}
	}

	growth := v.Item(KindGrowth)
	best, bestScore := DirNone, -1<<30
	for i, d := range candidates {
		next := head.Step(d)
		score, ok := cellScore(grid, next, v.Snake.Len())
		if !ok {
			continue
		}
		if growth.Present && manhattan(next, growth.Pos) < manhattan(head, growth.Pos) {
			score += 40
		}
		if i == 0 && v.Snake.Heading.Concrete() {
			score += 10 // prefer straight lines
		}
		score += rng.Intn(20)

		if score > bestScore {
			best, bestScore = d, score
		}
	}

	if best == DirNone {
		// boxed in, keep going
		return v.Snake.Heading
	}
	return best
}

// cellScore rates moving the head onto c; ok is false for a fatal cell.
func cellScore(grid [][]Kind, c Coord, length int) (score int, ok bool) {
	if c.Row < 1 || c.Row > len(grid) || c.Col < 1 || c.Col > len(grid[c.Row-1]) {
		return 0, false
	}
	switch grid[c.Row-1][c.Col-1] {
	case KindWall, KindImmuneWall, KindSnakeBody, KindSnakeHead:
		return 0, false
	case KindPoison:
		if length <= MinLength {
			return 0, false
		}
		return -30, true
	case KindGrowth:
		return 100, true
	case KindRandom:
		if length <= MinLength {
			return -10, true // may roll poison
		}
		return 20, true
	case KindGate, KindTime, KindShield:
		return 20, true
	default:
		return 0, true
	}
}

func manhattan(a, b Coord) int {
	return core.Abs(a.Row-b.Row) + core.Abs(a.Col-b.Col)
}
