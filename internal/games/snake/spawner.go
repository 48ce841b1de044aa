package snake

import "github.com/zyedidia/generic/mapset"

// DefaultSpawnAttempts bounds the random draws before Spawn scans the board.
const DefaultSpawnAttempts = 64

// Item is a collectible. Present is false while the item is absent from
// the board; Pos is meaningless then.
type Item struct {
	Kind    Kind
	Pos     Coord
	Present bool
	Stale   int // moving ticks since the item was last placed
}

// Spawner finds placement-legal cells for items.
type Spawner struct {
	Board    *Board
	Attempts int
	rng      RNG
}

// NewSpawner creates a spawner drawing from rng. attempts <= 0 uses
// DefaultSpawnAttempts.
func NewSpawner(b *Board, rng RNG, attempts int) *Spawner {
	if attempts <= 0 {
		attempts = DefaultSpawnAttempts
	}
	return &Spawner{Board: b, Attempts: attempts, rng: rng}
}

// Spawn picks a cell for an item: inside the border, not a wall (unless
// includeWalls), not in occupied (snake, gates, other items), and not
// enclosed by walls on all four sides. Random draws are tried first, then a
// row-major scan. ok is false when the board has no legal cell.
func (sp *Spawner) Spawn(kind Kind, includeWalls bool, occupied mapset.Set[Coord]) (Coord, bool) {
	b := sp.Board
	for range sp.Attempts {
		c := Coord{Row: 2 + sp.rng.Intn(b.Height-2), Col: 2 + sp.rng.Intn(b.Width-2)}
		if sp.legal(c, includeWalls, occupied) {
			return c, true
		}
	}

	for r := 2; r < b.Height; r++ {
		for col := 2; col < b.Width; col++ {
			c := Coord{Row: r, Col: col}
			if sp.legal(c, includeWalls, occupied) {
				return c, true
			}
		}
	}
	return Coord{}, false
}

func (sp *Spawner) legal(c Coord, includeWalls bool, occupied mapset.Set[Coord]) bool {
	b := sp.Board
	if !b.Interior(c) || occupied.Has(c) {
		return false
	}
	if !includeWalls && b.IsWall(c) {
		return false
	}
	for _, n := range c.Neighbors() {
		if !b.IsWall(n) {
			return true
		}
	}
	// walled in on all four sides
	return false
}
