// Package snake implements a gate snake simulation: a snake that grows and
// shrinks on a walled board, paired teleport gates, timed item effects and
// per-stage missions.
//
// The simulation core (Board, Snake, Spawner, GatePair, validate, Session,
// MissionRules) is pure and single-threaded. Game adapts it to the game
// platform by pacing ticks, tracking stage progression and rendering.
package snake

import "fmt"

// Coord is a 1-based board position.
type Coord struct {
	Row, Col int
}

// Step returns the neighbouring coordinate in direction d.
// Non-movement directions return c unchanged.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Neighbors returns the four orthogonal neighbours in Up, Left, Right, Down order.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{c.Step(DirUp), c.Step(DirLeft), c.Step(DirRight), c.Step(DirDown)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is a heading or a wall orientation.
//
// The four movement values are numbered so that 5-d is the opposite
// direction (Up 1 <-> Down 4, Left 2 <-> Right 3).
type Direction int

const (
	DirReversal Direction = -2 // a 180 degree turn was attempted
	DirNone     Direction = 0
	DirUp       Direction = 1
	DirLeft     Direction = 2
	DirRight    Direction = 3
	DirDown     Direction = 4
	DirJunction Direction = 6 // gate exit chosen at teleport time
)

// Concrete reports whether d is one of Up, Left, Right or Down.
func (d Direction) Concrete() bool {
	return d >= DirUp && d <= DirDown
}

// Opposite returns the complement 5-d for concrete directions and d otherwise.
func (d Direction) Opposite() Direction {
	if !d.Concrete() {
		return d
	}
	return 5 - d
}

// TurnLeft rotates a concrete direction 90 degrees counter-clockwise.
func (d Direction) TurnLeft() Direction {
	switch d {
	case DirUp:
		return DirLeft
	case DirLeft:
		return DirDown
	case DirDown:
		return DirRight
	case DirRight:
		return DirUp
	}
	return d
}

// TurnRight rotates a concrete direction 90 degrees clockwise.
func (d Direction) TurnRight() Direction {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	}
	return d
}

func (d Direction) delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	case DirReversal:
		return "reversal"
	case DirJunction:
		return "junction"
	default:
		return "unknown"
	}
}

// Kind tags what occupies a board cell.
type Kind int

const (
	KindVoid Kind = iota
	KindWall
	KindImmuneWall
	KindGate
	KindSnakeHead
	KindSnakeBody
	KindGrowth
	KindPoison
	KindTime
	KindShield
	KindRandom
)

// ItemKinds lists the item kinds in the order they are stored and evaluated.
var ItemKinds = [...]Kind{KindGrowth, KindPoison, KindTime, KindShield, KindRandom}

// IsItem reports whether k is one of the item kinds.
func (k Kind) IsItem() bool {
	return k >= KindGrowth && k <= KindRandom
}

func (k Kind) itemIndex() int {
	return int(k - KindGrowth)
}

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindWall:
		return "wall"
	case KindImmuneWall:
		return "immune_wall"
	case KindGate:
		return "gate"
	case KindSnakeHead:
		return "head"
	case KindSnakeBody:
		return "body"
	case KindGrowth:
		return "growth"
	case KindPoison:
		return "poison"
	case KindTime:
		return "time"
	case KindShield:
		return "shield"
	case KindRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Variant selects the wall generation preset of a stage.
type Variant int

const (
	VariantBasic Variant = iota
	VariantMaze
	VariantIslands
	VariantCross
)

// ParseVariant maps a configuration name to a Variant.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "basic":
		return VariantBasic, nil
	case "maze":
		return VariantMaze, nil
	case "islands":
		return VariantIslands, nil
	case "cross":
		return VariantCross, nil
	}
	return VariantBasic, fmt.Errorf("snake: unknown variant %q", name)
}

func (v Variant) String() string {
	switch v {
	case VariantMaze:
		return "maze"
	case VariantIslands:
		return "islands"
	case VariantCross:
		return "cross"
	default:
		return "basic"
	}
}

// StageConfig parameterizes one stage.
type StageConfig struct {
	Height  int // rows, borders included
	Width   int // columns, borders included
	Walls   int // interior wall segments before the variant preset scales it
	Variant Variant
	Index   int // 1-based, display only
}

// RNG is the random source the simulation draws from.
// *math/rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}
