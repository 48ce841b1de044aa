package snake

// MinLength is the shortest body a live snake may have.
const MinLength = 3

// Snake is the head position, heading and body segments of the snake.
// Body is ordered head to tail.
type Snake struct {
	Head    Coord
	Heading Direction
	Body    []Coord
}

func newSnake(head Coord, body []Coord) Snake {
	return Snake{
		Head:    head,
		Heading: DirNone,
		Body:    append([]Coord(nil), body...),
	}
}

// Len returns the number of body segments, head excluded.
func (s Snake) Len() int {
	return len(s.Body)
}

// Tail returns the last body segment.
func (s Snake) Tail() (Coord, bool) {
	if len(s.Body) == 0 {
		return Coord{}, false
	}
	return s.Body[len(s.Body)-1], true
}

// Move translates the head one cell in d. Non-movement directions are a no-op.
func (s *Snake) Move(d Direction) {
	if !d.Concrete() {
		return
	}
	s.Head = s.Head.Step(d)
}

// AdvanceBody shifts the body one step toward the head: the current head
// position becomes the first segment and the last segment is dropped.
func (s *Snake) AdvanceBody() {
	if len(s.Body) == 0 {
		return
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = s.Head
}

// Grow appends a segment one step beyond the tail, continuing the line of
// the last two segments. With fewer than two segments it appends the cell
// below the head.
func (s *Snake) Grow() {
	n := len(s.Body)
	if n < 2 {
		s.Body = append(s.Body, Coord{Row: s.Head.Row + 1, Col: s.Head.Col})
		return
	}
	last, prev := s.Body[n-1], s.Body[n-2]
	s.Body = append(s.Body, Coord{
		Row: last.Row + (last.Row - prev.Row),
		Col: last.Col + (last.Col - prev.Col),
	})
}

// Shrink drops the last segment. It refuses, returning false, when the body
// is already at MinLength.
func (s *Snake) Shrink() bool {
	if len(s.Body) <= MinLength {
		return false
	}
	s.Body = s.Body[:len(s.Body)-1]
	return true
}

func (s Snake) onBody(c Coord) bool {
	for _, seg := range s.Body {
		if seg == c {
			return true
		}
	}
	return false
}

// padTo extends the body to n segments by stacking copies of the tail.
// The copies unfold one per move as the snake advances.
func (s *Snake) padTo(n int) {
	tail, ok := s.Tail()
	if !ok {
		tail = s.Head
	}
	for len(s.Body) < n {
		s.Body = append(s.Body, tail)
	}
}

// steer turns a direction input into the snake's heading. Repeating the
// current heading is ignored; the opposite of a concrete heading records the
// reversal sentinel instead of turning.
func (s *Snake) steer(d Direction) {
	switch {
	case !d.Concrete() || d == s.Heading:
	case s.Heading.Concrete() && d == s.Heading.Opposite():
		s.Heading = DirReversal
	default:
		s.Heading = d
	}
}
