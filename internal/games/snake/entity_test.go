package snake

import "testing"

func testSnake() Snake {
	return newSnake(Coord{Row: 5, Col: 5}, []Coord{{4, 5}, {3, 5}, {2, 5}})
}

func TestMoveAndAdvanceBody(t *testing.T) {
	s := testSnake()

	s.AdvanceBody()
	s.Move(DirDown)

	if s.Head != (Coord{6, 5}) {
		t.Errorf("head = %v, expected (6,5)", s.Head)
	}
	want := []Coord{{5, 5}, {4, 5}, {3, 5}}
	for i, c := range want {
		if s.Body[i] != c {
			t.Errorf("body[%d] = %v, expected %v", i, s.Body[i], c)
		}
	}
	if s.Len() != 3 {
		t.Errorf("length = %d, expected 3", s.Len())
	}

	s.Move(DirNone)
	if s.Head != (Coord{6, 5}) {
		t.Error("Move(None) should not move the head")
	}
}

func TestGrowExtrapolatesTail(t *testing.T) {
	tests := []struct {
		name string
		body []Coord
		want Coord
	}{
		{"vertical", []Coord{{4, 5}, {3, 5}, {2, 5}}, Coord{1, 5}},
		{"horizontal", []Coord{{5, 6}, {5, 7}, {5, 8}}, Coord{5, 9}},
		{"bent", []Coord{{4, 5}, {4, 6}, {3, 6}}, Coord{2, 6}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSnake(Coord{5, 5}, tc.body)
			s.Grow()

			if s.Len() != len(tc.body)+1 {
				t.Fatalf("length = %d, expected %d", s.Len(), len(tc.body)+1)
			}
			tail, _ := s.Tail()
			if tail != tc.want {
				t.Errorf("new tail = %v, expected %v", tail, tc.want)
			}

			// colinear with the previous two tail segments
			prev, last := tc.body[len(tc.body)-2], tc.body[len(tc.body)-1]
			if tail.Row-last.Row != last.Row-prev.Row || tail.Col-last.Col != last.Col-prev.Col {
				t.Errorf("tail %v not on the line %v -> %v", tail, prev, last)
			}
		})
	}
}

func TestGrowShortBody(t *testing.T) {
	s := newSnake(Coord{5, 5}, []Coord{{4, 5}})
	s.Grow()

	if tail, _ := s.Tail(); tail != (Coord{6, 5}) {
		t.Errorf("grow with one segment should append below the head, got %v", tail)
	}
}

func TestShrinkRefusesBelowMinimum(t *testing.T) {
	s := testSnake()
	if s.Shrink() {
		t.Error("Shrink at length 3 should refuse")
	}
	if s.Len() != 3 {
		t.Errorf("refused shrink changed length to %d", s.Len())
	}

	s.Grow()
	if !s.Shrink() {
		t.Error("Shrink at length 4 should succeed")
	}
	if s.Len() != 3 {
		t.Errorf("length = %d after shrink, expected 3", s.Len())
	}
}

func TestSteer(t *testing.T) {
	tests := []struct {
		name    string
		heading Direction
		input   Direction
		want    Direction
	}{
		{"start moving", DirNone, DirUp, DirUp},
		{"no input", DirDown, DirNone, DirDown},
		{"same direction", DirDown, DirDown, DirDown},
		{"turn", DirDown, DirLeft, DirLeft},
		{"reversal", DirDown, DirUp, DirReversal},
		{"reversal horizontal", DirLeft, DirRight, DirReversal},
		{"input replaces sentinel", DirReversal, DirRight, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := testSnake()
			s.Heading = tc.heading
			s.steer(tc.input)
			if s.Heading != tc.want {
				t.Errorf("heading = %v, expected %v", s.Heading, tc.want)
			}
		})
	}
}

func TestPadTo(t *testing.T) {
	s := testSnake()
	s.padTo(7)

	if s.Len() != 7 {
		t.Fatalf("length = %d, expected 7", s.Len())
	}
	for _, c := range s.Body[3:] {
		if c != (Coord{2, 5}) {
			t.Errorf("padding segment %v should stack on the tail", c)
		}
	}

	// padding unfolds as the snake moves
	for range 4 {
		s.AdvanceBody()
		s.Move(DirDown)
	}
	seen := make(map[Coord]bool)
	for _, c := range s.Body {
		if seen[c] {
			t.Errorf("segment %v still stacked after four moves", c)
		}
		seen[c] = true
	}
}
