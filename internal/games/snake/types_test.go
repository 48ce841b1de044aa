package snake

import "testing"

func TestDirectionComplement(t *testing.T) {
	tests := []struct {
		d, opposite Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirNone, DirNone},
		{DirJunction, DirJunction},
	}

	for _, tc := range tests {
		if got := tc.d.Opposite(); got != tc.opposite {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.d, got, tc.opposite)
		}
		if tc.d.Concrete() && int(tc.d)+int(tc.opposite) != 5 {
			t.Errorf("%v and %v should sum to 5", tc.d, tc.opposite)
		}
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range []Direction{DirUp, DirLeft, DirRight, DirDown} {
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("TurnLeft then TurnRight should return %v", d)
		}
		if d.TurnLeft().TurnLeft() != d.Opposite() {
			t.Errorf("two left turns from %v should reverse it", d)
		}
	}
	if DirUp.TurnLeft() != DirLeft || DirUp.TurnRight() != DirRight {
		t.Error("turns from Up should be Left (ccw) and Right (cw)")
	}
}

func TestCoordStep(t *testing.T) {
	c := Coord{Row: 5, Col: 5}
	tests := []struct {
		d    Direction
		want Coord
	}{
		{DirUp, Coord{4, 5}},
		{DirDown, Coord{6, 5}},
		{DirLeft, Coord{5, 4}},
		{DirRight, Coord{5, 6}},
		{DirNone, c},
		{DirReversal, c},
	}
	for _, tc := range tests {
		if got := c.Step(tc.d); got != tc.want {
			t.Errorf("Step(%v) = %v, expected %v", tc.d, got, tc.want)
		}
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range []Variant{VariantBasic, VariantMaze, VariantIslands, VariantCross} {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
	if _, err := ParseVariant("spiral"); err == nil {
		t.Error("unknown variant should fail")
	}
}

func TestItemKinds(t *testing.T) {
	for i, k := range ItemKinds {
		if !k.IsItem() {
			t.Errorf("%v should be an item", k)
		}
		if k.itemIndex() != i {
			t.Errorf("%v index = %d, expected %d", k, k.itemIndex(), i)
		}
	}
	if KindWall.IsItem() || KindSnakeHead.IsItem() {
		t.Error("walls and snake cells are not items")
	}
}
