package snake

import "testing"

func TestMissionThresholds(t *testing.T) {
	r := DefaultMissionRules()

	tests := []struct {
		name   string
		length int
		c      Counters
		want   Missions
	}{
		{"fresh", 3, Counters{}, Missions{}},
		{"length only", 7, Counters{}, Missions{Length: true}},
		{"just below", 6, Counters{Growth: 4, Poison: 1, Gates: 0}, Missions{}},
		{"counters only", 3, Counters{Growth: 5, Poison: 2, Gates: 1}, Missions{Growth: true, Poison: true, Gate: true}},
		{"all", 7, Counters{Growth: 5, Poison: 2, Gates: 1}, Missions{true, true, true, true, true}},
		{"above", 12, Counters{Growth: 9, Poison: 4, Gates: 3}, Missions{true, true, true, true, true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Evaluate(tc.length, tc.c); got != tc.want {
				t.Errorf("Evaluate(%d, %+v) = %+v, expected %+v", tc.length, tc.c, got, tc.want)
			}
		})
	}
}

func TestMissionEvaluateIdempotent(t *testing.T) {
	r := DefaultMissionRules()
	c := Counters{Growth: 5, Poison: 1, Gates: 1}

	first := r.Evaluate(8, c)
	second := r.Evaluate(8, c)
	if first != second {
		t.Errorf("repeated evaluation differs: %+v vs %+v", first, second)
	}
}

func TestLengthMissionNotSticky(t *testing.T) {
	r := DefaultMissionRules()
	c := Counters{Growth: 5, Poison: 2, Gates: 1}

	if m := r.Evaluate(7, c); !m.All {
		t.Fatal("all missions should be complete at length 7")
	}
	m := r.Evaluate(6, c)
	if m.Length || m.All {
		t.Errorf("length mission should drop at length 6, got %+v", m)
	}
	if !m.Growth || !m.Poison || !m.Gate {
		t.Errorf("counter missions should stay complete, got %+v", m)
	}
}
