package snake

// Counters are the per-stage tallies missions are derived from.
type Counters struct {
	Growth int // growth effects applied
	Poison int // poison effects applied
	Gates  int // gate entries
}

// Missions holds the four mission flags and their conjunction.
type Missions struct {
	Length bool
	Growth bool
	Poison bool
	Gate   bool
	All    bool
}

// MissionRules are the mission thresholds.
type MissionRules struct {
	Length int
	Growth int
	Poison int
	Gates  int
}

// DefaultMissionRules returns the standard thresholds.
func DefaultMissionRules() MissionRules {
	return MissionRules{Length: 7, Growth: 5, Poison: 2, Gates: 1}
}

// Evaluate computes the flags from the current body length and counters.
// Nothing carries over between calls, so the length flag drops again when
// the body shrinks below the threshold.
func (r MissionRules) Evaluate(length int, c Counters) Missions {
	m := Missions{
		Length: length >= r.Length,
		Growth: c.Growth >= r.Growth,
		Poison: c.Poison >= r.Poison,
		Gate:   c.Gates >= r.Gates,
	}
	m.All = m.Length && m.Growth && m.Poison && m.Gate
	return m
}
