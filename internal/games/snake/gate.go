package snake

import "fmt"

// Gate is one end of a teleport pair. Exit is a concrete direction for
// gates cut into the border and DirJunction for interior gates.
type Gate struct {
	Pos    Coord
	Exit   Direction
	Active bool
}

// GatePair is the two linked gates of a stage plus the shared countdown
// that keeps them active while the snake passes through.
type GatePair struct {
	Gates     [2]Gate
	Countdown int
}

// At returns the index of the gate at c, or -1.
func (p GatePair) At(c Coord) int {
	for i, g := range p.Gates {
		if g.Pos == c {
			return i
		}
	}
	return -1
}

// Active reports whether either gate is active.
func (p GatePair) Active() bool {
	return p.Gates[0].Active || p.Gates[1].Active
}

// Decay counts the active window down and deactivates both gates at zero.
func (p *GatePair) Decay() {
	if p.Countdown <= 0 {
		return
	}
	p.Countdown--
	if p.Countdown == 0 {
		p.Gates[0].Active = false
		p.Gates[1].Active = false
	}
}

// Enter teleports a snake whose head just entered gate i: the other gate
// becomes active for as many ticks as the body is long, the head moves to
// it, takes the resolved exit heading and steps once out of the gate.
func (p *GatePair) Enter(i int, s *Snake, b *Board) {
	other := &p.Gates[1-i]
	other.Active = true
	p.Countdown = s.Len()

	s.Head = other.Pos
	s.Heading = exitHeading(*other, s.Heading, b)
	s.Move(s.Heading)
}

// exitHeading resolves the heading a snake leaves gate g with.
// Concrete exits are taken as is. Junction exits try, in order, the incoming
// heading, a left turn, a right turn and a reversal, keeping the first whose
// target cell is open. With no open option the incoming heading is kept and
// the snake runs into the wall.
func exitHeading(g Gate, incoming Direction, b *Board) Direction {
	if g.Exit.Concrete() {
		return g.Exit
	}
	for _, d := range [4]Direction{incoming, incoming.TurnLeft(), incoming.TurnRight(), incoming.Opposite()} {
		if d.Concrete() && b.Open(g.Pos.Step(d)) {
			return d
		}
	}
	return incoming
}

// exitFor returns the exit direction of a gate cut into w: the complement of
// a border orientation, or DirJunction for interior walls.
func exitFor(w Wall) Direction {
	if w.Orientation.Concrete() {
		return w.Orientation.Opposite()
	}
	return DirJunction
}

// gateSites lists walls that can host a gate. Interior walls with at least
// two open neighbours come first. When there are fewer than two of those,
// border walls at least three cells from a corner whose inward neighbour is
// open are added.
func gateSites(b *Board) []Wall {
	var sites []Wall
	for _, w := range b.Walls() {
		if b.Interior(w.Pos) && b.openNeighbors(w.Pos) >= 2 {
			sites = append(sites, w)
		}
	}
	if len(sites) >= 2 {
		return sites
	}

	for _, w := range b.Walls() {
		if w.Immune || !w.Orientation.Concrete() {
			continue
		}
		if cornerDistance(b, w.Pos) < 3 {
			continue
		}
		if b.Open(w.Pos.Step(exitFor(w))) {
			sites = append(sites, w)
		}
	}
	return sites
}

// cornerDistance is the distance along the border from c to the nearest corner.
func cornerDistance(b *Board, c Coord) int {
	if c.Row == 1 || c.Row == b.Height {
		return min(c.Col-1, b.Width-c.Col)
	}
	return min(c.Row-1, b.Height-c.Row)
}

// GenerateGates picks two distinct gate sites at random.
func GenerateGates(b *Board, rng RNG) (GatePair, error) {
	sites := gateSites(b)
	if len(sites) < 2 {
		return GatePair{}, fmt.Errorf("%w: found %d on %dx%d board", ErrNoGateSites, len(sites), b.Height, b.Width)
	}

	i := rng.Intn(len(sites))
	j := rng.Intn(len(sites) - 1)
	if j >= i {
		j++
	}

	return GatePair{
		Gates: [2]Gate{
			{Pos: sites[i].Pos, Exit: exitFor(sites[i])},
			{Pos: sites[j].Pos, Exit: exitFor(sites[j])},
		},
	}, nil
}
