package snake

// Failure reasons reported by a terminal tick.
const (
	ReasonOutOfBounds = "Out of bounds"
	ReasonWall        = "Collided with the wall"
	ReasonBodyInWall  = "Snake body overlapped with wall"
	ReasonSelf        = "Collided with the body"
	ReasonTooShort    = "Length is less than 3"
	ReasonReversal    = "Tried moving in the opposite direction."
)

// validate runs the collision rules in order and returns the first failure.
// The bounds rule always applies; a shield suspends the rest.
func validate(b *Board, s *Snake, shielded bool) (reason string, ok bool) {
	if !b.InBounds(s.Head) {
		return ReasonOutOfBounds, false
	}
	if shielded {
		return "", true
	}
	if b.IsWall(s.Head) {
		return ReasonWall, false
	}
	for _, seg := range s.Body {
		if b.IsWall(seg) {
			return ReasonBodyInWall, false
		}
	}
	if s.onBody(s.Head) {
		return ReasonSelf, false
	}
	if s.Len() < MinLength {
		return ReasonTooShort, false
	}
	if s.Heading == DirReversal {
		return ReasonReversal, false
	}
	return "", true
}
