package domain

// Move is the head displacement attached to a transition rule.
type Move int

const (
	MoveLeft Move = iota
	MoveRight
	MoveStay
)

// Wire tokens for moves, inherited from the specification file format:
// "d" (right), "i" (left), "q" (stay).
const (
	tokenLeft  = "i"
	tokenRight = "d"
	tokenStay  = "q"
)

// ParseMove converts a wire token into a Move.
func ParseMove(tok string) (Move, error) {
	switch tok {
	case tokenLeft:
		return MoveLeft, nil
	case tokenRight:
		return MoveRight, nil
	case tokenStay:
		return MoveStay, nil
	default:
		return MoveStay, &SpecError{Reason: "invalid move token " + quote(tok) + " (want i, d or q)"}
	}
}

func (m Move) String() string {
	switch m {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveStay:
		return "stay"
	default:
		return "invalid"
	}
}

// Token returns the wire representation of the move.
func (m Move) Token() string {
	switch m {
	case MoveLeft:
		return tokenLeft
	case MoveRight:
		return tokenRight
	default:
		return tokenStay
	}
}
