package game

// Side identifies one of the two players.
type Side int

const (
	Black Side = iota // Goal edges are rows y=0 and y=7
	White             // Goal edges are columns x=0 and x=7
)

func (s Side) Opponent() Side {
	return 1 - s
}

func (s Side) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "unknown"
	}
}
