package searcher

import "network/game"

// Best is the outcome of searching a position: the move to play, its score
// from the root side's perspective and the depth at which it was resolved.
type Best struct {
	Move  game.Move
	Score float64
	Depth int
}

// replacedBy reports whether reply beats b for the side to move. Equal scores
// go to the shallower resolution, so wins come sooner and losses later.
func (b Best) replacedBy(reply Best, maximizing bool) bool {
	if reply.Score == b.Score {
		return reply.Depth < b.Depth
	}
	if maximizing {
		return reply.Score > b.Score
	}
	return reply.Score < b.Score
}
