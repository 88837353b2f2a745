package searcher

import (
	"network/game"

	"golang.org/x/sync/errgroup"
)

// searchParallel is the root of search with its moves spread over
// goroutines. Each root move is searched on a private board copy with the
// full window, and replies are merged in move order, so the result matches a
// sequential search.
func (m *Minimax) searchParallel(board *game.Board, side game.Side) Best {
	m.metrics.AddNode()
	if best, ok := m.terminal(board, side, true, 0); ok {
		return best
	}
	if m.isCutoff(0, 1) {
		return m.leaf(board, side, 0)
	}
	moves := board.LegalMoves(side)
	if len(moves) == 0 {
		return m.leaf(board, side, 0)
	}
	childBudget := m.childBudget(len(moves), 1)

	replies := make([]Best, len(moves))
	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i, move := range moves {
		g.Go(func() error {
			b := board.Copy()
			b.Apply(move, side)
			replies[i] = m.search(b, side, false, 1, Loss, Win, childBudget)
			return nil
		})
	}
	_ = g.Wait() // Workers never fail

	best := Best{Move: moves[0], Score: Loss, Depth: unresolved}
	for i, reply := range replies {
		if best.replacedBy(reply, true) {
			best = Best{Move: moves[i], Score: reply.Score, Depth: reply.Depth}
		}
	}
	return best
}
