package searcher

import (
	"network/experiments/metrics"
	"network/game"

	"github.com/rs/zerolog/log"
)

// Minimax searches a shared board in place with alpha-beta pruning. Every move
// applied during the search is undone before the call that applied it returns.
type Minimax struct {
	depth      int
	nodeBudget int
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		nodeBudget: DefaultNodeBudget,
		goroutines: 1,
		evaluate:   game.EvaluateConnectivity,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search finds the best move for side on board. The board is left as it was
// found. The returned Best has no move when the position is already decided
// or side cannot move.
func (m *Minimax) Search(board *game.Board, side game.Side) (Best, metrics.SearchMetric) {
	m.metrics.Start(m.goroutines, m.depth, m.nodeBudget)
	var best Best
	if m.goroutines > 1 {
		best = m.searchParallel(board, side)
	} else {
		best = m.search(board, side, true, 0, Loss, Win, 1)
	}
	metric := m.metrics.Complete()

	log.Debug().
		Stringer("side", side).
		Stringer("move", best.Move).
		Float64("score", best.Score).
		Int("depth", best.Depth).
		Int("nodes", metric.Nodes).
		Msg("search complete")
	return best, metric
}

// search scores the position for side. maximizing is true when side is to
// move; budget is the adaptive node count carried down from the root.
func (m *Minimax) search(board *game.Board, side game.Side, maximizing bool, depth int, alpha, beta float64, budget int) Best {
	m.metrics.AddNode()
	if best, ok := m.terminal(board, side, maximizing, depth); ok {
		return best
	}
	if m.isCutoff(depth, budget) {
		return m.leaf(board, side, depth)
	}

	mover := side
	if !maximizing {
		mover = side.Opponent()
	}
	moves := board.LegalMoves(mover)
	if len(moves) == 0 {
		return m.leaf(board, side, depth)
	}
	childBudget := m.childBudget(len(moves), budget)

	best := Best{Move: moves[0], Score: beta, Depth: unresolved}
	if maximizing {
		best.Score = alpha
	}
	for _, move := range moves {
		board.Apply(move, mover)
		reply := m.search(board, side, !maximizing, depth+1, alpha, beta, childBudget)
		board.Undo(move, mover)

		if best.replacedBy(reply, maximizing) {
			best = Best{Move: move, Score: reply.Score, Depth: reply.Depth}
			if maximizing {
				alpha = reply.Score
			} else {
				beta = reply.Score
			}
		}
		if alpha > beta {
			m.metrics.AddCutoff()
			return best
		}
	}
	return best
}

// terminal scores a position where either side already has a network. The
// side to move is checked first.
func (m *Minimax) terminal(board *game.Board, side game.Side, maximizing bool, depth int) (Best, bool) {
	order := [2]game.Side{side, side.Opponent()}
	if !maximizing {
		order[0], order[1] = order[1], order[0]
	}
	for _, s := range order {
		if !board.FindNetwork(s) {
			continue
		}
		m.metrics.AddTerminal()
		if s == side {
			return Best{Score: Win, Depth: depth}, true
		}
		return Best{Score: Loss, Depth: depth}, true
	}
	return Best{}, false
}

func (m *Minimax) isCutoff(depth, budget int) bool {
	if m.depth != 0 {
		return depth == m.depth
	}
	return budget > m.nodeBudget
}

func (m *Minimax) childBudget(moves, budget int) int {
	if m.depth != 0 {
		return budget
	}
	return (moves + 1) * budget
}

func (m *Minimax) leaf(board *game.Board, side game.Side, depth int) Best {
	m.metrics.AddLeaf()
	return Best{Score: m.evaluate(board, side), Depth: depth}
}
