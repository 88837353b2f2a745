package player

import (
	"network/experiments/metrics"
	"network/game"
	"network/searcher"

	"github.com/rs/zerolog/log"
)

// MachinePlayer is an automatic Network player. It keeps track of the moves
// of both sides on its own board and searches that board to pick its moves.
type MachinePlayer struct {
	side     game.Side
	board    *game.Board
	searcher *searcher.Minimax
	metric   metrics.SearchMetric
}

// NewMachinePlayer creates a player for side. A searchDepth of 0 bounds the
// search by the adaptive node budget instead of a fixed number of plies.
func NewMachinePlayer(side game.Side, searchDepth int, options ...searcher.Option) *MachinePlayer {
	options = append([]searcher.Option{searcher.WithDepth(searchDepth)}, options...)
	return &MachinePlayer{
		side:     side,
		board:    game.NewBoard(),
		searcher: searcher.NewMinimax(options...),
	}
}

func (p *MachinePlayer) Side() game.Side {
	return p.side
}

// Board returns a copy of the player's view of the game.
func (p *MachinePlayer) Board() *game.Board {
	return p.board.Copy()
}

// LastMetric returns the metrics of the most recent ChooseMove search.
func (p *MachinePlayer) LastMetric() metrics.SearchMetric {
	return p.metric
}

// ChooseMove picks a move for this player and records it on the board. A
// quit move is returned when there is nothing to play.
func (p *MachinePlayer) ChooseMove() game.Move {
	best, metric := p.searcher.Search(p.board, p.side)
	p.metric = metric

	if best.Move.Kind == game.QuitMove {
		log.Warn().Msgf("%s has no move to play", p.side)
		return game.NewQuitMove()
	}
	p.board.Apply(best.Move, p.side)
	return best.Move
}

// OpponentMove records m as the opponent's move if it is legal. An illegal
// move is rejected without changing the board.
func (p *MachinePlayer) OpponentMove(m game.Move) bool {
	return p.record(m, p.side.Opponent())
}

// ForceMove records m as this player's move if it is legal. It is used to set
// up positions for the player to solve.
func (p *MachinePlayer) ForceMove(m game.Move) bool {
	return p.record(m, p.side)
}

func (p *MachinePlayer) record(m game.Move, side game.Side) bool {
	if !p.board.IsLegal(m, side) {
		log.Debug().Msgf("rejected illegal %s move %v", side, m)
		return false
	}
	p.board.Apply(m, side)
	return true
}
