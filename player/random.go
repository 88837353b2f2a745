package player

import (
	"network/game"

	"golang.org/x/exp/rand"
)

// RandomPlayer plays a uniformly random legal move. It serves as a baseline
// opponent in experiments.
type RandomPlayer struct {
	side  game.Side
	board *game.Board
	rng   *rand.Rand
}

func NewRandomPlayer(side game.Side, seed uint64) *RandomPlayer {
	return &RandomPlayer{
		side:  side,
		board: game.NewBoard(),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPlayer) Side() game.Side {
	return p.side
}

func (p *RandomPlayer) ChooseMove() game.Move {
	moves := p.board.LegalMoves(p.side)
	if len(moves) == 0 {
		return game.NewQuitMove()
	}
	move := moves[p.rng.Intn(len(moves))]
	p.board.Apply(move, p.side)
	return move
}

func (p *RandomPlayer) OpponentMove(m game.Move) bool {
	if !p.board.IsLegal(m, p.side.Opponent()) {
		return false
	}
	p.board.Apply(m, p.side.Opponent())
	return true
}
