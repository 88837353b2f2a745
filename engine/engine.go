package engine

import (
	"network/experiments/metrics"
	"network/game"
)

// Player is one side of a game driven by an Engine.
type Player interface {
	Side() game.Side
	// ChooseMove returns the player's next move and records it on its own board
	ChooseMove() game.Move
	// OpponentMove informs the player of the other side's move
	OpponentMove(game.Move) bool
}

// Metered is implemented by players that report how they searched for their last move.
type Metered interface {
	LastMetric() metrics.SearchMetric
}

type Engine interface {
	// Run plays a game till a side wins or a max number of moves is reached
	Run() (winner game.Side, ok bool, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Engine = (*LocalEngine)(nil)
