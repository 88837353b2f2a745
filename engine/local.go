package engine

import (
	"fmt"
	"time"

	"network/experiments/metrics"
	"network/game"
	"network/meta"

	"github.com/rs/zerolog/log"
)

// LocalEngine referees a game between two in-process players. White moves first.
type LocalEngine struct {
	Board    *game.Board
	players  [2]Player
	maxMoves int
}

func NewLocalEngine(white, black Player, maxMoves int) *LocalEngine {
	if white.Side() != game.White || black.Side() != game.Black {
		panic(fmt.Sprintf("players have sides %s and %s, want white and black", white.Side(), black.Side()))
	}
	if maxMoves <= 0 {
		maxMoves = meta.MaxMoves
	}

	e := &LocalEngine{
		Board:    game.NewBoard(),
		maxMoves: maxMoves,
	}
	e.players[game.White] = white
	e.players[game.Black] = black
	return e
}

// Run executes the game loop until a side wins or the move limit is reached.
// ok is false when the game ends without a winner.
func (e *LocalEngine) Run() (game.Side, bool, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: game.White.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", game.White)

	winner, ok := game.White, false
	side := game.White
	for step := 1; step <= e.maxMoves; step++ {
		mover := e.players[side]
		move := mover.ChooseMove()
		gameMetric.TotalMoves = step

		moveMetric := metrics.MoveMetric{Step: step, Player: side.String()}
		if metered, isMetered := mover.(Metered); isMetered {
			moveMetric.SearchMetric = metered.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		if !e.Board.IsLegal(move, side) {
			log.Info().Msgf("%s forfeits with move %v", side, move)
			winner, ok = side.Opponent(), true
			break
		}
		e.Board.Apply(move, side)
		log.Debug().Msgf("move %d: %s plays %v", step, side, move)

		if w, decided := e.decide(side); decided {
			winner, ok = w, true
			break
		}

		if !e.players[side.Opponent()].OpponentMove(move) {
			log.Error().Msgf("%s rejected %s move %v accepted by the referee", side.Opponent(), side, move)
			break
		}
		side = side.Opponent()
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	if ok {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("game over after %d moves without a winner", gameMetric.TotalMoves)
	}
	return winner, ok, gameMetric, moveMetrics
}

// decide checks for networks after mover's move. A move that completes
// networks for both sides loses.
func (e *LocalEngine) decide(mover game.Side) (game.Side, bool) {
	own := e.Board.FindNetwork(mover)
	other := e.Board.FindNetwork(mover.Opponent())
	switch {
	case other:
		return mover.Opponent(), true
	case own:
		return mover, true
	default:
		return mover, false
	}
}
