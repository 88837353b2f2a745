package player

import (
	"testing"

	"network/game"
	"network/searcher"

	"github.com/stretchr/testify/require"
)

func TestForceMove(t *testing.T) {
	p := NewMachinePlayer(game.Black, 1)

	accepted := []game.Move{
		game.NewPlaceMove(1, 6), game.NewPlaceMove(2, 4), game.NewPlaceMove(2, 1), game.NewPlaceMove(3, 0),
		game.NewPlaceMove(4, 7), game.NewPlaceMove(5, 3), game.NewPlaceMove(5, 2), game.NewPlaceMove(6, 5),
	}
	for _, m := range accepted {
		require.True(t, p.ForceMove(m), "%v should be accepted", m)
	}

	before := p.Board()
	rejected := []game.Move{
		game.NewPlaceMove(1, 2), game.NewPlaceMove(2, 0), game.NewPlaceMove(3, 2), game.NewPlaceMove(3, 1),
		game.NewPlaceMove(6, 4), game.NewPlaceMove(5, 4), game.NewPlaceMove(7, 1), game.NewPlaceMove(0, 5),
	}
	for _, m := range rejected {
		require.False(t, p.ForceMove(m), "%v should be rejected", m)
	}
	require.True(t, before.Equal(p.Board()), "Rejected moves should not change the board")
	require.Equal(t, len(accepted), p.Board().ChipCount(game.Black))
}

func TestOpponentMove(t *testing.T) {
	t.Run("records legal moves for the other side", func(t *testing.T) {
		p := NewMachinePlayer(game.White, 1)

		require.True(t, p.OpponentMove(game.NewPlaceMove(3, 0)), "Black may use row 0")
		require.Equal(t, game.BlackChip, p.Board().Cell(game.Position{X: 3, Y: 0}))
		require.Zero(t, p.Board().ChipCount(game.White))
	})

	t.Run("rejects moves illegal for the other side", func(t *testing.T) {
		p := NewMachinePlayer(game.White, 1)
		require.True(t, p.ForceMove(game.NewPlaceMove(0, 3)), "White may use column 0")
		before := p.Board()

		require.False(t, p.OpponentMove(game.NewPlaceMove(0, 4)), "Black may not use column 0")
		require.False(t, p.OpponentMove(game.NewPlaceMove(0, 3)), "Cell is occupied")
		require.False(t, p.OpponentMove(game.NewRelocateMove(3, 3, 0, 3)), "Black has no chip to move")
		require.True(t, before.Equal(p.Board()))
	})
}

func TestChooseMove(t *testing.T) {
	t.Run("completes a network", func(t *testing.T) {
		p := NewMachinePlayer(game.Black, 1, searcher.WithMetrics())
		for _, m := range []game.Move{
			game.NewPlaceMove(1, 3), game.NewPlaceMove(2, 0), game.NewPlaceMove(2, 5),
			game.NewPlaceMove(3, 3), game.NewPlaceMove(3, 5), game.NewPlaceMove(4, 2),
			game.NewPlaceMove(5, 7), game.NewPlaceMove(6, 0), game.NewPlaceMove(6, 5),
		} {
			require.True(t, p.ForceMove(m), "%v should be accepted", m)
		}
		require.False(t, p.Board().FindNetwork(game.Black))

		move := p.ChooseMove()

		require.Equal(t, game.NewPlaceMove(1, 1), move)
		require.True(t, p.Board().FindNetwork(game.Black), "Chosen move should be recorded on the board")
		require.Positive(t, p.LastMetric().Nodes)
	})

	t.Run("replies to the opponent", func(t *testing.T) {
		p := NewMachinePlayer(game.White, 2)
		for _, m := range []game.Move{game.NewPlaceMove(0, 2), game.NewPlaceMove(3, 3), game.NewPlaceMove(5, 4)} {
			require.True(t, p.ForceMove(m))
		}
		for _, m := range []game.Move{game.NewPlaceMove(2, 1), game.NewPlaceMove(4, 6), game.NewPlaceMove(3, 5)} {
			require.True(t, p.OpponentMove(m))
		}

		move := p.ChooseMove()

		require.Equal(t, game.NewPlaceMove(2, 4), move)
		require.Equal(t, 4, p.Board().ChipCount(game.White))
	})

	t.Run("quits when the game is decided", func(t *testing.T) {
		p := NewMachinePlayer(game.Black, 1)
		for _, m := range []game.Move{
			game.NewPlaceMove(3, 2), game.NewPlaceMove(1, 0), game.NewPlaceMove(1, 4),
			game.NewPlaceMove(6, 2), game.NewPlaceMove(5, 7), game.NewPlaceMove(5, 1),
		} {
			require.True(t, p.ForceMove(m))
		}
		before := p.Board()

		move := p.ChooseMove()

		require.Equal(t, game.QuitMove, move.Kind)
		require.True(t, before.Equal(p.Board()))
	})
}

func TestRandomPlayer(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		p := NewRandomPlayer(game.White, 42)
		referee := game.NewBoard()

		for i := 0; i < game.MaxChips+3; i++ {
			move := p.ChooseMove()
			require.True(t, referee.IsLegal(move, game.White), "%v should be legal", move)
			referee.Apply(move, game.White)
		}
		require.Equal(t, game.MaxChips, referee.ChipCount(game.White))
	})

	t.Run("same seed replays the same game", func(t *testing.T) {
		a := NewRandomPlayer(game.Black, 7)
		b := NewRandomPlayer(game.Black, 7)

		for i := 0; i < 5; i++ {
			require.Equal(t, a.ChooseMove(), b.ChooseMove())
		}
	})

	t.Run("tracks opponent moves", func(t *testing.T) {
		p := NewRandomPlayer(game.Black, 1)

		require.True(t, p.OpponentMove(game.NewPlaceMove(0, 3)))
		require.False(t, p.OpponentMove(game.NewPlaceMove(3, 0)), "White may not use row 0")
	})
}
