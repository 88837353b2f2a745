package game

import "fmt"

// MoveKind represents the type of move a player can perform.
type MoveKind int

const (
	QuitMove     MoveKind = iota // Resign, returned when no move is available
	PlaceMove                    // Add a new chip
	RelocateMove                 // Step an existing chip to another cell
)

// Move represents a move in the game. From is only set for relocations.
type Move struct {
	Kind MoveKind
	To   Position
	From Position
}

func NewPlaceMove(x, y int) Move {
	return Move{Kind: PlaceMove, To: Position{X: x, Y: y}}
}

func NewRelocateMove(toX, toY, fromX, fromY int) Move {
	return Move{
		Kind: RelocateMove,
		To:   Position{X: toX, Y: toY},
		From: Position{X: fromX, Y: fromY},
	}
}

func NewQuitMove() Move {
	return Move{Kind: QuitMove}
}

func (m Move) String() string {
	switch m.Kind {
	case PlaceMove:
		return fmt.Sprintf("[place %d%d]", m.To.X, m.To.Y)
	case RelocateMove:
		return fmt.Sprintf("[step %d%d %d%d]", m.To.X, m.To.Y, m.From.X, m.From.Y)
	default:
		return "[quit]"
	}
}
