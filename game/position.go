package game

import "fmt"

// Position is a board coordinate, compared by value.
type Position struct {
	X int
	Y int
}

func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
