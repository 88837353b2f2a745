package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Cell is the content of a single board square.
type Cell int8

const (
	Empty   Cell = iota
	Blocked      // Corner squares can never hold a chip
	BlackChip
	WhiteChip
)

func chipOf(side Side) Cell {
	if side == Black {
		return BlackChip
	}
	return WhiteChip
}

// Board is the shared mutable position walked by the search. Cells and the
// per-side chip collections only change through Apply and Undo, so a cell
// holds a side's chip exactly when the position is in that side's collection.
type Board struct {
	cells [Size][Size]Cell // Indexed by [x][y]
	chips [2][]Position    // Per side, in placement order
}

func NewBoard() *Board {
	b := &Board{}
	b.cells[0][0] = Blocked
	b.cells[Size-1][0] = Blocked
	b.cells[0][Size-1] = Blocked
	b.cells[Size-1][Size-1] = Blocked
	b.chips[Black] = make([]Position, 0, MaxChips)
	b.chips[White] = make([]Position, 0, MaxChips)
	return b
}

// Cell returns the content at p, treating out of range positions as blocked.
func (b *Board) Cell(p Position) Cell {
	if !p.InBounds() {
		return Blocked
	}
	return b.cells[p.X][p.Y]
}

// Chips returns a copy of side's chip positions in collection order.
func (b *Board) Chips(side Side) []Position {
	return slices.Clone(b.chips[side])
}

func (b *Board) ChipCount(side Side) int {
	return len(b.chips[side])
}

func (b *Board) Copy() *Board {
	c := &Board{cells: b.cells}
	for side := range b.chips {
		c.chips[side] = make([]Position, len(b.chips[side]), MaxChips)
		copy(c.chips[side], b.chips[side])
	}
	return c
}

// Equal reports whether both boards have the same cells and chip collections.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells &&
		slices.Equal(b.chips[Black], other.chips[Black]) &&
		slices.Equal(b.chips[White], other.chips[White])
}

// IsLegal reports whether side may play m. The board is temporarily modified
// to check for clusters and always restored before returning.
func (b *Board) IsLegal(m Move, side Side) bool {
	to := m.To
	if !to.InBounds() || b.cells[to.X][to.Y] != Empty {
		return false
	}
	// Each side is kept out of the other side's goal edges
	if side == Black && (to.X == 0 || to.X == Size-1) {
		return false
	}
	if side == White && (to.Y == 0 || to.Y == Size-1) {
		return false
	}

	own := chipOf(side)
	count := len(b.chips[side])
	switch m.Kind {
	case PlaceMove:
		if count >= MaxChips {
			return false
		}
		b.cells[to.X][to.Y] = own
		ok := b.checkCluster(to, own)
		b.cells[to.X][to.Y] = Empty
		return ok
	case RelocateMove:
		from := m.From
		if count < MaxChips || !from.InBounds() || b.cells[from.X][from.Y] != own {
			return false
		}
		b.cells[from.X][from.Y] = Empty
		b.cells[to.X][to.Y] = own
		ok := b.checkCluster(to, own)
		b.cells[to.X][to.Y] = Empty
		b.cells[from.X][from.Y] = own
		return ok
	default:
		return false
	}
}

// checkCluster explores same-side chips connected to origin breadth first and
// fails as soon as a third chip joins the group.
func (b *Board) checkCluster(origin Position, cell Cell) bool {
	var cluster [3]Position
	cluster[0] = origin
	front, rear := 0, 0
	for front <= rear {
		for _, d := range directions {
			p := Position{X: cluster[front].X + d.X, Y: cluster[front].Y + d.Y}
			if !p.InBounds() || p == origin || b.cells[p.X][p.Y] != cell {
				continue
			}
			rear++
			if rear == 2 {
				return false
			}
			cluster[rear] = p
		}
		front++
	}
	return true
}

// Apply plays m for side without checking legality.
func (b *Board) Apply(m Move, side Side) {
	to := m.To
	if b.cells[to.X][to.Y] != Empty {
		panic(fmt.Sprintf("apply %v: destination is not empty", m))
	}
	own := chipOf(side)
	b.cells[to.X][to.Y] = own
	switch m.Kind {
	case PlaceMove:
		b.chips[side] = append(b.chips[side], to)
	case RelocateMove:
		from := m.From
		i := slices.Index(b.chips[side], from)
		if i < 0 {
			panic(fmt.Sprintf("apply %v: %s has no chip at %v", m, side, from))
		}
		b.cells[from.X][from.Y] = Empty
		b.chips[side][i] = to
	default:
		panic(fmt.Sprintf("apply %v: unexpected move kind", m))
	}
}

// Undo reverts a previous Apply of m for side, restoring collection order.
func (b *Board) Undo(m Move, side Side) {
	to := m.To
	own := chipOf(side)
	i := slices.Index(b.chips[side], to)
	if !to.InBounds() || b.cells[to.X][to.Y] != own || i < 0 {
		panic(fmt.Sprintf("undo %v: %s has no chip at %v", m, side, to))
	}
	b.cells[to.X][to.Y] = Empty
	switch m.Kind {
	case PlaceMove:
		b.chips[side] = slices.Delete(b.chips[side], i, i+1)
	case RelocateMove:
		from := m.From
		b.cells[from.X][from.Y] = own
		b.chips[side][i] = from
	default:
		panic(fmt.Sprintf("undo %v: unexpected move kind", m))
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Black: %d   White: %d\n", len(b.chips[Black]), len(b.chips[White]))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			switch b.cells[x][y] {
			case BlackChip:
				sb.WriteString("B ")
			case WhiteChip:
				sb.WriteString("W ")
			case Blocked:
				sb.WriteString("# ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
