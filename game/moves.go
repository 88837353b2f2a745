package game

// LegalMoves lists every legal move of side. Destinations are scanned column
// by column (x outer, y inner) and, for relocations, sources in chip
// collection order. Move selection breaks ties by this order.
func (b *Board) LegalMoves(side Side) []Move {
	chips := b.Chips(side)

	if len(chips) < MaxChips {
		moves := make([]Move, 0, Size*Size)
		for x := 0; x < Size; x++ {
			for y := 0; y < Size; y++ {
				m := NewPlaceMove(x, y)
				if b.IsLegal(m, side) {
					moves = append(moves, m)
				}
			}
		}
		return moves
	}

	moves := make([]Move, 0, len(chips)*Size*Size/2)
	for _, chip := range chips {
		for x := 0; x < Size; x++ {
			for y := 0; y < Size; y++ {
				m := NewRelocateMove(x, y, chip.X, chip.Y)
				if b.IsLegal(m, side) {
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}
