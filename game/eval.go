package game

// Evaluate scores the position for side by comparing how many aligned,
// unobstructed chip pairs each side has. The score lies strictly between -1
// and 1 and grows with side's connectivity.
func (b *Board) Evaluate(side Side) float64 {
	own := float64(b.edgeCount(side))
	other := float64(b.edgeCount(side.Opponent()))
	return (own+1)/(own+other+2)*2 - 1
}

// EvaluateConnectivity is the default Evaluate used by the search.
func EvaluateConnectivity(board *Board, side Side) float64 {
	return board.Evaluate(side)
}

func (b *Board) edgeCount(side Side) int {
	count := 0
	for _, row := range b.connections(side, b.chips[side]) {
		for _, d := range row {
			if d != noDirection {
				count++
			}
		}
	}
	return count
}
