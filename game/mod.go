package game

const (
	Size             = 8  // Board is Size x Size
	MaxChips         = 10 // Chips per side before only relocations are allowed
	MinNetworkLength = 6  // Fewest chips a network can be made of
)

// Evaluates the board to a score between -1 and 1 indicating how favorable
// the position is for side.
type Evaluate func(board *Board, side Side) float64
