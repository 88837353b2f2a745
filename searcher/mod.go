package searcher

import "math"

const Win = 1.0   // Score of a position where the searching side has a network
const Loss = -Win // Score of a position where the opponent has a network

// Nodes allowed in the adaptive budget before a position is evaluated statically
const DefaultNodeBudget = 500000

// Depth of a Best that has not been resolved by any reply yet
const unresolved = math.MaxInt

type Option func(m *Minimax)

// WithDepth fixes the search to depth plies. Zero selects the adaptive node budget.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth >= 0 {
			m.depth = depth
		}
	}
}

func WithNodeBudget(budget int) Option {
	return func(m *Minimax) {
		if budget > 0 {
			m.nodeBudget = budget
		}
	}
}

// WithGoroutines splits the moves at the root across goroutines, each
// searching its own copy of the board.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}
