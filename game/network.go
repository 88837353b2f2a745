package game

// Compass directions, indexed by the values stored in a connection matrix.
var directions = [8]Position{
	{X: -1, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1}, {X: 0, Y: -1},
	{X: 0, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
}

const noDirection = -1

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// direction returns the index of the compass direction leading from a to b,
// or noDirection when they are not aligned or another chip lies between them.
func (b *Board) direction(from, to Position) int {
	dx, dy := to.X-from.X, to.Y-from.Y
	if dx != 0 && dy != 0 && dx != dy && dx != -dy {
		return noDirection
	}

	step := Position{X: sign(dx), Y: sign(dy)}
	d := noDirection
	for i, dir := range directions {
		if dir == step {
			d = i
			break
		}
	}
	if d == noDirection { // Same square
		return noDirection
	}

	x, y := from.X+step.X, from.Y+step.Y
	for x != to.X || y != to.Y {
		if b.cells[x][y] != Empty {
			return noDirection
		}
		x += step.X
		y += step.Y
	}
	return d
}

// connections builds the directed connection matrix of chips: entry [i][j]
// holds the direction from chips[i] to chips[j], or noDirection. Pairs lying
// together on one of side's goal edges are never connected.
func (b *Board) connections(side Side, chips []Position) [][]int {
	conn := make([][]int, len(chips))
	for i := range chips {
		conn[i] = make([]int, len(chips))
		for j := range chips {
			conn[i][j] = noDirection
			if i == j || onSameGoalEdge(side, chips[i], chips[j]) {
				continue
			}
			conn[i][j] = b.direction(chips[i], chips[j])
		}
	}
	return conn
}

func onSameGoalEdge(side Side, a, c Position) bool {
	sum := a.X + c.X
	if side == Black {
		sum = a.Y + c.Y
	}
	return sum == 0 || sum == 2*(Size-1)
}

func isStartEdge(side Side, p Position) bool {
	if side == Black {
		return p.Y == 0
	}
	return p.X == 0
}

func isEndEdge(side Side, p Position) bool {
	if side == Black {
		return p.Y == Size-1
	}
	return p.X == Size-1
}

type networkSearch struct {
	side    Side
	chips   []Position
	conn    [][]int
	visited []bool
}

// FindNetwork reports whether side's chips form a network: a path of at least
// MinNetworkLength chips from its start goal edge to its end goal edge that
// changes direction at every chip.
func (b *Board) FindNetwork(side Side) bool {
	if len(b.chips[side]) < MinNetworkLength {
		return false
	}

	chips := b.chips[side]
	s := networkSearch{
		side:    side,
		chips:   chips,
		conn:    b.connections(side, chips),
		visited: make([]bool, len(chips)),
	}
	for i, chip := range chips {
		if !isStartEdge(side, chip) {
			continue
		}
		s.visited[i] = true
		if s.extend(i, 1, noDirection) {
			return true
		}
		s.visited[i] = false
	}
	return false
}

// extend continues the path ending at chip cur, which holds length chips and
// was entered in direction prev.
func (s *networkSearch) extend(cur, length, prev int) bool {
	if isEndEdge(s.side, s.chips[cur]) && length >= MinNetworkLength {
		return true
	}

	for next, d := range s.conn[cur] {
		if d == noDirection || d == prev || s.visited[next] {
			continue
		}
		// Chips on column 0 or row 0 never continue a path, whichever side
		// is searching. Chips on the end edge may still be passed through.
		if p := s.chips[next]; p.X == 0 || p.Y == 0 {
			continue
		}
		s.visited[next] = true
		if s.extend(next, length+1, d) {
			return true
		}
		s.visited[next] = false
	}
	return false
}
