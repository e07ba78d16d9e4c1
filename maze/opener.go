package maze

import "fmt"

// boundaryGap returns the outer wall cell next to the node pos. Corner nodes
// touch two borders; the first match in top, bottom, left, right order wins.
func boundaryGap(rows, cols int, pos Position) (Position, error) {
	if !isNode(pos.Row, pos.Col) || pos.Row > rows-2 || pos.Col > cols-2 {
		return Position{}, fmt.Errorf("%w: %v is not a node", ErrAmbiguousBoundary, pos)
	}

	switch {
	case pos.Row == 1:
		return Position{Row: 0, Col: pos.Col}, nil
	case pos.Row == rows-2:
		return Position{Row: rows - 1, Col: pos.Col}, nil
	case pos.Col == 1:
		return Position{Row: pos.Row, Col: 0}, nil
	case pos.Col == cols-2:
		return Position{Row: pos.Row, Col: cols - 1}, nil
	}
	return Position{}, fmt.Errorf("%w: %v", ErrAmbiguousBoundary, pos)
}

// OpenBoundary opens the outer wall cell next to pos
func OpenBoundary(grid *Grid, pos Position) (Position, error) {
	gap, err := boundaryGap(grid.rows, grid.cols, pos)
	if err != nil {
		return Position{}, err
	}

	if err := grid.Set(gap, Visited); err != nil {
		return Position{}, err
	}
	return gap, nil
}
