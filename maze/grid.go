package maze

import "fmt"

const minDimension = 5

// Grid owns the cells of a single maze. Interior nodes sit at odd (row, col)
// positions and are separated by wall cells at even indexes.
type Grid struct {
	rows, cols int
	cells      [][]CellState

	counts map[CellState]int
}

func NewGrid(rows, cols int) (*Grid, error) {
	if rows < minDimension || cols < minDimension || rows%2 == 0 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}

	grid := &Grid{
		rows:   rows,
		cols:   cols,
		cells:  make([][]CellState, rows),
		counts: make(map[CellState]int, len(CellStates)),
	}

	for row := 0; row < rows; row++ {
		grid.cells[row] = make([]CellState, cols)

		for col := 0; col < cols; col++ {
			state := Wall
			if isNode(row, col) && row < rows-1 && col < cols-1 {
				state = Unvisited
			}
			grid.cells[row][col] = state
			grid.counts[state]++
		}
	}

	return grid, nil
}

func isNode(row, col int) bool {
	return row%2 == 1 && col%2 == 1
}

func (grid *Grid) Rows() int {
	return grid.rows
}

func (grid *Grid) Cols() int {
	return grid.cols
}

func (grid *Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Col >= 0 && pos.Row < grid.rows && pos.Col < grid.cols
}

func (grid *Grid) Get(pos Position) (CellState, error) {
	if !grid.InBounds(pos) {
		return Wall, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, pos, grid.rows, grid.cols)
	}
	return grid.cells[pos.Row][pos.Col], nil
}

// Set overwrites the cell unconditionally. Keeping states moving forward is
// up to the caller.
func (grid *Grid) Set(pos Position, state CellState) error {
	if !grid.InBounds(pos) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, pos, grid.rows, grid.cols)
	}

	previous := grid.cells[pos.Row][pos.Col]
	if previous != state {
		grid.cells[pos.Row][pos.Col] = state
		grid.counts[previous]--
		grid.counts[state]++
	}
	return nil
}

// Count returns how many cells currently hold state
func (grid *Grid) Count(state CellState) int {
	return grid.counts[state]
}

// NumNodes returns the number of interior nodes, i.e. cells that started out
// Unvisited
func (grid *Grid) NumNodes() int {
	return numNodes(grid.rows, grid.cols)
}

func numNodes(rows, cols int) int {
	return ((rows - 1) / 2) * ((cols - 1) / 2)
}

func (grid *Grid) Snapshot() Snapshot {
	cells := make([]CellState, 0, grid.rows*grid.cols)
	for _, row := range grid.cells {
		cells = append(cells, row...)
	}
	return Snapshot{rows: grid.rows, cols: grid.cols, cells: cells}
}

func (grid *Grid) state(pos Position) CellState {
	return grid.cells[pos.Row][pos.Col]
}
