package maze

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of a grid at one point of the generation
type Snapshot struct {
	rows, cols int
	cells      []CellState
}

func (snapshot Snapshot) Rows() int {
	return snapshot.rows
}

func (snapshot Snapshot) Cols() int {
	return snapshot.cols
}

// At returns the state at pos, or Wall for positions outside the grid
func (snapshot Snapshot) At(pos Position) CellState {
	if pos.Row < 0 || pos.Col < 0 || pos.Row >= snapshot.rows || pos.Col >= snapshot.cols {
		return Wall
	}
	return snapshot.cells[pos.Row*snapshot.cols+pos.Col]
}

func (snapshot Snapshot) Count(state CellState) int {
	count := 0
	for _, cell := range snapshot.cells {
		if cell == state {
			count++
		}
	}
	return count
}

// Find returns the positions holding state, in row-major order
func (snapshot Snapshot) Find(state CellState) []Position {
	var found []Position
	for i, cell := range snapshot.cells {
		if cell == state {
			found = append(found, Position{Row: i / snapshot.cols, Col: i % snapshot.cols})
		}
	}
	return found
}

func (snapshot Snapshot) Equal(other Snapshot) bool {
	if snapshot.rows != other.rows || snapshot.cols != other.cols {
		return false
	}
	for i := range snapshot.cells {
		if snapshot.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Lines returns one string per row, one symbol per cell
func (snapshot Snapshot) Lines() []string {
	lines := make([]string, snapshot.rows)
	for row := 0; row < snapshot.rows; row++ {
		line := strings.Builder{}
		for _, cell := range snapshot.cells[row*snapshot.cols : (row+1)*snapshot.cols] {
			line.WriteRune(cell.Symbol())
		}
		lines[row] = line.String()
	}
	return lines
}

func (snapshot Snapshot) String() string {
	return strings.Join(snapshot.Lines(), "\n")
}

// ParseSnapshot reads the text form produced by Snapshot.String
func ParseSnapshot(board string) (Snapshot, error) {
	lines := strings.Split(strings.TrimRight(board, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return Snapshot{}, fmt.Errorf("%w: empty board", ErrMalformedRecord)
	}

	rows, cols := len(lines), len([]rune(lines[0]))
	cells := make([]CellState, 0, rows*cols)

	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return Snapshot{}, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedRecord, y, len(runes), cols)
		}

		for x, c := range runes {
			state, ok := parseSymbol(c)
			if !ok {
				return Snapshot{}, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrMalformedRecord, c, y, x)
			}
			cells = append(cells, state)
		}
	}

	return Snapshot{rows: rows, cols: cols, cells: cells}, nil
}
