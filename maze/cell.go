package maze

import "fmt"

type CellState int

const (
	Wall CellState = iota
	Unvisited
	Start
	Visited
	End
)

var CellStates = []CellState{
	Wall,
	Unvisited,
	Start,
	Visited,
	End,
}

var cellSymbols = map[CellState]rune{
	Wall:      '#',
	Unvisited: '?',
	Start:     'S',
	Visited:   '.',
	End:       'E',
}

func (state CellState) String() string {
	switch state {
	case Wall:
		return "wall"
	case Unvisited:
		return "unvisited"
	case Start:
		return "start"
	case Visited:
		return "visited"
	case End:
		return "end"
	default:
		return fmt.Sprintf("CellState(%d)", int(state))
	}
}

// Symbol is the single character used for the state in text boards
func (state CellState) Symbol() rune {
	if symbol, ok := cellSymbols[state]; ok {
		return symbol
	}
	return '!'
}

// IsOpen reports whether the cell has been carved into the path structure
func (state CellState) IsOpen() bool {
	return state == Start || state == Visited || state == End
}

func parseSymbol(symbol rune) (CellState, bool) {
	for state, s := range cellSymbols {
		if s == symbol {
			return state, true
		}
	}
	return Wall, false
}

// Position is a (row, col) grid index
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row, pos.Col)
}

func (pos Position) add(delta Position) Position {
	return Position{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
}

func (pos Position) less(other Position) bool {
	if pos.Row != other.Row {
		return pos.Row < other.Row
	}
	return pos.Col < other.Col
}

func (pos Position) manhattan(other Position) int {
	return abs(pos.Row-other.Row) + abs(pos.Col-other.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
