package maze

import (
	"fmt"

	"github.com/gammazero/deque"
)

// Nodes are two cells apart; the cell in between is the wall that gets carved
var directions = []Position{
	{Row: -2, Col: 0}, // up
	{Row: 2, Col: 0},  // down
	{Row: 0, Col: -2}, // left
	{Row: 0, Col: 2},  // right
}

// Carver performs the depth-first carve-and-backtrack traversal, one
// decision per Step
type Carver struct {
	grid *Grid
	rng  Source

	current Position
	// Positions pushed when carving forward; popped LIFO when stuck
	stack deque.Deque
}

func NewCarver(grid *Grid, start Position, rng Source) *Carver {
	return &Carver{
		grid:    grid,
		rng:     rng,
		current: start,
	}
}

func (carver *Carver) Current() Position {
	return carver.current
}

// Depth is the size of the backtrack stack
func (carver *Carver) Depth() int {
	return carver.stack.Len()
}

// Done reports whether every interior node has been carved
func (carver *Carver) Done() bool {
	return carver.grid.Count(Unvisited) == 0
}

func (carver *Carver) targets() []Position {
	valid := make([]Position, 0, len(directions))
	for _, delta := range directions {
		target := carver.current.add(delta)
		if carver.grid.InBounds(target) && carver.grid.state(target) == Unvisited {
			valid = append(valid, target)
		}
	}
	return valid
}

// Step carves toward one random unvisited neighbour, or backtracks to the
// previously carved-from node when there is none
func (carver *Carver) Step() (Event, error) {
	if carver.Done() {
		return EventComplete, nil
	}

	if valid := carver.targets(); len(valid) > 0 {
		target := valid[carver.rng.Intn(len(valid))]
		between := Position{
			Row: (carver.current.Row + target.Row) / 2,
			Col: (carver.current.Col + target.Col) / 2,
		}

		if err := carver.grid.Set(target, Visited); err != nil {
			return EventNone, err
		}
		if err := carver.grid.Set(between, Visited); err != nil {
			return EventNone, err
		}

		carver.stack.PushBack(carver.current)
		carver.current = target
		return EventCarve, nil
	}

	if carver.stack.Len() == 0 {
		return EventNone, fmt.Errorf("%w: at %v with %d unvisited", ErrCarverStuck, carver.current, carver.grid.Count(Unvisited))
	}

	carver.current = carver.stack.PopBack().(Position)
	return EventBacktrack, nil
}
