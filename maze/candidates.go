package maze

import (
	"fmt"

	"github.com/they4kman/mazegen/util/collections"
)

type EndStrategy int

const (
	// RandomEnd draws the end uniformly from the remaining candidates
	RandomEnd EndStrategy = iota
	// FarthestEnd picks the candidate farthest (Manhattan) from the start
	FarthestEnd
)

var endStrategies = map[string]EndStrategy{
	"random":   RandomEnd,
	"farthest": FarthestEnd,
}

func ParseEndStrategy(name string) (EndStrategy, error) {
	if strategy, ok := endStrategies[name]; ok {
		return strategy, nil
	}
	return RandomEnd, fmt.Errorf("invalid end strategy %q", name)
}

func (strategy EndStrategy) String() string {
	for name, s := range endStrategies {
		if s == strategy {
			return name
		}
	}
	return fmt.Sprint(int(strategy))
}

// BoundaryCandidates returns the nodes one step inside the outer wall. Corner
// nodes show up in both the row and column families and are kept once.
func BoundaryCandidates(grid *Grid) collections.Set[Position] {
	rowCandidates := collections.NewSet[Position]()
	for col := 1; col < grid.cols-1; col += 2 {
		rowCandidates.Add(Position{Row: 1, Col: col})
		rowCandidates.Add(Position{Row: grid.rows - 2, Col: col})
	}

	colCandidates := collections.NewSet[Position]()
	for row := 1; row < grid.rows-1; row += 2 {
		colCandidates.Add(Position{Row: row, Col: 1})
		colCandidates.Add(Position{Row: row, Col: grid.cols - 2})
	}

	return rowCandidates.Union(colCandidates)
}

func sortedCandidates(candidates collections.Set[Position]) []Position {
	return candidates.Sorted(Position.less)
}

// ChooseStart draws a start among the boundary candidates and marks it
func ChooseStart(grid *Grid, rng Source) (Position, error) {
	candidates := sortedCandidates(BoundaryCandidates(grid))
	if len(candidates) == 0 {
		return Position{}, ErrNoCandidateAvailable
	}

	start := candidates[rng.Intn(len(candidates))]
	if err := grid.Set(start, Start); err != nil {
		return Position{}, err
	}
	return start, nil
}

func endCandidates(grid *Grid, start Position) []Position {
	candidates := BoundaryCandidates(grid)
	candidates.Remove(start)
	for pos := range candidates {
		if grid.state(pos) == End {
			candidates.Remove(pos)
		}
	}
	return sortedCandidates(candidates)
}

// ChooseEnd draws an end among the boundary candidates, excluding the start
// position and any cell already marked End, and marks it
func ChooseEnd(grid *Grid, start Position, rng Source) (Position, error) {
	candidates := endCandidates(grid, start)
	if len(candidates) == 0 {
		return Position{}, fmt.Errorf("%w: start %v", ErrNoCandidateAvailable, start)
	}

	end := candidates[rng.Intn(len(candidates))]
	if err := grid.Set(end, End); err != nil {
		return Position{}, err
	}
	return end, nil
}

// ChooseFarthestEnd marks the candidate with the greatest Manhattan distance
// from start. Ties go to the first candidate in row-major order.
func ChooseFarthestEnd(grid *Grid, start Position) (Position, error) {
	candidates := endCandidates(grid, start)
	if len(candidates) == 0 {
		return Position{}, fmt.Errorf("%w: start %v", ErrNoCandidateAvailable, start)
	}

	end := candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.manhattan(start) > end.manhattan(start) {
			end = candidate
		}
	}

	if err := grid.Set(end, End); err != nil {
		return Position{}, err
	}
	return end, nil
}
