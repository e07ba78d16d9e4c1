package maze

import (
	"fmt"

	"github.com/gammazero/deque"
)

type NeighborGetter func(Position) []Position
type Visitor func(Position)

// flood visits every node reachable from origin, breadth first
func flood(origin Position, visit Visitor, getNeighbors NeighborGetter) {
	visited := map[Position]struct{}{origin: {}}
	var queue deque.Deque
	queue.PushBack(origin)

	for queue.Len() > 0 {
		pos := queue.PopFront().(Position)
		visit(pos)

		for _, neighbor := range getNeighbors(pos) {
			// Don't visit, if already visited
			if _, alreadyVisited := visited[neighbor]; alreadyVisited {
				continue
			}
			visited[neighbor] = struct{}{}
			queue.PushBack(neighbor)
		}
	}
}

// passages returns the nodes joined to pos by a carved wall cell
func (snapshot Snapshot) passages(pos Position) []Position {
	var linked []Position
	for _, delta := range directions {
		target := pos.add(delta)
		if target.Row <= 0 || target.Col <= 0 || target.Row >= snapshot.rows-1 || target.Col >= snapshot.cols-1 {
			continue
		}
		between := Position{Row: pos.Row + delta.Row/2, Col: pos.Col + delta.Col/2}
		if snapshot.At(between).IsOpen() && snapshot.At(target).IsOpen() {
			linked = append(linked, target)
		}
	}
	return linked
}

func (snapshot Snapshot) borderGaps() int {
	gaps := 0
	for i, cell := range snapshot.cells {
		row, col := i/snapshot.cols, i%snapshot.cols
		onBorder := row == 0 || col == 0 || row == snapshot.rows-1 || col == snapshot.cols-1
		if onBorder && cell.IsOpen() {
			gaps++
		}
	}
	return gaps
}

// Verify checks that a finished snapshot is a perfect maze: one start and one
// end on the boundary, each with its own opening in the outer wall, no node
// left unvisited, and carved passages forming a spanning tree over the nodes.
func Verify(snapshot Snapshot) error {
	if snapshot.rows < minDimension || snapshot.cols < minDimension || snapshot.rows%2 == 0 || snapshot.cols%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, snapshot.rows, snapshot.cols)
	}

	if n := snapshot.Count(Unvisited); n != 0 {
		return fmt.Errorf("%w: %d unvisited cells", ErrNotPerfect, n)
	}

	starts := snapshot.Find(Start)
	if len(starts) != 1 {
		return fmt.Errorf("%w: %d start cells", ErrNotPerfect, len(starts))
	}
	ends := snapshot.Find(End)
	if len(ends) != 1 {
		return fmt.Errorf("%w: %d end cells", ErrNotPerfect, len(ends))
	}

	edges := 0
	for row := 1; row < snapshot.rows-1; row++ {
		for col := 1; col < snapshot.cols-1; col++ {
			pos := Position{Row: row, Col: col}
			if isNode(row, col) {
				if !snapshot.At(pos).IsOpen() {
					return fmt.Errorf("%w: node %v is %v", ErrNotPerfect, pos, snapshot.At(pos))
				}
				continue
			}
			if row%2 == 0 && col%2 == 0 {
				if snapshot.At(pos).IsOpen() {
					return fmt.Errorf("%w: pillar %v is open", ErrNotPerfect, pos)
				}
				continue
			}
			if snapshot.At(pos).IsOpen() {
				edges++
			}
		}
	}

	if gaps := snapshot.borderGaps(); gaps != 2 {
		return fmt.Errorf("%w: %d openings in the outer wall", ErrNotPerfect, gaps)
	}
	for _, pos := range []Position{starts[0], ends[0]} {
		gap, err := boundaryGap(snapshot.rows, snapshot.cols, pos)
		if err != nil {
			return fmt.Errorf("%w: %v is not a boundary candidate", ErrNotPerfect, pos)
		}
		if !snapshot.At(gap).IsOpen() {
			return fmt.Errorf("%w: wall %v beside %v is closed", ErrNotPerfect, gap, snapshot.At(pos))
		}
	}

	nodes := numNodes(snapshot.rows, snapshot.cols)
	reached := 0
	flood(starts[0], func(Position) { reached++ }, snapshot.passages)

	if reached != nodes {
		return fmt.Errorf("%w: reached %d of %d nodes from start", ErrNotPerfect, reached, nodes)
	}
	if edges != nodes-1 {
		return fmt.Errorf("%w: %d passages for %d nodes", ErrNotPerfect, edges, nodes)
	}
	return nil
}
