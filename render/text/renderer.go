// Package text draws maze snapshots as plain or ANSI-coloured text.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/mazegen/maze"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"

	clearScreen = "\033[H\033[2J"
)

var blocks = map[maze.CellState]string{
	maze.Wall:      "██",
	maze.Unvisited: "░░",
	maze.Start:     "SS",
	maze.Visited:   "  ",
	maze.End:       "EE",
}

var colors = map[maze.CellState]string{
	maze.Unvisited: colorCyan,
	maze.Start:     colorGreen,
	maze.End:       colorRed,
}

// Renderer writes each snapshot to Out. With Redraw set, the terminal is
// cleared first so successive snapshots animate in place.
type Renderer struct {
	Out    io.Writer
	Color  bool
	Redraw bool
	// Blocks draws two-character blocks instead of one symbol per cell
	Blocks bool

	err error
}

func New(out io.Writer) *Renderer {
	return &Renderer{Out: out}
}

// Err returns the first write error, if any. Render itself never fails so
// the generator is not held up by a broken terminal.
func (renderer *Renderer) Err() error {
	return renderer.err
}

func (renderer *Renderer) Render(snapshot maze.Snapshot) {
	if renderer.err != nil {
		return
	}

	out := strings.Builder{}
	if renderer.Redraw {
		out.WriteString(clearScreen)
	}
	out.WriteString(renderer.Format(snapshot))
	out.WriteString("\n")

	if _, err := io.WriteString(renderer.Out, out.String()); err != nil {
		renderer.err = fmt.Errorf("render: %w", err)
	}
}

// Format returns the text for a snapshot without writing it
func (renderer *Renderer) Format(snapshot maze.Snapshot) string {
	out := strings.Builder{}
	for row := 0; row < snapshot.Rows(); row++ {
		if row > 0 {
			out.WriteString("\n")
		}
		for col := 0; col < snapshot.Cols(); col++ {
			state := snapshot.At(maze.Position{Row: row, Col: col})

			cell := string(state.Symbol())
			if renderer.Blocks {
				cell = blocks[state]
			}

			if color, ok := colors[state]; ok && renderer.Color {
				cell = color + cell + colorReset
			}
			out.WriteString(cell)
		}
	}
	return out.String()
}
