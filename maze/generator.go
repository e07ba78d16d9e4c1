package maze

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Event int

const (
	EventNone Event = iota
	EventStart
	EventCarve
	EventBacktrack
	EventComplete
	EventEnd
	EventOpenStart
	EventOpenEnd
	EventFinished
)

var eventNames = map[Event]string{
	EventNone:      "none",
	EventStart:     "start",
	EventCarve:     "carve",
	EventBacktrack: "backtrack",
	EventComplete:  "complete",
	EventEnd:       "end",
	EventOpenStart: "open-start",
	EventOpenEnd:   "open-end",
	EventFinished:  "finished",
}

func (event Event) String() string {
	if name, ok := eventNames[event]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", int(event))
}

type phase int

const (
	phaseStart phase = iota
	phaseCarve
	phaseEnd
	phaseOpenStart
	phaseOpenEnd
	phaseFinished
)

// Renderer receives a snapshot after every change to the grid. It must not
// block on the generator.
type Renderer interface {
	Render(Snapshot)
}

type RendererFunc func(Snapshot)

func (f RendererFunc) Render(snapshot Snapshot) {
	f(snapshot)
}

type Options struct {
	Rows, Cols int

	// Seed for the default source; ignored when Rand is set
	Seed int64
	Rand Source

	EndStrategy EndStrategy

	Renderer Renderer
	Logger   logrus.FieldLogger
}

// Generator sequences a whole maze generation as discrete steps: mark the
// start, carve until no node is left, mark the end, then open both gaps.
type Generator struct {
	runID string
	seed  int64
	// seeded is false when the caller injected its own source
	seeded bool

	grid   *Grid
	rng    Source
	carver *Carver

	endStrategy EndStrategy
	renderer    Renderer
	log         logrus.FieldLogger

	phase      phase
	start, end Position
	numSteps   int
}

func NewGenerator(opts Options) (*Generator, error) {
	grid, err := NewGrid(opts.Rows, opts.Cols)
	if err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = NewSource(opts.Seed)
	}

	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}

	runID := uuid.NewString()
	generator := &Generator{
		runID:       runID,
		seed:        opts.Seed,
		seeded:      opts.Rand == nil,
		grid:        grid,
		rng:         rng,
		endStrategy: opts.EndStrategy,
		renderer:    opts.Renderer,
		log: logger.WithFields(logrus.Fields{
			"run_id": runID,
			"rows":   opts.Rows,
			"cols":   opts.Cols,
		}),
		phase: phaseStart,
	}

	generator.log.WithField("seed", opts.Seed).Info("Initialized maze grid")
	generator.notify()

	return generator, nil
}

func (generator *Generator) RunID() string {
	return generator.runID
}

func (generator *Generator) Seed() int64 {
	return generator.seed
}

// Seeded reports whether the grid was drawn from Seed rather than an injected
// source
func (generator *Generator) Seeded() bool {
	return generator.seeded
}

func (generator *Generator) EndStrategy() EndStrategy {
	return generator.endStrategy
}

func (generator *Generator) Snapshot() Snapshot {
	return generator.grid.Snapshot()
}

func (generator *Generator) Done() bool {
	return generator.phase == phaseFinished
}

// Start returns the start position; valid once the first step has run
func (generator *Generator) Start() Position {
	return generator.start
}

// End returns the end position; valid once carving has completed
func (generator *Generator) End() Position {
	return generator.end
}

// NumSteps counts the steps taken so far, one per renderer notification after
// init. Backtracks count even though they leave the grid unchanged.
func (generator *Generator) NumSteps() int {
	return generator.numSteps
}

func (generator *Generator) notify() {
	if generator.renderer != nil {
		generator.renderer.Render(generator.grid.Snapshot())
	}
}

// Step performs exactly one transition and notifies the renderer. Once the
// maze is finished it returns EventFinished without touching the grid.
func (generator *Generator) Step() (Event, error) {
	event, pos, err := generator.advance()
	if err != nil {
		generator.log.WithError(err).WithField("event", event).Error("Maze generation failed")
		return event, err
	}
	if event == EventFinished {
		return event, nil
	}

	generator.numSteps++
	generator.notify()

	entry := generator.log.WithFields(logrus.Fields{
		"event": event.String(),
		"row":   pos.Row,
		"col":   pos.Col,
	})
	switch event {
	case EventCarve, EventBacktrack:
		entry.WithField("depth", generator.carver.Depth()).Debug("Carver step")
	default:
		entry.Info("Maze phase")
	}

	return event, nil
}

func (generator *Generator) advance() (Event, Position, error) {
	grid := generator.grid

	switch generator.phase {
	case phaseStart:
		start, err := ChooseStart(grid, generator.rng)
		if err != nil {
			return EventStart, Position{}, err
		}
		generator.start = start
		generator.carver = NewCarver(grid, start, generator.rng)
		generator.phase = phaseCarve
		return EventStart, start, nil

	case phaseCarve:
		if !generator.carver.Done() {
			event, err := generator.carver.Step()
			return event, generator.carver.Current(), err
		}
		generator.phase = phaseEnd
		fallthrough

	case phaseEnd:
		var end Position
		var err error
		if generator.endStrategy == FarthestEnd {
			end, err = ChooseFarthestEnd(grid, generator.start)
		} else {
			end, err = ChooseEnd(grid, generator.start, generator.rng)
		}
		if err != nil {
			return EventEnd, Position{}, err
		}
		generator.end = end
		generator.phase = phaseOpenStart
		return EventEnd, end, nil

	case phaseOpenStart:
		gap, err := OpenBoundary(grid, generator.start)
		if err != nil {
			return EventOpenStart, Position{}, err
		}
		generator.phase = phaseOpenEnd
		return EventOpenStart, gap, nil

	case phaseOpenEnd:
		gap, err := OpenBoundary(grid, generator.end)
		if err != nil {
			return EventOpenEnd, Position{}, err
		}
		generator.phase = phaseFinished
		return EventOpenEnd, gap, nil
	}

	return EventFinished, Position{}, nil
}

// Run steps until the maze is finished
func (generator *Generator) Run() error {
	for !generator.Done() {
		if _, err := generator.Step(); err != nil {
			return err
		}
	}
	generator.log.WithFields(logrus.Fields{
		"steps": generator.numSteps,
		"start": generator.start.String(),
		"end":   generator.end.String(),
	}).Info("Maze finished")
	return nil
}

// Generate builds a whole maze in one call and returns the final grid
func Generate(opts Options) (Snapshot, error) {
	generator, err := NewGenerator(opts)
	if err != nil {
		return Snapshot{}, err
	}
	if err := generator.Run(); err != nil {
		return Snapshot{}, err
	}
	return generator.Snapshot(), nil
}
