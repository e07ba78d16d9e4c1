package maze

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshotRecorder struct {
	snapshots []Snapshot
}

func (recorder *snapshotRecorder) Render(snapshot Snapshot) {
	recorder.snapshots = append(recorder.snapshots, snapshot)
}

func TestGenerateSmallest(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		generator, err := NewGenerator(Options{Rows: 5, Cols: 5, Seed: seed})
		require.NoError(t, err)
		require.NoError(t, generator.Run())

		snapshot := generator.Snapshot()
		require.NoError(t, Verify(snapshot))

		assert.Equal(t, 0, snapshot.Count(Unvisited))
		assert.Equal(t, []Position{generator.Start()}, snapshot.Find(Start))
		assert.Equal(t, []Position{generator.End()}, snapshot.Find(End))
		assert.NotEqual(t, generator.Start(), generator.End())

		// 2 carved nodes, 3 carved inner walls, 2 gaps
		assert.Equal(t, 7, snapshot.Count(Visited))

		innerWalls := 0
		for _, pos := range []Position{{1, 2}, {2, 1}, {2, 3}, {3, 2}} {
			if snapshot.At(pos).IsOpen() {
				innerWalls++
			}
		}
		assert.Equal(t, 3, innerWalls)

		for _, node := range []Position{generator.Start(), generator.End()} {
			adjacentGaps := 0
			for _, delta := range []Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				pos := node.add(delta)
				onBorder := pos.Row == 0 || pos.Col == 0 || pos.Row == 4 || pos.Col == 4
				if onBorder && snapshot.At(pos) == Visited {
					adjacentGaps++
				}
			}
			assert.Equal(t, 1, adjacentGaps, "gaps next to %v", node)
		}
	}
}

func TestGeneratePerfectMazes(t *testing.T) {
	for _, dims := range [][2]int{{5, 7}, {7, 5}, {9, 9}, {11, 21}, {31, 31}} {
		for seed := int64(0); seed < 10; seed++ {
			for _, strategy := range []EndStrategy{RandomEnd, FarthestEnd} {
				snapshot, err := Generate(Options{
					Rows:        dims[0],
					Cols:        dims[1],
					Seed:        seed,
					EndStrategy: strategy,
				})
				require.NoError(t, err)
				assert.NoError(t, Verify(snapshot), "%dx%d seed %d %v", dims[0], dims[1], seed, strategy)
			}
		}
	}
}

func TestGenerateRejectsInvalidDimensions(t *testing.T) {
	_, err := Generate(Options{Rows: 6, Cols: 7})
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestGenerateIsReproducible(t *testing.T) {
	a, err := NewGenerator(Options{Rows: 15, Cols: 25, Seed: 1234})
	require.NoError(t, err)
	b, err := NewGenerator(Options{Rows: 15, Cols: 25, Seed: 1234})
	require.NoError(t, err)

	require.NoError(t, a.Run())
	require.NoError(t, b.Run())

	assert.True(t, a.Snapshot().Equal(b.Snapshot()))
	assert.Equal(t, a.NumSteps(), b.NumSteps())
	assert.NotEqual(t, a.RunID(), b.RunID())

	c, err := Generate(Options{Rows: 15, Cols: 25, Seed: 4321})
	require.NoError(t, err)
	assert.False(t, a.Snapshot().Equal(c))
}

func TestGeneratorNotifiesRenderer(t *testing.T) {
	recorder := &snapshotRecorder{}
	generator, err := NewGenerator(Options{Rows: 9, Cols: 11, Seed: 5, Renderer: recorder})
	require.NoError(t, err)

	require.Len(t, recorder.snapshots, 1, "initial grid")
	assert.Equal(t, 20, recorder.snapshots[0].Count(Unvisited))

	events := map[Event]int{}
	for !generator.Done() {
		event, err := generator.Step()
		require.NoError(t, err)
		events[event]++
	}

	assert.Equal(t, 1, events[EventStart])
	assert.Equal(t, 19, events[EventCarve])
	assert.Equal(t, events[EventCarve], events[EventBacktrack]+generator.carver.Depth())
	assert.Equal(t, 1, events[EventEnd])
	assert.Equal(t, 1, events[EventOpenStart])
	assert.Equal(t, 1, events[EventOpenEnd])

	// init + start + carve/backtrack steps + end + two gaps
	steps := events[EventCarve] + events[EventBacktrack]
	assert.Len(t, recorder.snapshots, 1+1+steps+1+2)
	assert.Equal(t, len(recorder.snapshots)-1, generator.NumSteps())
	assert.True(t, recorder.snapshots[len(recorder.snapshots)-1].Equal(generator.Snapshot()))

	// Nothing happens once finished
	event, err := generator.Step()
	require.NoError(t, err)
	assert.Equal(t, EventFinished, event)
	assert.Len(t, recorder.snapshots, 1+1+steps+1+2)
}

func TestGeneratorNeverMovesBackward(t *testing.T) {
	recorder := &snapshotRecorder{}
	_, err := Generate(Options{Rows: 13, Cols: 13, Seed: 99, Renderer: recorder})
	require.NoError(t, err)

	for i := 1; i < len(recorder.snapshots); i++ {
		previous, current := recorder.snapshots[i-1], recorder.snapshots[i]
		assert.LessOrEqual(t, current.Count(Unvisited), previous.Count(Unvisited))

		for row := 0; row < current.Rows(); row++ {
			for col := 0; col < current.Cols(); col++ {
				pos := Position{Row: row, Col: col}
				if previous.At(pos).IsOpen() {
					assert.True(t, current.At(pos).IsOpen(), "%v closed at step %d", pos, i)
				}
			}
		}
	}
}

func TestGeneratorFarthestEnd(t *testing.T) {
	generator, err := NewGenerator(Options{Rows: 9, Cols: 9, Seed: 3, EndStrategy: FarthestEnd})
	require.NoError(t, err)
	require.NoError(t, generator.Run())

	grid, err := NewGrid(9, 9)
	require.NoError(t, err)
	for candidate := range BoundaryCandidates(grid) {
		assert.LessOrEqual(t,
			candidate.manhattan(generator.Start()),
			generator.End().manhattan(generator.Start()),
		)
	}
}

func TestGeneratorInjectedSource(t *testing.T) {
	generator, err := NewGenerator(Options{Rows: 5, Cols: 5, Rand: firstSource{}})
	require.NoError(t, err)
	require.NoError(t, generator.Run())

	assert.Equal(t, Position{1, 1}, generator.Start())
	// down, right, up, then the end is the first candidate after the start
	assert.Equal(t, Position{1, 3}, generator.End())
	assert.Equal(t, "#.#.#\n#S#E#\n#.#.#\n#...#\n#####", generator.Snapshot().String())
}

func TestGeneratorLogs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	generator, err := NewGenerator(Options{Rows: 7, Cols: 7, Seed: 8, Logger: logger})
	require.NoError(t, err)
	require.NoError(t, generator.Run())

	entries := hook.AllEntries()
	require.NotEmpty(t, entries)

	carverSteps := 0
	for _, entry := range entries {
		assert.Equal(t, generator.RunID(), entry.Data["run_id"])
		if entry.Message == "Carver step" {
			carverSteps++
			assert.Equal(t, logrus.DebugLevel, entry.Level)
		}
	}
	assert.Equal(t, generator.NumSteps()-4, carverSteps)

	last := hook.LastEntry()
	assert.Equal(t, "Maze finished", last.Message)
	assert.Equal(t, generator.NumSteps(), last.Data["steps"])
}
