package paced

import (
	"errors"
	"sync"
	"time"

	"github.com/they4kman/mazegen/maze"
)

var ErrStopped = errors.New("director stopped before the maze was finished")

// Director steps a generator, waiting Delay between steps. A zero Delay runs
// the generation as fast as the renderer allows.
type Director struct {
	Delay time.Duration

	generator *maze.Generator
	done      chan struct{}
	endOnce   sync.Once
}

func New(delay time.Duration) *Director {
	return &Director{
		Delay: delay,
		done:  make(chan struct{}),
	}
}

// Init attaches the generator to drive. A director that was already ended
// stays ended.
func (director *Director) Init(generator *maze.Generator) {
	director.generator = generator
}

func (director *Director) Act() (maze.Event, error) {
	return director.generator.Step()
}

func (director *Director) ActContinuously() error {
	var tick <-chan time.Time
	if director.Delay > 0 {
		ticker := time.NewTicker(director.Delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	for !director.generator.Done() {
		select {
		case <-director.done:
			return ErrStopped
		default:
		}

		if tick != nil {
			select {
			case <-director.done:
				return ErrStopped
			case <-tick:
			}
		}

		if _, err := director.Act(); err != nil {
			return err
		}
	}
	return nil
}

// End is safe to call from another goroutine, and more than once
func (director *Director) End() {
	director.endOnce.Do(func() {
		close(director.done)
	})
}

var _ maze.Director = (*Director)(nil)
