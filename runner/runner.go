package runner

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-form/model"
)

const (
	DefaultIterations = 50
	DefaultInterval   = 200 * time.Millisecond
)

var (
	// ErrCancelled is returned by Run when the context ends before the last iteration.
	ErrCancelled = errors.New("simulation cancelled")
	// ErrAlreadyStarted is returned when Run is called more than once.
	ErrAlreadyStarted = errors.New("simulation already started")
)

// Renderer draws the grid's current state. It must not mutate the grid.
type Renderer interface {
	Draw(g *model.Grid) error
}

// Host is notified when a run ends normally or is cancelled.
// Neither hook fires when the renderer fails.
type Host interface {
	OnFinished()
	OnCancelled()
}

// Observer is called after every step with the number of generations advanced so far.
type Observer func(generation int, g *model.Grid)

// Option configures a Runner
type Option func(*Runner)

// WithIterations sets how many draw/wait/step iterations a run performs
func WithIterations(n int) Option {
	return func(r *Runner) { r.iterations = n }
}

// WithInterval sets the pause between drawing a generation and advancing it
func WithInterval(d time.Duration) Option {
	return func(r *Runner) { r.interval = d }
}

// WithObserver registers a callback invoked after each step
func WithObserver(o Observer) Option {
	return func(r *Runner) { r.observers = append(r.observers, o) }
}

// Runner drives a grid through a fixed number of generations.
// The grid is owned by the run loop: only the renderer may read it while a run is in progress.
type Runner struct {
	grid       *model.Grid
	renderer   Renderer
	host       Host
	iterations int
	interval   time.Duration
	observers  []Observer

	mu         sync.Mutex
	state      State
	generation int
}

// New builds an idle runner
func New(grid *model.Grid, renderer Renderer, host Host, opts ...Option) *Runner {
	r := &Runner{
		grid:       grid,
		renderer:   renderer,
		host:       host,
		iterations: DefaultIterations,
		interval:   DefaultInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State reports where the run currently is
func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Generation reports how many steps have been applied
func (r *Runner) Generation() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// Start runs the simulation on a new goroutine; the result is delivered on the returned channel.
func (r *Runner) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- r.Run(ctx)
	}()
	return done
}

// Run draws, waits and steps the grid for the configured number of iterations.
// Cancelling ctx stops the loop before its next draw or step, including mid-wait.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.state != Idle {
		r.mu.Unlock()
		return errors.Wrapf(ErrAlreadyStarted, "[Run] state=%s", r.state)
	}
	r.state = Running
	r.mu.Unlock()

	for i := 0; i < r.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return r.cancel(err)
		}

		if err := r.renderer.Draw(r.grid); err != nil {
			r.setState(Failed)
			return errors.Wrapf(err, "[Run] draw failed at iteration %d", i)
		}

		if err := r.wait(ctx); err != nil {
			return r.cancel(err)
		}

		r.grid.Step()

		r.mu.Lock()
		r.generation++
		gen := r.generation
		r.mu.Unlock()

		for _, o := range r.observers {
			o(gen, r.grid)
		}
	}

	r.setState(Finished)
	if r.host != nil {
		r.host.OnFinished()
	}
	return nil
}

// wait pauses for the interval unless ctx ends first.
func (r *Runner) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.interval <= 0 {
		return nil
	}

	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Runner) cancel(cause error) error {
	r.setState(Cancelled)
	if r.host != nil {
		r.host.OnCancelled()
	}
	return errors.Wrapf(ErrCancelled, "[Run] after %d generations: %v", r.Generation(), cause)
}
