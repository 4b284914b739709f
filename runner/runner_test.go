package runner

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-form/model"
)

// recorder logs every draw, step and host notification in order.
type recorder struct {
	mu     sync.Mutex
	events []string

	onDraw  func(n int) error
	draws   int
	frames  [][]bool
	finish  int
	cancels int
}

func (r *recorder) Draw(g *model.Grid) error {
	r.mu.Lock()
	r.draws++
	n := r.draws
	r.events = append(r.events, "draw")
	r.frames = append(r.frames, g.Snapshot())
	hook := r.onDraw
	r.mu.Unlock()

	if hook != nil {
		return hook(n)
	}
	return nil
}

func (r *recorder) OnFinished() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finish++
	r.events = append(r.events, "finished")
}

func (r *recorder) OnCancelled() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancels++
	r.events = append(r.events, "cancelled")
}

func (r *recorder) observe(int, *model.Grid) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "step")
}

func blinkerGrid(t *testing.T) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(5, 5, model.NewPatternSeeder(
		model.Coord{Row: 2, Col: 1},
		model.Coord{Row: 2, Col: 2},
		model.Coord{Row: 2, Col: 3},
	))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestRunFinishes(t *testing.T) {
	rec := &recorder{}
	g := blinkerGrid(t)
	r := New(g, rec, rec, WithIterations(5), WithInterval(0), WithObserver(rec.observe))

	if r.State() != Idle {
		t.Fatalf("new runner state = %s, want idle", r.State())
	}
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"draw", "step", "draw", "step", "draw", "step", "draw", "step", "draw", "step", "finished"}
	if !slices.Equal(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	if rec.finish != 1 || rec.cancels != 0 {
		t.Fatalf("finished=%d cancelled=%d, want 1 and 0", rec.finish, rec.cancels)
	}
	if r.State() != Finished {
		t.Fatalf("state = %s, want finished", r.State())
	}
	if r.Generation() != 5 {
		t.Fatalf("generation = %d, want 5", r.Generation())
	}
}

func TestRunDrawsBeforeStepping(t *testing.T) {
	rec := &recorder{}
	g := blinkerGrid(t)
	initial := g.Snapshot()
	r := New(g, rec, rec, WithIterations(2), WithInterval(0))

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !slices.Equal(rec.frames[0], initial) {
		t.Fatal("first frame should show the seeded state")
	}
	if slices.Equal(rec.frames[1], initial) {
		t.Fatal("second frame should show the blinker after one step")
	}
	// blinker has period 2
	if !slices.Equal(g.Snapshot(), initial) {
		t.Fatal("grid should be back to the seeded state after two steps")
	}
}

func TestRunDefaults(t *testing.T) {
	r := New(blinkerGrid(t), &recorder{}, nil)
	if r.iterations != 50 || r.interval != 200*time.Millisecond {
		t.Fatalf("defaults = %d iterations / %s, want 50 / 200ms", r.iterations, r.interval)
	}
}

func TestRunCancelledDuringDraw(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{}
	rec.onDraw = func(n int) error {
		if n == 3 {
			cancel()
		}
		return nil
	}
	r := New(blinkerGrid(t), rec, rec, WithIterations(10), WithInterval(time.Millisecond), WithObserver(rec.observe))

	err := r.Run(ctx)
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("Run error = %v, want ErrCancelled", err)
	}

	want := []string{"draw", "step", "draw", "step", "draw", "cancelled"}
	if !slices.Equal(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	if rec.finish != 0 || rec.cancels != 1 {
		t.Fatalf("finished=%d cancelled=%d, want 0 and 1", rec.finish, rec.cancels)
	}
	if r.State() != Cancelled {
		t.Fatalf("state = %s, want cancelled", r.State())
	}
	if r.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", r.Generation())
	}
}

func TestRunCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{}
	drawn := make(chan struct{}, 1)
	rec.onDraw = func(int) error {
		drawn <- struct{}{}
		return nil
	}
	r := New(blinkerGrid(t), rec, rec, WithInterval(time.Hour))

	done := r.Start(ctx)
	<-drawn
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, ErrCancelled) {
			t.Fatalf("Run error = %v, want ErrCancelled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cancellation did not interrupt the wait")
	}

	if rec.draws != 1 || r.Generation() != 0 {
		t.Fatalf("draws=%d generation=%d, want 1 and 0", rec.draws, r.Generation())
	}
	if rec.cancels != 1 || rec.finish != 0 {
		t.Fatalf("finished=%d cancelled=%d, want 0 and 1", rec.finish, rec.cancels)
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	r := New(blinkerGrid(t), rec, rec, WithInterval(0))
	if err := r.Run(ctx); !errors.Is(err, ErrCancelled) {
		t.Fatalf("Run error = %v, want ErrCancelled", err)
	}
	if rec.draws != 0 || rec.cancels != 1 {
		t.Fatalf("draws=%d cancelled=%d, want 0 and 1", rec.draws, rec.cancels)
	}
}

func TestRunRendererFailure(t *testing.T) {
	errBoom := errors.New("boom")
	rec := &recorder{}
	rec.onDraw = func(n int) error {
		if n == 2 {
			return errBoom
		}
		return nil
	}
	r := New(blinkerGrid(t), rec, rec, WithIterations(5), WithInterval(0), WithObserver(rec.observe))

	err := r.Run(context.Background())
	if errors.Cause(err) != errBoom {
		t.Fatalf("Run error = %v, want cause errBoom", err)
	}
	want := []string{"draw", "step", "draw"}
	if !slices.Equal(rec.events, want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	if rec.finish != 0 || rec.cancels != 0 {
		t.Fatal("a failed run must not notify the host")
	}
	if r.State() != Failed {
		t.Fatalf("state = %s, want failed", r.State())
	}
}

func TestRunOnlyOnce(t *testing.T) {
	rec := &recorder{}
	r := New(blinkerGrid(t), rec, rec, WithIterations(1), WithInterval(0))
	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if err := r.Run(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("second Run error = %v, want ErrAlreadyStarted", err)
	}
	if rec.finish != 1 {
		t.Fatalf("finished fired %d times, want 1", rec.finish)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		Idle:      "idle",
		Running:   "running",
		Finished:  "finished",
		Cancelled: "cancelled",
		Failed:    "failed",
		State(42): "State(42)",
	} {
		if s.String() != want {
			t.Fatalf("State(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
	if Idle.Done() || Running.Done() || !Finished.Done() || !Cancelled.Done() || !Failed.Done() {
		t.Fatal("Done reports the wrong terminal states")
	}
}
