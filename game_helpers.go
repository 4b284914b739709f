package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-form/model"
	"github.com/sheikhrachel/go-gol-form/runner"
	"github.com/sheikhrachel/go-gol-form/utils"
)

// consoleHost reports the end of a run on the terminal
type consoleHost struct {
	out io.Writer
}

func (h consoleHost) OnFinished() {
	fmt.Fprintln(h.out, "\n🏁 Game Over")
}

func (h consoleHost) OnCancelled() {
	fmt.Fprintln(h.out, "\n🛑 Simulation cancelled")
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (
	*model.Grid,
	*model.TerminalRenderer,
	*utils.Stats,
	int64,
	error,
) {
	seed := config.ResolvedSeed()
	grid, err := model.NewGrid(config.Width, config.Height, config.Seeder(seed))
	if err != nil {
		return nil, nil, nil, 0, errors.Wrap(err, "[initializeGame] failed to build grid")
	}

	renderer := model.NewTerminalRenderer(out, config.ClearScreen)
	stats := utils.NewStats()

	return grid, renderer, stats, seed, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid, seed int64) {
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Seed: %d (%s)\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells(), seed, config.Seeding)
	fmt.Fprintf(out, "Running %d generations, %s per frame\n", config.MaxGenerations, config.FrameRate)
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// displayFinalStats shows the summary once the run has ended
func displayFinalStats(out io.Writer, grid *model.Grid, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d generations | Living: %d | Avg Pop: %.1f\n",
		stats.TotalGenerations, grid.CountLivingCells(), stats.AveragePopulation)
	if stats.IsStagnant() {
		fmt.Fprintf(out, "Board settled into a still life or cycle at generation %d\n", stats.StagnantSince)
	}
}

// runGame builds the board and drives it to completion; a value on signals cancels the run
func runGame(ctx context.Context, config utils.Config, out io.Writer, signals <-chan os.Signal) error {
	grid, renderer, stats, seed, err := initializeGame(config, out)
	if err != nil {
		return err
	}
	displayGameInfo(out, config, grid, seed)

	r := runner.New(grid, renderer, consoleHost{out: out},
		runner.WithIterations(config.MaxGenerations),
		runner.WithInterval(config.FrameRate),
		runner.WithObserver(stats.Observe),
	)

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	eg, egCtx := errgroup.WithContext(runCtx)
	eg.Go(func() error {
		defer stop()
		return r.Run(egCtx)
	})
	// out belongs to the run loop until Wait returns, so the signal is reported afterwards
	var received os.Signal
	eg.Go(func() error {
		select {
		case received = <-signals:
			stop()
		case <-egCtx.Done():
		}
		return nil
	})

	err = eg.Wait()
	if received != nil {
		fmt.Fprintf(out, "Received %s, shut down gracefully\n", received)
	}
	displayFinalStats(out, grid, stats)
	return err
}
