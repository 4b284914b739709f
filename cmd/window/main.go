//go:build ebiten

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-form/model"
	"github.com/sheikhrachel/go-gol-form/runner"
	"github.com/sheikhrachel/go-gol-form/utils"
	"github.com/sheikhrachel/go-gol-form/window"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON configuration file")
	flag.Parse()

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("config: %v", err)
		}
		config = utils.DefaultConfig()
	}

	seed := config.ResolvedSeed()
	grid, err := model.NewGrid(config.Width, config.Height, config.Seeder(seed))
	if err != nil {
		log.Fatal(err)
	}

	board := window.NewBoard(config.Width, config.Height)
	game := window.NewGame(board, config.CellSize)
	r := runner.New(grid, board, board,
		runner.WithIterations(config.MaxGenerations),
		runner.WithInterval(config.FrameRate),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return r.Run(egCtx)
	})

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(game.Layout(0, 0))
	log.Printf("seed %d, %d generations", seed, config.MaxGenerations)

	runErr := ebiten.RunGame(game)
	// closing the window ends the simulation too
	stop()

	if err := eg.Wait(); err != nil && !errors.Is(err, runner.ErrCancelled) {
		log.Fatal(err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
