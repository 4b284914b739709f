package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-form/runner"
	"github.com/sheikhrachel/go-gol-form/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("config: %v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	err = runGame(context.Background(), config, os.Stdout, sigChan)
	if err != nil && !errors.Is(err, runner.ErrCancelled) {
		log.Fatal(err)
	}
}
