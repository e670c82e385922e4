package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		logger.Info("using default configuration", "reason", err.Error())
		config = utils.DefaultConfig()
		if err = config.ApplyEnvOverrides(); err != nil {
			logger.Error("invalid environment override", "error", err)
			os.Exit(1)
		}
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	game := NewGame(config, logger)

	ctx, cancel := context.WithCancel(ctx)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		// Stop the stats reporter once the run loop finishes.
		defer cancel()
		return game.Run(ctx)
	})
	eg.Go(func() error {
		return game.ReportStats(ctx)
	})

	if err = eg.Wait(); err != nil {
		logger.Error("game loop failed", "error", err)
		os.Exit(1)
	}

	stats := game.StatsSummary()
	logger.Info("final stats",
		"total_generations", stats.TotalGenerations,
		"generations_per_second", stats.GenerationsPerSecond,
		"average_population", stats.AveragePopulation,
		"peak_population", stats.PeakPopulation,
	)
}
