// Headless physics stress run: timing per step and a determinism check.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"astroforge/internal/logging"
	"astroforge/internal/stress"

	"go.uber.org/zap"
)

func main() {
	frames := flag.Int("frames", 300, "frames per scenario")
	level := flag.String("log", "info", "log level")
	flag.Parse()
	if *frames < 1 {
		fmt.Fprintf(os.Stderr, "-frames must be at least 1, got %d\n", *frames)
		flag.Usage()
		os.Exit(2)
	}

	logger, err := logging.New(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scenarios := stress.DefaultScenarios()
	for i := range scenarios {
		scenarios[i].Frames = *frames
	}

	start := time.Now()
	results, err := stress.RunAll(ctx, scenarios, logger)
	if err != nil {
		logger.Error("stress run failed", zap.Error(err))
		os.Exit(1)
	}

	for _, r := range results {
		fmt.Printf("%-8s %5d objects: %10v/step | %6d pairs (max %4d/frame) | max |dy| %.6f | digest %016x\n",
			r.Scenario.Name, r.Scenario.Objects, r.PerStep.Round(time.Microsecond),
			r.Pairs, r.MaxPairs, r.MaxDY, r.Digest)
	}
	logger.Info("stress run complete",
		zap.Int("scenarios", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)
}
