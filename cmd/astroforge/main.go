package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"astroforge/internal/config"
	"astroforge/internal/game"
	"astroforge/internal/logging"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "astroforge.yaml", "path to the YAML config")
	selftest := flag.Bool("selftest", false, "show the self-test text, pause the beacon and log whether every glyph drew")
	flag.Parse()

	// An explicit -config is relative to where the user ran us.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			if abs, err := filepath.Abs(*configPath); err == nil {
				*configPath = abs
			}
		}
	})

	// Assets are looked up next to a deployed binary. "go run" builds into a
	// temp go-build directory, so stay put there.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			_ = os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Fatal("game setup failed", zap.Error(err))
	}
	if *selftest {
		g.EnableSelfTest()
	}

	logger.Info("starting", zap.String("config", *configPath), zap.Bool("selftest", *selftest))
	g.Run()
}
