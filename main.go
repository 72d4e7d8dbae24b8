package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/pursuit/behavior"
	"github.com/pthm-cable/pursuit/config"
	"github.com/pthm-cable/pursuit/sim"
	"github.com/pthm-cable/pursuit/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	modeName := flag.String("mode", "default", "Simulation mode: default, weihs, weihs-with-acceleration, weihs-with-capture-check, simple-strike")
	strikeTestName := flag.String("strike-test", "", "Strike test mode: deterministic or probabilistic (empty = config value)")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for trajectory CSV and config snapshot")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	mode, err := behavior.ParseSimMode(*modeName)
	if err != nil {
		slog.Error("invalid simulation mode", "error", err)
		os.Exit(1)
	}

	// CLI overrides the config's strike-test choice
	strikeTestLit := cfg.Strike.Test
	if *strikeTestName != "" {
		strikeTestLit = *strikeTestName
	}
	strikeTest, err := behavior.ParseStrikeTest(strikeTestLit)
	if err != nil {
		slog.Error("invalid strike test mode", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = uint64(time.Now().UnixNano())
	}

	rec, err := telemetry.NewRecorder(*outputDir)
	if err != nil {
		slog.Error("failed to create recorder", "error", err)
		os.Exit(1)
	}
	defer rec.Close()
	if err := rec.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	slog.Info("starting run",
		"mode", mode.String(),
		"strike_test", strikeTest.String(),
		"seed", rngSeed,
		"max_ticks", *maxTicks)

	runner := sim.New(cfg, mode, strikeTest, behavior.NewRNG(rngSeed), rec)
	captured, err := runner.Run(*maxTicks)
	if err != nil {
		slog.Error("run aborted", "error", err)
		os.Exit(1)
	}
	if captured {
		slog.Info("prey captured", "time", runner.Now())
	}
}
