// Package main is the entry point for the dungeongen CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeongen/internal/config"
	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/generator"
	"github.com/samdwyer/dungeongen/internal/logger"
	"github.com/samdwyer/dungeongen/internal/preview"
	"github.com/samdwyer/dungeongen/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dungeongen: %v\n", err)
		os.Exit(2)
	}

	opts := &cfg.Options
	flag.StringVar(&opts.Seed, "seed", opts.Seed, "level seed (random when empty)")
	flag.Float64Var(&opts.Difficulty, "difficulty", opts.Difficulty, "difficulty, 0-10")
	flag.IntVar(&opts.RoomCount, "rooms", opts.RoomCount, "room count, 2-64")
	flag.IntVar(&opts.MainPathLength, "main-path", opts.MainPathLength, "rooms on the entrance-to-boss path (0 = 60% of rooms)")
	flag.Float64Var(&opts.BranchingFactor, "branching", opts.BranchingFactor, "extra loop edges per room, 0-1")
	flag.BoolVar(&cfg.Tracing, "trace", cfg.Tracing, "export traces over OTLP/HTTP")
	asJSON := flag.Bool("json", false, "print the level as JSON")
	asASCII := flag.Bool("ascii", false, "print every room as ASCII")
	interactive := flag.Bool("preview", false, "open the terminal room viewer")
	flag.Parse()

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if opts.Seed == "" {
		opts.Seed = uuid.NewString()
		log.WithField("seed", opts.Seed).Info("no seed given, using a random one")
	}

	ctx := context.Background()
	if cfg.Tracing {
		setupOTelEnv()
		shutdown, err := telemetry.Setup(ctx, telemetry.DiagnosticsLogger(0))
		if err != nil {
			log.WithError(err).Warn("telemetry setup failed, continuing without traces")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.WithError(err).Error("shutting down telemetry")
				}
			}()
		}
	}

	if err := run(ctx, log, cfg.Options, *asJSON, *asASCII, *interactive); err != nil {
		log.WithError(err).Error("generation failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logrus.Logger, opts generator.Options, asJSON, asASCII, interactive bool) error {
	tables, err := gamedata.Default()
	if err != nil {
		return err
	}
	level, err := generator.Generate(ctx, opts, generator.WithLogger(log), generator.WithTables(tables))
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"level":       level.ID,
		"rooms":       len(level.Rooms),
		"fingerprint": fmt.Sprintf("%016x", level.Fingerprint()),
	}).Info("level generated")

	switch {
	case interactive:
		screen, err := preview.NewScreen()
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		defer screen.Close()
		return preview.NewViewer(screen, tables, level).Run(ctx)
	case asJSON:
		return writeJSON(os.Stdout, level)
	case asASCII:
		return writeASCII(os.Stdout, level)
	default:
		return writeSummary(os.Stdout, level)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set
// and no endpoint is configured.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "dungeongen"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
