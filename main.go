package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"railbot/config"
	"railbot/engine"
	"railbot/metrics"
	"railbot/protocol"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML weights/strategy file (defaults apply when empty)")
	metricsRoot := flag.String("metrics", "", "directory to write per-turn CSV metrics into (disabled when empty)")
	flag.Parse()

	// Stdout carries the action protocol; all logging goes to stderr.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	reader := protocol.NewReader(os.Stdin)
	layout, err := reader.ReadLayout()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read initialization snapshot")
	}

	collector := metrics.NewDummyCollector()
	if *metricsRoot != "" {
		collector = metrics.NewCollector()
	}

	eng, err := engine.New(layout, cfg, engine.WithCollector(collector))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize engine")
	}
	log.Info().
		Int("width", layout.Width).
		Int("height", layout.Height).
		Int("towns", len(layout.Towns)).
		Str("strategy", cfg.Strategy).
		Msg("engine initialized")

	if err := eng.Run(reader, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("turn pipeline aborted")
	}

	if *metricsRoot != "" {
		writer, err := metrics.NewWriter(*metricsRoot)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create metrics writer")
		}
		if err := writer.WriteTurnRecords(collector.All()); err != nil {
			log.Fatal().Err(err).Msg("failed to write metrics")
		}
		log.Info().Str("dir", writer.Dir()).Msg("metrics written")
	}
}
