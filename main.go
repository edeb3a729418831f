package main

import (
	"context"
	"flag"
	"gametree/config"
	"gametree/experiments"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	experiment := flag.String("experiment", "", "Run a single experiment: "+strings.Join(experiments.Names, ", "))
	games := flag.Int("games", 0, "Games per matchup (overrides the config)")
	out := flag.String("out", "", "Output directory for CSV records (overrides the config)")
	logLevel := flag.String("log-level", "", "Log level (overrides the config)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *experiment != "" {
		cfg.Experiments = []string{*experiment}
		cfg.Custom.Pairings = nil
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *out != "" {
		cfg.OutputDir = *out
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	selected, err := cfg.Selected()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to select experiments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, e := range selected {
		if _, err := experiments.Run(ctx, e, cfg.Options()); err != nil {
			log.Error().Err(err).Msgf("%s experiment failed", e.Name)
			stop()
			os.Exit(1)
		}
	}
}
