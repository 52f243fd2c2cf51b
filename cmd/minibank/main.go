package main

import (
	"flag"
	"os"

	"github.com/arhyth/minibank"
	"github.com/bwmarrin/snowflake"

	"github.com/rs/zerolog"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfg, err := minibank.LoadConfig(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *cfp).Msg("error loading config file")
	}
	if cfg.Log.Level != "" {
		lvl, err := zerolog.ParseLevel(cfg.Log.Level)
		if err != nil {
			logger.Fatal().Err(err).Str("level", cfg.Log.Level).Msg("error parsing log level")
		}
		zerolog.SetGlobalLevel(lvl)
	}

	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		logger.Fatal().Err(err).Int64("node_id", cfg.NodeID).Msg("error starting ID node")
	}
	logger = logger.With().Str("session", node.Generate().String()).Logger()

	bank, err := minibank.NewBankFromConfig(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("error seeding bank")
	}
	svc := minibank.NewService(bank,
		minibank.NewLoggingMiddleware(&logger),
		minibank.NewValidationMiddleware(),
	)

	logger.Info().Int("accounts", len(bank.Accounts())).Msg("session started")
	if err = minibank.NewConsole(svc, os.Stdin, os.Stdout, &logger).Run(); err != nil {
		logger.Error().Err(err).Msg("error reading input")
	}

	if cfg.Statement.Path != "" {
		fl, err := os.Create(cfg.Statement.Path)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.Statement.Path).Msg("error creating statement file")
		}
		defer fl.Close()
		if err = svc.Statement(fl); err != nil {
			logger.Error().Err(err).Msg("error writing statement")
			return
		}
		logger.Info().Str("path", cfg.Statement.Path).Msg("statement written")
	}
}
