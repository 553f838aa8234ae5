package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"dmstrings/internal/adapters/discord"
	"dmstrings/internal/bootstrap"
	"dmstrings/internal/config"
	"dmstrings/internal/infrastructure/i18n"
	"dmstrings/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Must(config.EnvDevelopment).Fatal("config", zap.Error(err))
	}
	log := logger.Must(cfg.Env)
	defer log.Sync() //nolint:errcheck

	if err := cfg.RequireBot(); err != nil {
		log.Fatal("config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := bootstrap.BuildCatalog(ctx, cfg, log)
	if err != nil {
		log.Fatal("catalog", zap.Error(err))
	}
	defer catalog.Close()

	translator := i18n.NewTranslator(ctx, catalog.Catalog, cfg.DefaultLanguage,
		i18n.WithLogger(log), i18n.WithStrict(cfg.Strict()))

	bot, err := discord.NewBot(cfg, catalog.Catalog, translator, log)
	if err != nil {
		log.Fatal("discord", zap.Error(err))
	}
	if err := bot.Start(ctx); err != nil {
		log.Error("bot stopped", zap.Error(err))
		os.Exit(1)
	}
}
