package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcoot/dailypuzzles/internal/api"
	"github.com/mcoot/dailypuzzles/internal/config"
	"github.com/mcoot/dailypuzzles/internal/factory"
	"github.com/mcoot/dailypuzzles/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (default config.yaml in . or ./config if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logs, err := logging.New(cfg.Log, os.Stdout)
	if err != nil {
		slog.Error("failed to set up logging", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = logs.Close() }()
	logger := logs.Logger
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := factory.New(ctx, factory.ConfigFrom(cfg, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = app.Close() }()

	router := api.NewRouter(api.RouterConfig{
		Logger:              logger,
		Puzzles:             app.Puzzles,
		ChallengeController: app.ChallengeController,
		SortPlayController:  app.SortPlay,
		Dictionary:          app.DictionaryService,
		ShareURL:            cfg.Challenge.ShareURL,
	})

	server := api.NewServer(router, api.ServerConfigFrom(cfg.Server), logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.Storage.Type),
		slog.Int("unlock_hour", cfg.Challenge.UnlockHour),
	)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
