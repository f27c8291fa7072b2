package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workify/api"
	"workify/cmd"
	httpin "workify/internal/adapters/in/http"
	"workify/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := run(); err != nil {
		slog.Error("workify stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	if err = configs.ValidateServer(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := cmd.OpenDatabase(ctx, configs)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := cmd.CloseDatabase(db); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
	}()

	if err = postgres.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	doc, err := api.Load(ctx)
	if err != nil {
		return fmt.Errorf("load openapi document: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	e, err := httpin.NewRouter(app.CreateHTTPServer(), httpin.RouterConfig{
		Doc:         doc,
		JWTSecret:   []byte(configs.JWTSecret),
		Logger:      logger,
		HealthCheck: cmd.Ping(db),
	})
	if err != nil {
		return err
	}
	e.Logger.SetLevel(echoLogLevel(configs.LogLevel))

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", "port", configs.HTTPPort, "jobs", jobManager.Len())
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func echoLogLevel(level slog.Level) log.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return log.DEBUG
	case level <= slog.LevelInfo:
		return log.INFO
	case level <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}
