package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"restaurant/cmd"
	"restaurant/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zapLogger, err := logger.New(configs.AppEnv)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, configs, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to build application", zap.Error(err))
	}
	if err = app.Seed(ctx); err != nil {
		zapLogger.Fatal("Failed to seed", zap.Error(err))
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		zapLogger.Fatal("Failed to create jobs", zap.Error(err))
	}
	if err = jobManager.StartAll(ctx); err != nil {
		zapLogger.Fatal("Failed to start jobs", zap.Error(err))
	}

	e, err := app.CreateRouter(ctx)
	if err != nil {
		zapLogger.Fatal("Failed to create router", zap.Error(err))
	}
	startWebServer(ctx, e, configs.HTTPPort, zapLogger)

	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = app.Close(shutdownCtx); err != nil {
		zapLogger.Error("Failed to release resources", zap.Error(err))
	}
}

// startWebServer serves until ctx is cancelled or the listener fails.
func startWebServer(ctx context.Context, e *echo.Echo, port string, zapLogger *zap.Logger) {
	e.HideBanner = true
	serveErr := make(chan error, 1)
	go func() {
		zapLogger.Info("HTTP server listening", zap.String("port", port))
		serveErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Error("HTTP server stopped", zap.Error(err))
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}
