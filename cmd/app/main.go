package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grabgo/cmd"
	"grabgo/internal/pkg/errs"
	"grabgo/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(config.LogLevel)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck // nothing left to report to

	app, err := cmd.NewCompositionRoot(config, zapLogger)
	if err != nil {
		zapLogger.Fatal("building application", zap.Error(err))
	}
	defer app.Close() //nolint:errcheck // process is exiting

	_, err = app.OrderStore().Load(context.Background())
	switch {
	case errors.Is(err, errs.ErrPersistence):
		zapLogger.Warn("stored orders unreadable, starting empty", zap.Error(err))
	case err != nil:
		zapLogger.Fatal("loading orders", zap.Error(err))
	default:
		zapLogger.Info("order store ready", zap.String("backend", config.StoreBackend))
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		zapLogger.Fatal("starting jobs", zap.Error(err))
	}

	e := app.CreateRouter()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
	jobManager.StopAll(ctx)

	zapLogger.Info("server stopped gracefully")
}
