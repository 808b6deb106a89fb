// Command dominosim serves domino round simulations over HTTP.
//
// Settings come from a JSON config file (DOMINO_CONFIG, default
// data/domino_config.json) and can be overridden with DOMINO_ADDR and
// DOMINO_SEED, optionally set in a .env file.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dominosim/internal/app"
	"dominosim/internal/config"
	"dominosim/internal/ports/httpapi"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultConfigPath = "data/domino_config.json"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("dominosim stopped", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	_ = godotenv.Load()

	path := os.Getenv("DOMINO_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	if err := config.LoadGameConfig(path); err != nil {
		logger.Warn("could not load game config, using defaults", zap.String("path", path), zap.Error(err))
	}

	seed, err := config.ParseSeed(os.Getenv("DOMINO_SEED"), config.GetSeed())
	if err != nil {
		logger.Warn("ignoring DOMINO_SEED", zap.Error(err))
	}
	addr := os.Getenv("DOMINO_ADDR")
	if addr == "" {
		addr = config.GetListenAddr()
	}

	svc := app.NewService(config.NewRand(seed), app.NewLedger())
	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.NewServer(svc, logger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", addr), zap.Int64("seed", seed))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
