// Command proxy starts the data proxy: a stateless HTTP service that
// translates document reads and writes into content store commits.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptofolio/internal/app/server/api"
	"cryptofolio/internal/config"
	"cryptofolio/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := cfg.Store.Validate(); err != nil {
		// Keep serving: data requests answer 500 with a structured body,
		// and the health endpoint still works.
		log.Warn("content store not configured, all data requests will fail", "error", err)
	}

	mux := api.New(cfg, log)

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("proxy listening", "addr", cfg.Server.RunAddress, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
