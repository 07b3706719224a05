// The proxy exposes three routes:
//
//	GET  /api/health          # liveness
//	GET  /api/data?filename=  # read a named document (decoded, verbatim)
//	POST /api/data            # write a named document (read-sha-then-commit)
//	PUT  /api/data            # alias of POST
//
// Documents are opaque bytes here; collection semantics live on the client.
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"cryptofolio/internal/config"
	"cryptofolio/internal/contentstore"
	dataAPI "cryptofolio/internal/app/server/api/http/data"
	healthAPI "cryptofolio/internal/app/server/api/http/health"
	"cryptofolio/internal/app/server/api/http/middleware"
	"cryptofolio/internal/app/server/api/http/middleware/cors"
	loggerMW "cryptofolio/internal/app/server/api/http/middleware/logger"
)

type Handlers struct {
	Health *healthAPI.Handler
	Data   *dataAPI.Handler
}

// New creates a *chi.Mux with all operations registered through huma.
func New(cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(cors.Handler)

	humaConfig := huma.DefaultConfig("Cryptofolio Data Proxy", "1.0.0")
	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, log)
	h.Health.SetupRoutes(API)
	h.Data.SetupRoutes(API)

	return mux
}

func handlers(cfg *config.Config, log *slog.Logger) *Handlers {
	logMW := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(logMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	store := contentstore.New(cfg.Store, log)
	middlewares.Add(logMW.Middleware())
	dataHandler := dataAPI.NewHandler(store, cfg.Store, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Data:   dataHandler,
	}
}
