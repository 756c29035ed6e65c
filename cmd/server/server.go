// cmd/server/server.go
package main

import (
	"net/http"
	"time"

	"github.com/codr1/tintkit/internal/api"
	"github.com/codr1/tintkit/internal/api/schemes"
	"github.com/codr1/tintkit/internal/ratelimit"
	"github.com/codr1/tintkit/internal/themecolor"
)

func newServer(config *Config, cache *themecolor.Cache, limiter *ratelimit.Limiter) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRateLimit(limiter, config.App.RateLimit.TrustProxy),
		api.WithRequestID,
		api.WithContentType,
	)

	schemes.InitHandlers(cache, schemes.Options{
		DefaultSeed: config.App.Theme.DefaultSeed,
		CSSPrefix:   config.App.Theme.CSSPrefix,
	})

	// Register routes
	registerRoutes(router)

	return &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Scheme routes
	mux.HandleFunc("GET /api/v1/schemes", schemes.HandleScheme)
	mux.HandleFunc("GET /api/v1/schemes/css", schemes.HandleSchemeCSS)
	mux.HandleFunc("GET /api/v1/palettes", schemes.HandlePalette)
	mux.HandleFunc("POST /api/v1/mix", schemes.HandleMix)

	// Preset routes
	mux.HandleFunc("GET /api/v1/presets", schemes.HandlePresetsList)
	mux.HandleFunc("GET /api/v1/presets/{name}", schemes.HandlePreset)
}
