// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/codr1/tintkit/internal/color"
	appconfig "github.com/codr1/tintkit/internal/config"
	"github.com/codr1/tintkit/internal/ratelimit"
	"github.com/codr1/tintkit/internal/scheduler"
	"github.com/codr1/tintkit/internal/themecolor"
)

type Config struct {
	Port            string
	Environment     string
	ShutdownTimeout time.Duration
	App             *appconfig.Config
}

func loadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	var (
		app *appconfig.Config
		err error
	)
	if path := getEnv("CONFIG_PATH", ""); path != "" {
		app, err = appconfig.Load(path)
	} else {
		app, err = appconfig.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            getEnv("PORT", strconv.Itoa(app.App.Port)),
		Environment:     getEnv("ENVIRONMENT", app.App.Environment),
		ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second,
		App:             app,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(config.Environment)

	cache, err := themecolor.NewCache(config.App.Cache.Size)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create scheme cache")
	}

	limiter := ratelimit.New(&ratelimit.Config{
		MaxRequests: config.App.RateLimit.RequestsPerMinute,
		Window:      time.Minute,
	})
	defer limiter.Close()

	svc, err := scheduler.NewService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize scheduler")
	}
	defaultSeed := color.MustHex(config.App.Theme.DefaultSeed)
	if err := scheduler.RegisterCacheWarmJob(svc, cache, config.App.Cache.WarmSchedule, defaultSeed); err != nil {
		log.Fatal().Err(err).Msg("Failed to register cache warm job")
	}

	// Create server instance
	server := newServer(config, cache, limiter)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Prime the cache before the first scheduled run
	g.Go(func() error {
		added, err := scheduler.WarmCache(ctx, cache, defaultSeed)
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("initial cache warm: %w", err)
		}
		log.Info().Int("added", added).Msg("Scheme cache primed")
		return nil
	})

	g.Go(func() error {
		svc.Start()
		<-ctx.Done()
		if err := svc.Stop(); err != nil {
			return fmt.Errorf("scheduler shutdown error: %w", err)
		}
		return nil
	})

	// Run server
	g.Go(func() error {
		log.Info().Str("port", config.Port).Str("app", config.App.App.Name).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Wait for interrupt signal
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
