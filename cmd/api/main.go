package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/01moynul/kashish-pos/internal/ai"
	"github.com/01moynul/kashish-pos/internal/auth"
	"github.com/01moynul/kashish-pos/internal/catalog"
	"github.com/01moynul/kashish-pos/internal/checkout"
	"github.com/01moynul/kashish-pos/internal/config"
	"github.com/01moynul/kashish-pos/internal/handlers"
	"github.com/01moynul/kashish-pos/internal/kv"
	"github.com/01moynul/kashish-pos/internal/logger"
	"github.com/01moynul/kashish-pos/internal/metrics"
	"github.com/01moynul/kashish-pos/internal/routes"
	"github.com/01moynul/kashish-pos/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 0. --- Load Configuration (.env + environment) ---
	cfg, dotenv, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logg := logger.New("kashish-pos", cfg.LogLevel, !cfg.IsProduction())
	if !dotenv {
		logg.Warn().Msg("Could not find or load .env file. Relying on system environment variables.")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. --- Storage ---
	store, err := kv.Open(ctx, cfg, logg)
	if err != nil {
		logg.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("Failed to open storage")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logg.Warn().Err(err).Msg("Storage close failed")
		}
	}()

	// 2. --- Session & Theme ---
	sessions, err := session.New(ctx, store, cfg.OwnerUsername, cfg.OwnerPassword)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to restore session")
	}

	// 3. --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(registry)

	// 4. --- Catalog ---
	products, err := catalog.New(ctx, store, sessions,
		catalog.WithLogger(logg),
		catalog.WithMetrics(recorder),
	)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to load catalog")
	}

	// 5. --- AI Service ---
	var enricher ai.Enricher = ai.Noop{}
	if cfg.AIEnabled() {
		gemini, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiImageModel, cfg.GeminiTextModel, cfg.ShopName, logg)
		if err != nil {
			logg.Fatal().Err(err).Msg("Failed to initialize AI service")
		}
		defer gemini.Close()
		enricher = gemini
	} else {
		logg.Warn().Msg("GEMINI_API_KEY is not set; AI features are disabled")
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		Catalog:   products,
		Cart:      checkout.NewCart(),
		Session:   sessions,
		Tokens:    auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL),
		AIService: enricher,
		Log:       logg,
		Location:  time.Local,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, cfg.CORSOrigin, registry)

	server := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Start Server ---
	go func() {
		logg.Info().Str("addr", cfg.AppAddr).Str("storage", cfg.StorageDriver).Msg("Starting Kashish POS API server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error().Err(err).Msg("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}
}
