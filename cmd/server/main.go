package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movie-recommender/backend/internal/config"
	"movie-recommender/backend/internal/handler"
	"movie-recommender/backend/internal/logging"
	"movie-recommender/backend/internal/recommender"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.Info().Str("env", cfg.Env).Str("model", cfg.ModelID).Msg("Starting movie recommender")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var generator handler.Generator
	llm, err := recommender.NewGeminiLLMClientFromKey(ctx, cfg.APIKey, cfg.ModelID)
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to initialize model client")
		logging.Warn().Msg("Recommendations will be unavailable")
	} else {
		generator = recommender.New(llm)
		logging.Info().Str("model", llm.Model()).Msg("Recommender initialized")
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           newRouter(cfg, handler.New(generator, cfg.ModelID)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Int("port", cfg.Port).Str("allowed_origin", cfg.AllowedOrigin).Msg("Server ready")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
