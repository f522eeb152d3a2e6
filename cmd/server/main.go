package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/saeid-a/CoachAIBack/internal/config"
	"github.com/saeid-a/CoachAIBack/internal/database"
	"github.com/saeid-a/CoachAIBack/internal/repository"
	"github.com/saeid-a/CoachAIBack/internal/routes"
	"github.com/saeid-a/CoachAIBack/internal/services"
	"github.com/saeid-a/CoachAIBack/pkg/logger"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(logger.Config{Debug: cfg.LogDebug, Pretty: cfg.LogPretty})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Profile store
	store, err := openProfileStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.ProfileStore).Msg("failed to open profile store")
	}
	defer database.CloseDB()
	defer database.CloseRedis()

	// 3. Generation backend
	backend, err := services.NewChatBackend(ctx, services.BackendConfig{
		Provider: cfg.GenerationProvider,
		OpenAI: services.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		},
		Gemini: services.GeminiConfig{
			APIKey: cfg.GeminiAPIKey,
			Model:  cfg.GeminiModel,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create generation backend")
	}
	if closer, ok := backend.(io.Closer); ok {
		defer closer.Close()
	}
	generator := services.NewGenerationService(backend, cfg.GenerationTimeout)

	// 4. Setup Fiber
	app := routes.NewApp(cfg)
	if err := routes.RegisterRoutes(app, cfg, store, generator); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	// 5. Start Server
	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("store", cfg.ProfileStore).
		Str("provider", backend.Name()).
		Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}

func openProfileStore(ctx context.Context, cfg *config.Config) (repository.ProfileStore, error) {
	switch cfg.ProfileStore {
	case config.StorePostgres:
		if err := database.ConnectDB(ctx, cfg.DBUrl); err != nil {
			return nil, err
		}
		return repository.NewPostgresProfileRepository(database.DB), nil
	case config.StoreRedis:
		if err := database.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			return nil, err
		}
		return repository.NewRedisProfileRepository(database.Redis, cfg.RedisKeyPrefix), nil
	default:
		return repository.NewMemoryProfileRepository(), nil
	}
}
