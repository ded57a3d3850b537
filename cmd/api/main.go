package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/platefull/backend/config"
	"github.com/platefull/backend/internal/database"
	"github.com/platefull/backend/internal/router"
	"github.com/platefull/backend/internal/server"
	"github.com/platefull/backend/internal/service"
)

func main() {
	// .env is optional; deployments inject real environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	defer logger.Sync()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	if err := database.SeedCategories(db); err != nil {
		logger.Fatal("failed to seed categories", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Warn("redis unavailable, rate limiting and picks cache disabled", zap.Error(err))
		redisClient = nil
	}

	storage, err := config.NewS3Client(context.Background(), cfg)
	if err != nil {
		logger.Warn("object storage unavailable, generated images keep their source URLs", zap.Error(err))
		storage = nil
	}

	llm, err := service.NewLLMService(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialise llm client", zap.Error(err))
	}
	image := service.NewImageService(cfg, storage, logger)

	deps := router.Deps{
		Config:     cfg,
		DB:         db,
		Redis:      redisClient,
		Log:        logger,
		Auth:       service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.TTL),
		Users:      service.NewUserService(db),
		Recipes:    service.NewRecipeService(db),
		Picks:      service.NewPicksService(db, redisClient, logger),
		Categories: service.NewCategoryService(db),
		Favorites:  service.NewFavoriteService(db),
		Generation: service.NewGenerationService(db, llm, image, logger),
	}

	srv := server.New(cfg, router.New(deps), logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Fatal("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() (*zap.Logger, error) {
	if config.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
