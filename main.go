package main

import (
	api "kitra-backend/cmd/api"
	authrepo "kitra-backend/internal/auth/repository"
	authusecase "kitra-backend/internal/auth/usecase"
	treasurerepo "kitra-backend/internal/treasure/repository"
	treasureusecase "kitra-backend/internal/treasure/usecase"
	"kitra-backend/pkg/config"
	"kitra-backend/pkg/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Initialize repositories (dependency injection)
	userRepo := authrepo.NewUserRepository(db)
	treasureRepo := treasurerepo.NewTreasureRepository(db)

	// Initialize use cases
	authUsecaseInstance := authusecase.NewAuthUsecase(userRepo, cfg)
	treasureUsecaseInstance := treasureusecase.NewTreasureUsecase(treasureRepo)

	// Initialize HTTP handler
	gin.SetMode(gin.ReleaseMode)
	handler := api.NewHandler(authUsecaseInstance, treasureUsecaseInstance, logger)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
