package api

import (
	"net/http"

	authdelivery "kitra-backend/internal/auth/delivery"
	authusecase "kitra-backend/internal/auth/usecase"
	treasuredelivery "kitra-backend/internal/treasure/delivery"
	treasureusecase "kitra-backend/internal/treasure/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authusecase.AuthUsecase, treasureUsecase treasureusecase.TreasureUsecase) {
	authHandler := authdelivery.NewAuthHandler(authUsecase)
	treasureHandler := treasuredelivery.NewTreasureHandler(treasureUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Public treasure search
		api.GET("/treasures", treasureHandler.GetTreasures)

		// Token-gated treasure search
		v2 := api.Group("/v2")
		v2.Use(authdelivery.AuthMiddleware(authUsecase))
		{
			v2.GET("/treasures", treasureHandler.GetTreasures)
		}
	}
}
