package api

import (
	authusecase "kitra-backend/internal/auth/usecase"
	treasureusecase "kitra-backend/internal/treasure/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	router *gin.Engine
}

func NewHandler(authUc authusecase.AuthUsecase, treasureUc treasureusecase.TreasureUsecase, logger *zap.Logger) *Handler {
	r := gin.New()

	r.Use(Recovery(logger))
	r.Use(ErrorHandler(logger))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, authUc, treasureUc)

	return &Handler{router: r}
}

// Engine exposes the configured router, mainly for tests.
func (h *Handler) Engine() *gin.Engine {
	return h.router
}

func (h *Handler) Start(addr string) error {
	return h.router.Run(addr)
}
