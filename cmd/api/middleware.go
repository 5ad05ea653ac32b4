package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// genericFault is the only body clients ever see for unexpected errors;
// the underlying detail stays in the server log.
var genericFault = gin.H{
	"error":   "Internal Server Error",
	"message": "An unexpected error occurred. Please try again later.",
}

// ErrorHandler is the outermost error boundary: any error a handler
// attaches with c.Error is logged and mapped to the generic fault body.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(c.Errors.Last().Err),
		)
		c.JSON(http.StatusInternalServerError, genericFault)
	}
}

// Recovery maps panics to the same generic fault body as handler errors.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, genericFault)
	})
}
