package delivery

import (
	"net/http"
	"strings"

	"kitra-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// IdentityKey is the gin context key carrying the *domain.Identity set by
// AuthMiddleware.
const IdentityKey = "identity"

// AuthMiddleware gates a route on a bearer token. A wholly absent header
// is Unauthorized; a header that is present but malformed, forged or
// expired is Forbidden, with no further distinction.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "No valid token provided. Authentication required.",
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			forbidden(c)
			return
		}

		identity, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			forbidden(c)
			return
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"error":   "Forbidden",
		"message": "Invalid token or insufficient permissions.",
	})
	c.Abort()
}
