package delivery

import (
	"errors"
	"net/http"

	authdto "kitra-backend/internal/auth/dto"
	"kitra-backend/internal/auth/usecase"
	"kitra-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// loginMessages maps LoginRequest fields to the client-facing validation
// messages.
var loginMessages = map[string]string{
	"Email":    "Invalid email format",
	"Password": "Password must be at least 6 characters long",
}

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validation.ErrorsResponse{
			Errors: validation.FromBindingError(err, loginMessages, "body"),
		})
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, authdto.LoginResponse{
				Status:  "error",
				Message: "Invalid email or password",
			})
			return
		}
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, authdto.LoginResponse{
		Status:  "success",
		Message: "Login successful",
		Token:   token,
	})
}
