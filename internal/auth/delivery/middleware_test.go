package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	authdomain "kitra-backend/internal/auth/domain"
	authdto "kitra-backend/internal/auth/dto"
	"kitra-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	identity *authdomain.Identity
}

func (f *fakeAuthUsecase) Login(context.Context, *authdto.LoginRequest) (string, error) {
	return "", usecase.ErrInvalidCredentials
}

func (f *fakeAuthUsecase) ValidateToken(string) (*authdomain.Identity, error) {
	if f.identity == nil {
		return nil, usecase.ErrInvalidToken
	}
	return f.identity, nil
}

func gatedRouter(uc usecase.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(uc), func(c *gin.Context) {
		identity := c.MustGet(IdentityKey).(*authdomain.Identity)
		c.JSON(http.StatusOK, gin.H{"email": identity.Email})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := gatedRouter(&fakeAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"Unauthorized","message":"No valid token provided. Authentication required."}`, w.Body.String())
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := gatedRouter(&fakeAuthUsecase{identity: &authdomain.Identity{UserID: 1, Email: "u1@kitra.abc"}})

	for _, header := range []string{"sometoken", "Basic abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusForbidden, w.Code, "header %q", header)
		require.JSONEq(t, `{"error":"Forbidden","message":"Invalid token or insufficient permissions."}`, w.Body.String())
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := gatedRouter(&fakeAuthUsecase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer forged")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_ValidTokenSetsIdentity(t *testing.T) {
	r := gatedRouter(&fakeAuthUsecase{identity: &authdomain.Identity{UserID: 42, Email: "u1@kitra.abc"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"email":"u1@kitra.abc"}`, w.Body.String())
}
