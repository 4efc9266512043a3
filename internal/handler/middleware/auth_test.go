//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"sneakerdrop/internal/handler/middleware"
	"sneakerdrop/internal/pkg/config"
	"sneakerdrop/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(config.JWTConfig{Secret: testSecret})

	router := gin.New()
	router.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	router.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(subject, role string) jwt.Claims {
	return struct {
		Role string `json:"role"`
		jwt.RegisteredClaims
	}{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestRequireAuth(t *testing.T) {
	router := newAuthRouter(t)

	t.Run("valid token passes the subject and role through", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("user-7f3a", "customer"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		require.Equal(t, "user-7f3a", body["userId"])
		require.Equal(t, "customer", body["role"])
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("token signed with the wrong secret is rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.SigningMethodHS256, validClaims("user-7f3a", "customer"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		claims := struct {
			Role string `json:"role"`
			jwt.RegisteredClaims
		}{
			Role: "customer",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-7f3a",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		}
		token := signToken(t, testSecret, jwt.SigningMethodHS256, claims)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("token without a subject is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("", "customer"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "not.a.jwt")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireAdmin(t *testing.T) {
	router := newAuthRouter(t)

	t.Run("admin role is allowed", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("admin-1", middleware.RoleAdmin))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, token)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("non-admin role is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("user-7f3a", "customer"))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("missing role claim is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("user-7f3a", ""))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}
