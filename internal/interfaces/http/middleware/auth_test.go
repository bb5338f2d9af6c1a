package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, method jwt.SigningMethod, secret string, expiresIn time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "admin@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func guardedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/admin", AdminAuth(secret), func(c *fiber.Ctx) error {
		subject := ""
		if claims, ok := c.Locals(ClaimsKey).(*jwt.RegisteredClaims); ok {
			subject = claims.Subject
		}
		return c.SendString("ok:" + subject)
	})
	return app
}

func TestAdminAuth(t *testing.T) {
	app := guardedApp(testSecret)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signedToken(t, jwt.SigningMethodHS256, "other", time.Hour), http.StatusUnauthorized},
		{"wrong algorithm", "Bearer " + signedToken(t, jwt.SigningMethodHS512, testSecret, time.Hour), http.StatusUnauthorized},
		{"expired", "Bearer " + signedToken(t, jwt.SigningMethodHS256, testSecret, -time.Hour), http.StatusUnauthorized},
		{"valid", "Bearer " + signedToken(t, jwt.SigningMethodHS256, testSecret, time.Hour), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestAdminAuthWithoutSecretPassesThrough(t *testing.T) {
	resp, err := guardedApp("").Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
