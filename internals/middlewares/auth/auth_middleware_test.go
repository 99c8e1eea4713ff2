package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomcreatives_backend/internals/configs"
)

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", RequireLogin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals(LocUserID),
			"role":   c.Locals(LocUserRole),
		})
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func freshClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"id":    uuid.New().String(),
		"email": "hari@zoomcreatives.jp",
		"role":  "admin",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
}

func TestRequireLoginMissingBearer(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireLoginBadSignature(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := testApp()

	token := signToken(t, "wrong-secret", freshClaims())
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireLoginExpiredToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := testApp()

	claims := freshClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, "test-secret", claims)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireLoginValidToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := testApp()

	token := signToken(t, "test-secret", freshClaims())
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOnlyRolesGate(t *testing.T) {
	app := fiber.New()
	app.Get("/super",
		func(c *fiber.Ctx) error {
			c.Locals(LocUserRole, "admin")
			return c.Next()
		},
		OnlyRoles("superadmin only", "superadmin"),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/super", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
