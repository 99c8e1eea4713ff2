package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Locals keys — keep these uniform across middleware and controllers.
const (
	LocUserID    = "user_id"
	LocUserEmail = "user_email"
	LocUserRole  = "userRole"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := c.Get("Authorization")
	if auth == "" {
		return "", errors.New("Unauthorized: Login First")
	}
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || auth[:len(prefix)] != prefix {
		return "", errors.New("Unauthorized: Invalid Authorization header")
	}
	return auth[len(prefix):], nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing exp claim")
	}
	if time.Now().Add(-leeway).Unix() > int64(exp) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing id claim")
	}
	return uuid.Parse(raw)
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if email, ok := claims["email"].(string); ok {
		c.Locals(LocUserEmail, email)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals(LocUserRole, role)
	}
}
