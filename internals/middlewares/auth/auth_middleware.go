package auth

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"zoomcreatives_backend/internals/configs"
	helper "zoomcreatives_backend/internals/helpers"
)

// RequireLogin verifies the bearer token and stores its claims in Locals.
// Expired or malformed tokens force a re-login; there is no refresh flow.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] token parse:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: Invalid Token")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] exp validation:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user id claim:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: Invalid or missing user ID")
		}
		c.Locals(LocUserID, userID.String())
		storeBasicClaimsToLocals(c, claims)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}
