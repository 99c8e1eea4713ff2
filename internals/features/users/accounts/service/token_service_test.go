package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zoomcreatives_backend/internals/configs"
)

func TestGenerateAndParseToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	id := uuid.New()
	token, err := GenerateToken(id, "ops@zoomcreatives.jp", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims["id"])
	assert.Equal(t, "ops@zoomcreatives.jp", claims["email"])
	assert.Equal(t, "admin", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(TokenTTL).Unix(), int64(exp), 5)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	configs.JWTSecret = "test-secret"
	token, err := GenerateToken(uuid.New(), "ops@zoomcreatives.jp", "admin")
	require.NoError(t, err)

	configs.JWTSecret = "other-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	configs.JWTSecret = "test-secret"

	past := time.Now().Add(-time.Hour)
	claims := jwt.MapClaims{
		"id":    uuid.New().String(),
		"email": "ops@zoomcreatives.jp",
		"role":  "admin",
		"iat":   past.Add(-TokenTTL).Unix(),
		"exp":   past.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := GenerateToken(uuid.New(), "ops@zoomcreatives.jp", "admin")
	assert.Error(t, err)
}
