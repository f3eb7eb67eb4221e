package services

import (
	"testing"
	"time"

	"ezpt/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	service := NewAuthService(nil, "test-secret")

	token, err := service.generateToken(&models.User{ID: 1, Username: "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "admin", claims.Subject)
	assert.True(t, claims.IsAdmin)
	assert.NotEmpty(t, claims.ID, "token carries a jti")
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewAuthService(nil, "secret-a").generateToken(&models.User{ID: 1, Username: "admin"})
	require.NoError(t, err)

	_, err = NewAuthService(nil, "secret-b").ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	service := NewAuthService(nil, "test-secret")

	_, err := service.ParseToken("not-a-token")
	assert.Error(t, err)
	_, err = service.ParseToken("")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	service := NewAuthService(nil, "test-secret")

	claims := SessionClaims{
		UserID:  1,
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * sessionTTL)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-sessionTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.ParseToken(token)
	assert.Error(t, err)
}
