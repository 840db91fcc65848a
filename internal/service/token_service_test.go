package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret-at-least-32-chars-long", time.Hour, "trustwallet")
	userID := uuid.New()
	address := "0x1234567890abcdef1234567890abcdef12345678"

	tokenString, expiresAt, err := svc.Generate(userID, address, "user")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, address, claims.WalletAddress)
	assert.Equal(t, "user", claims.Role)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService("correct-secret-at-least-32-chars", time.Hour, "trustwallet")
	other := NewJWTTokenService("wrong-secret-at-least-32-chars!!", time.Hour, "trustwallet")

	tokenString, _, err := svc.Generate(uuid.New(), "0xabc", "user")
	require.NoError(t, err)

	_, err = other.Validate(tokenString)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService("test-secret-at-least-32-chars-long", -time.Minute, "trustwallet")

	tokenString, _, err := svc.Generate(uuid.New(), "0xabc", "user")
	require.NoError(t, err)

	_, err = svc.Validate(tokenString)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Garbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret-at-least-32-chars-long", time.Hour, "trustwallet")

	_, err := svc.Validate("not-a-jwt")
	assert.Error(t, err)
}
