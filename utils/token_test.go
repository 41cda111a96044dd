package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("secret", 42, "user@example.com", "customer", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.AccountID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenCarriesJTI(t *testing.T) {
	token, jti, err := GenerateRefreshToken("secret", 42, "user@example.com", "customer", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	claims, err := ValidateToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	assert.Equal(t, jti, claims.ID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("secret", 42, "user@example.com", "customer", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpiredToken(t *testing.T) {
	token, err := GenerateAccessToken("secret", 42, "user@example.com", "customer", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken("secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hash, "wrong password"))
}
