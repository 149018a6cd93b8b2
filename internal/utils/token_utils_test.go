package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	now := time.Now()
	token, exp, err := GenerateJWT("user-1", "sess-1", "a@example.com", "AUDITOR", "secret", time.Hour, "tax-admin", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	claims, err := ParseAndValidateJWT(token, "secret", "tax-admin")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "sess-1", claims.ID)
	assert.Equal(t, "AUDITOR", claims.Role)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestParseJWTRejectsWrongSecretAndIssuer(t *testing.T) {
	token, _, err := GenerateJWT("user-1", "sess-1", "a@example.com", "USER", "secret", time.Hour, "tax-admin", time.Now())
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "other", "tax-admin")
	assert.Error(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)
}

func TestParseJWTRejectsExpired(t *testing.T) {
	token, _, err := GenerateJWT("user-1", "sess-1", "a@example.com", "USER", "secret", time.Minute, "", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret", "")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	_, _, err := GenerateJWT("u", "s", "e", "USER", "", time.Hour, "", time.Now())
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("Correct horse", hash))
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	b, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}
