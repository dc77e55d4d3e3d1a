package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateJWT(testSecret, "ops", RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateJWT(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testSecret, "ops", RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(strings.Repeat("x", 32), token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	token, err := GenerateJWT(testSecret, "ops", RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(testSecret, token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateRejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: RoleAdmin})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateJWT(testSecret, signed)
	assert.Error(t, err)
}

func TestShortSecretsAreRejected(t *testing.T) {
	_, err := GenerateJWT("short", "ops", RoleAdmin, time.Hour)
	assert.Error(t, err)

	_, err = ValidateJWT("", "token")
	assert.Error(t, err)
}
