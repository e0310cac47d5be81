package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidateJWT(t *testing.T) {
	tokenStr, err := GenerateJWT(42, true, testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := ValidateJWT(tokenStr, testSecret)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.PlayerID)
	assert.True(t, claims.Staff)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	tokenStr, err := GenerateJWT(42, false, testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenStr, "another-secret")
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	tokenStr, err := GenerateJWT(42, false, testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenStr, testSecret)
	require.Error(t, err)
	assert.Equal(t, "token has expired", err.Error())
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token", testSecret)
	assert.Error(t, err)
}
