package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarafcore/sarafcore_backend/internal/utils"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, time.Hour, "sarafcore-backend")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "sarafcore-backend", claims.Issuer)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, time.Hour, "sarafcore-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestValidateExpiredJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-123", testSecret, -time.Minute, "sarafcore-backend")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, utils.CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, utils.CheckPasswordHash("hunter3", hash))
}
