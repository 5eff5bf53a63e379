package util

import (
	"movie_tracker/configs"
	"os"
	"testing"

	"movie_tracker/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	os.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	configs.LoadEnvVariables()

	user := &model.User{UserId: 42, Username: "maria"}
	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, claims, err := VerifyToken(token)
	require.NoError(t, err)
	require.NotNil(t, parsed)
	require.NotNil(t, claims)
	assert.Equal(t, 42, claims.UserId)
	assert.Equal(t, "maria", claims.Username)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	os.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	configs.LoadEnvVariables()

	user := &model.User{UserId: 42, Username: "maria"}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	_, _, err = VerifyToken(token + "x")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	os.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	configs.LoadEnvVariables()

	user := &model.User{UserId: 42, Username: "maria"}
	token, err := GenerateToken(user)
	require.NoError(t, err)

	os.Setenv("ACCESS_TOKEN_SECRET", "another-secret")
	configs.LoadEnvVariables()

	_, _, err = VerifyToken(token)
	assert.Error(t, err)
}
