package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, CheckPassword("secreto123", hash))
	assert.False(t, CheckPassword("incorrecta", hash))
	assert.False(t, CheckPassword("secreto123", "not-a-hash"))
}
