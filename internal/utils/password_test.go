package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hashed_password_1")
	require.NoError(t, err)
	assert.NotEqual(t, "hashed_password_1", hash)
	assert.True(t, IsPasswordHash(hash))
	assert.True(t, CheckPassword(hash, "hashed_password_1"))
	assert.False(t, CheckPassword(hash, "wrong"))

	again, err := HashPassword(hash)
	require.NoError(t, err)
	assert.Equal(t, hash, again)
}

func TestIsPasswordHash(t *testing.T) {
	assert.False(t, IsPasswordHash(""))
	assert.False(t, IsPasswordHash("plain-text-password"))
}
