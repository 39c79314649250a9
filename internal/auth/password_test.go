package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-pass", hash)
}

func TestHashPasswordSalted(t *testing.T) {
	// Two hashes of the same password must differ.
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("p1")
	require.NoError(t, err)

	assert.True(t, CheckPassword("p1", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("p1", "not-a-bcrypt-hash"))
}
