package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)

	assert.True(t, CompareHashAndPassword(hash, "s3cretpass"))
	assert.False(t, CompareHashAndPassword(hash, "wrongpass"))
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	b, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCompareHashAndPasswordGarbageHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "s3cretpass"))
}
