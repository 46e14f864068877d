package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, exp, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager()

	token, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenKindsDoNotCross(t *testing.T) {
	m := newTestManager()

	access, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	refresh, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err)
	_, err = m.ParseRefreshToken(access)
	assert.Error(t, err)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, 24*time.Hour)

	token, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestForeignSecretIsRejected(t *testing.T) {
	m := newTestManager()
	other := NewJWTManager("different-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, _, err := other.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	m := newTestManager()
	_, err := m.ParseAccessToken("not-a-jwt")
	assert.Error(t, err)
}
