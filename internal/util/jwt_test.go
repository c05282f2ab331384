package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	token, err := NewAccessToken("secret", 12, time.Hour)
	require.NoError(t, err)

	userID, err := ParseAccessToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), userID)
}

func TestAccessToken_Unique(t *testing.T) {
	a, err := NewAccessToken("secret", 1, time.Hour)
	require.NoError(t, err)
	b, err := NewAccessToken("secret", 1, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseAccessToken_Rejects(t *testing.T) {
	expired, err := NewAccessToken("secret", 1, -time.Minute)
	require.NoError(t, err)
	otherKey, err := NewAccessToken("other", 1, time.Hour)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"expired":     expired,
		"wrong key":   otherKey,
		"not a token": "lorem",
		"empty":       "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAccessToken("secret", raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
