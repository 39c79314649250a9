package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", 1*time.Hour)

	token, err := tm.Issue("user-123", "a@x.com", "555-0100", "ChannelA", "logos/abc")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "555-0100", claims.Phone)
	assert.Equal(t, "ChannelA", claims.ChannelName)
	assert.Equal(t, "logos/abc", claims.LogoID)
}

func TestParseExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -1*time.Minute)

	token, err := tm.Issue("user-123", "a@x.com", "", "ChannelA", "")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTamperedToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 1*time.Hour)

	token, err := tm.Issue("user-123", "a@x.com", "", "ChannelA", "")
	require.NoError(t, err)

	_, err = tm.Parse(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", 1*time.Hour)
	verifier := NewTokenManager("secret-two", 1*time.Hour)

	token, err := issuer.Issue("user-123", "a@x.com", "", "ChannelA", "")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 1*time.Hour)

	_, err := tm.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
