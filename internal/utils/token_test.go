package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken("s3cret", "ana@edenspa.com", 30)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	require.NotEmpty(t, tok.JTI)
	assert.WithinDuration(t, time.Now().UTC().Add(30*time.Minute), tok.Exp, 5*time.Second)

	jti, identifier, err := ParseSessionToken("s3cret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, tok.JTI, jti)
	assert.Equal(t, "ana@edenspa.com", identifier)
}

func TestSessionTokenUniqueJTI(t *testing.T) {
	a, err := NewSessionToken("s3cret", "ana@edenspa.com", 30)
	require.NoError(t, err)
	b, err := NewSessionToken("s3cret", "ana@edenspa.com", 30)
	require.NoError(t, err)
	assert.NotEqual(t, a.JTI, b.JTI)
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	tok, err := NewSessionToken("s3cret", "ana@edenspa.com", 30)
	require.NoError(t, err)

	_, _, err = ParseSessionToken("other", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	_, _, err := ParseSessionToken("s3cret", "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenRejectsExpired(t *testing.T) {
	tok, err := NewSessionToken("s3cret", "ana@edenspa.com", -1)
	require.NoError(t, err)

	_, _, err = ParseSessionToken("s3cret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
