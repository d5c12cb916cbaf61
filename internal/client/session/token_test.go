package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenClaims_JWT(t *testing.T) {
	iat := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	exp := iat.Add(time.Hour)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		IssuedAt:  jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	c, ok := ParseTokenClaims(tok)
	require.True(t, ok)
	assert.Equal(t, "u1", c.Subject)
	assert.True(t, c.IssuedAt.Equal(iat))
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.False(t, c.Expired(iat.Add(time.Minute)))
	assert.True(t, c.Expired(exp.Add(time.Second)))
}

func TestParseTokenClaims_Opaque(t *testing.T) {
	_, ok := ParseTokenClaims("tok123")
	assert.False(t, ok)
}

func TestTokenClaims_NoExpiryNeverExpires(t *testing.T) {
	assert.False(t, TokenClaims{}.Expired(time.Now()))
}
