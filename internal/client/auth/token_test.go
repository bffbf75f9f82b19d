package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiry(t *testing.T) {
	expiry := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signToken(t, jwt.MapClaims{"sub": "1", "exp": expiry.Unix()})

	got, ok := TokenExpiry(token)

	require.True(t, ok)
	assert.True(t, expiry.Equal(got))
}

func TestTokenExpiry_NoExpClaim(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "1"})

	_, ok := TokenExpiry(token)

	assert.False(t, ok)
}

func TestTokenExpiry_Malformed(t *testing.T) {
	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, ok := TokenExpiry(token)
		assert.False(t, ok, "token %q", token)
	}
}
