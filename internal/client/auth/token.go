package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry peeks at the exp claim of a bearer token without verifying
// the signature. The token stays opaque to the session core; this exists
// only so the status display can show when the session runs out. A token
// that does not decode reports (zero, false), never an invalid session.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
