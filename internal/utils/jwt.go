package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessSecretExpired reports whether secret is a JWT whose exp claim is at or
// before now.
//
// The signature is not verified: the client never holds the signing key and
// only uses the claim to avoid an identity request that is bound to fail.
//
// Returns:
//
//	expired - true when the exp claim is present and not after now
//	ok      - false when secret is not a parseable JWT or carries no exp;
//	          callers must then treat the secret as opaque
func AccessSecretExpired(secret string, now time.Time) (expired bool, ok bool) {
	if secret == "" {
		return false, false
	}

	token, _, err := jwt.NewParser().ParseUnverified(secret, jwt.MapClaims{})
	if err != nil {
		return false, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, false
	}

	return !exp.After(now), true
}
