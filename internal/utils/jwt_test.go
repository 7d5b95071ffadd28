package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func TestAccessSecretExpired_Expired(t *testing.T) {
	now := time.Now()
	secret := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})

	expired, ok := AccessSecretExpired(secret, now)

	if !ok {
		t.Fatal("expected ok=true for a JWT with exp")
	}
	if !expired {
		t.Error("expected expired=true")
	}
}

func TestAccessSecretExpired_Valid(t *testing.T) {
	now := time.Now()
	secret := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))})

	expired, ok := AccessSecretExpired(secret, now)

	if !ok {
		t.Fatal("expected ok=true for a JWT with exp")
	}
	if expired {
		t.Error("expected expired=false")
	}
}

func TestAccessSecretExpired_NoExpClaim(t *testing.T) {
	secret := signedToken(t, jwt.RegisteredClaims{Subject: "42"})

	_, ok := AccessSecretExpired(secret, time.Now())

	if ok {
		t.Error("expected ok=false without exp claim")
	}
}

func TestAccessSecretExpired_Opaque(t *testing.T) {
	tests := []string{"", "opaque-access-secret", "a.b.c"}

	for _, secret := range tests {
		expired, ok := AccessSecretExpired(secret, time.Now())
		if ok || expired {
			t.Errorf("secret %q: expected (false,false), got (%v,%v)", secret, expired, ok)
		}
	}
}
