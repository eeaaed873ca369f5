package auth

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignJWT(Claims{
		Email: "dev@example.com",
		Name:  "Dev User",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "google:123",
		},
	})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	claims, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims.Subject != "google:123" {
		t.Fatalf("subject = %q", claims.Subject)
	}
	if claims.Email != "dev@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignJWT(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "google:123"}})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	parts := strings.Split(token, ".")
	parts[2] = "AAAA" + parts[2][4:]
	if _, err := VerifyJWT(strings.Join(parts, ".")); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestSignRequiresSubject(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := SignJWT(Claims{Email: "dev@example.com"}); err == nil {
		t.Fatal("expected error for missing subject")
	}
}
