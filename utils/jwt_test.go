package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateJWT(42, "alice", secret)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	claims, err := ParseJWT(tok, secret)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Identity != "alice" {
		t.Fatalf("identity mismatch: got %q want %q", claims.Identity, "alice")
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT(1, "bob", []byte("right-secret"))
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := ParseJWT(tok, []byte("wrong-secret")); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestParseJWT_Tampered(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateJWT(7, "carol", secret)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	tampered := tok[:len(tok)-2] + "xx"
	if _, err := ParseJWT(tampered, secret); err == nil {
		t.Fatal("expected error for tampered token, got nil")
	}
}

func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID:   1,
		Identity: "dora",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := ParseJWT(tok, secret); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseJWT_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseJWT("not.a.jwt", []byte("k")); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
