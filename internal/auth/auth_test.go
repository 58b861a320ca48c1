package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPassword(hash, "password123") {
		t.Fatalf("hash did not verify its own password")
	}
	if CheckPassword(hash, "password124") {
		t.Fatalf("wrong password verified")
	}
}

func TestTokenIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("u1", time.Now())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	userID, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if userID != "u1" {
		t.Fatalf("subject = %q, want u1", userID)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue("u1", time.Now())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatalf("token verified under a different secret")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)
	token, err := issuer.Issue("u1", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := issuer.Verify(token); err == nil {
		t.Fatalf("expired token verified")
	}
}
