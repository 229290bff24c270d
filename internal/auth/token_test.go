package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerifyToken(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tok, err := IssueToken("secret", "owner", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := VerifyToken(tok, "secret", now.Add(time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Role != "admin" {
		t.Fatalf("expected role admin, got %q", claims.Role)
	}
	if claims.Username != "owner" {
		t.Fatalf("expected username owner, got %q", claims.Username)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tok, err := IssueToken("secret", "owner", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Still valid just inside the 2h window.
	if _, err := VerifyToken(tok, "secret", now.Add(TokenTTL-time.Minute)); err != nil {
		t.Fatalf("unexpected error inside ttl: %v", err)
	}

	if _, err := VerifyToken(tok, "secret", now.Add(TokenTTL+time.Minute)); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestVerifyToken_FailuresCollapse(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tok, err := IssueToken("other-secret", "owner", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Wrong signature, garbage, and missing token all yield the same error.
	for _, in := range []string{tok, "not-a-jwt", ""} {
		if _, err := VerifyToken(in, "secret", now); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", in, err)
		}
	}
}
