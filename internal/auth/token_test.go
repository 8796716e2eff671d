package auth

import (
	"testing"
	"time"

	"taskvault.com/taskvault/internal/constants"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	token, err := manager.Issue("user-1", constants.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", claims.UserID)
	}
	if claims.Role != constants.RoleAdmin {
		t.Errorf("expected admin role, got %s", claims.Role)
	}
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.Issue("user-1", constants.RoleUser)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := manager.Verify(token); err == nil {
		t.Error("expected an expired token to be rejected")
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("user-1", constants.RoleUser)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("expected a foreign signature to be rejected")
	}
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)

	if _, err := manager.Verify("not-a-token"); err == nil {
		t.Error("expected a malformed token to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("longenough")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "longenough" {
		t.Error("hash must not equal the plaintext")
	}

	if !CheckPasswordHash("longenough", hash) {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash("wrongpassword", hash) {
		t.Error("wrong password should not verify")
	}
}
