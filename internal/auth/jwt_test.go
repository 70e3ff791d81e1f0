package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	email := "test@example.com"

	token, err := GenerateToken(userID, email, RoleStaff)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if claims.UserID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != email {
		t.Fatalf("Expected email %s, got %s", email, claims.Email)
	}
	if claims.Role != RoleStaff {
		t.Fatalf("Expected role %s, got %s", RoleStaff, claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestTokenTTLFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	t.Setenv("JWT_TTL", "1ns")

	token, err := GenerateToken(uuid.New().String(), "test@example.com", RoleStaff)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTokenTTLInvalidFallsBack(t *testing.T) {
	t.Setenv("JWT_TTL", "not-a-duration")

	if got := tokenTTL(); got != defaultTokenTTL {
		t.Fatalf("expected fallback TTL %v, got %v", defaultTokenTTL, got)
	}
}
