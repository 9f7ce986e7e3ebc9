package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	tokens := NewTokens("test-secret-key-12345")
	sid := uuid.New().String()

	token, err := tokens.Generate(Claims{SessionID: sid, UserID: 42, Username: "asha", Role: RoleUser})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.SessionID != sid {
		t.Fatalf("expected sid %s, got %s", sid, claims.SessionID)
	}
	if claims.UserID != 42 || claims.Username != "asha" || claims.Role != RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTRejectsForeignSecret(t *testing.T) {
	token, err := NewTokens("one").Generate(Claims{SessionID: "s"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewTokens("two").Validate(token); err == nil {
		t.Fatal("expected validation failure with a different secret")
	}
}

func TestJWTRequiresSession(t *testing.T) {
	if _, err := NewTokens("secret").Generate(Claims{}); err == nil {
		t.Fatal("expected error for empty session id")
	}
	if _, err := NewTokens("").Generate(Claims{SessionID: "s"}); err == nil {
		t.Fatal("expected error for missing secret")
	}
}
