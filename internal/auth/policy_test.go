package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestAllowAllPolicy(t *testing.T) {
	policy := NewAllowAllPolicy()

	identity, err := policy.Authenticate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity == nil {
		t.Fatalf("expected identity")
	}
	if err := policy.Authorize(identity, "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJWTPolicy_Authenticate(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	policy := NewJWTPolicy(manager)

	token, err := manager.Issue("user-1", "user@example.com", "admin")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	identity, err := policy.Authenticate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Subject != "user-1" || identity.Role != "admin" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	if _, err := policy.Authenticate(""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
	if _, err := policy.Authenticate("not-a-token"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for garbage token, got %v", err)
	}
}

func TestJWTPolicy_Authorize(t *testing.T) {
	policy := NewJWTPolicy(NewJWTManager("s", time.Hour))

	if err := policy.Authorize(&Identity{Role: "admin"}, "admin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := policy.Authorize(&Identity{Role: "viewer"}, "admin"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for role mismatch, got %v", err)
	}
	if err := policy.Authorize(nil, "admin"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for missing identity, got %v", err)
	}
}

func TestStaticTokenPolicy(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("super-secret-token"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash token: %v", err)
	}
	policy := NewStaticTokenPolicy(string(hash))

	identity, err := policy.Authenticate("super-secret-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.Role != "admin" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	if _, err := policy.Authenticate("wrong-token"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong token, got %v", err)
	}
	if _, err := policy.Authenticate(""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}

	empty := NewStaticTokenPolicy("")
	if _, err := empty.Authenticate("anything"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized with no configured hash, got %v", err)
	}
}

func TestNewPolicy_ModeSelection(t *testing.T) {
	manager := NewJWTManager("s", time.Hour)

	if _, ok := NewPolicy("jwt", manager, "").(*JWTPolicy); !ok {
		t.Fatalf("expected jwt mode to select JWTPolicy")
	}
	if _, ok := NewPolicy("token", manager, "hash").(*StaticTokenPolicy); !ok {
		t.Fatalf("expected token mode to select StaticTokenPolicy")
	}
	if _, ok := NewPolicy("", manager, "").(*AllowAllPolicy); !ok {
		t.Fatalf("expected empty mode to fall back to allow-all")
	}
	if _, ok := NewPolicy("something-else", manager, "").(*AllowAllPolicy); !ok {
		t.Fatalf("expected unknown mode to fall back to allow-all")
	}
}
