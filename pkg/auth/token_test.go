package auth

import (
	"testing"

	"github.com/techstore/storefront-backend/pkg/config"
)

func sessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:     "test-secret",
		Issuer:     "techstore",
		TTLMinutes: 60,
	}
}

func TestMintAndParseSessionToken(t *testing.T) {
	cfg := sessionConfig()

	token, err := MintSessionToken(cfg, "user-1", "alice", true, "sid-1")
	if err != nil {
		t.Fatalf("MintSessionToken: %v", err)
	}

	payload, err := ParseSessionToken(cfg, token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if payload.UserID != "user-1" {
		t.Fatalf("user id = %q", payload.UserID)
	}
	if payload.Username != "alice" {
		t.Fatalf("username = %q", payload.Username)
	}
	if !payload.IsAdmin {
		t.Fatal("expected admin flag to survive the round trip")
	}
	if payload.SID != "sid-1" {
		t.Fatalf("sid = %q", payload.SID)
	}
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	cfg := sessionConfig()

	token, err := MintSessionToken(cfg, "user-1", "alice", false, "sid-1")
	if err != nil {
		t.Fatalf("MintSessionToken: %v", err)
	}

	other := cfg
	other.Secret = "different-secret"
	if _, err := ParseSessionToken(other, token); err == nil {
		t.Fatal("expected parse to fail with wrong secret")
	}
}

func TestParseSessionTokenWrongIssuer(t *testing.T) {
	cfg := sessionConfig()

	token, err := MintSessionToken(cfg, "user-1", "alice", false, "sid-1")
	if err != nil {
		t.Fatalf("MintSessionToken: %v", err)
	}

	other := cfg
	other.Issuer = "someone-else"
	if _, err := ParseSessionToken(other, token); err == nil {
		t.Fatal("expected parse to fail with wrong issuer")
	}
}

func TestMintSessionTokenRequiresSID(t *testing.T) {
	if _, err := MintSessionToken(sessionConfig(), "user-1", "alice", false, ""); err == nil {
		t.Fatal("expected error for empty session id")
	}
}
