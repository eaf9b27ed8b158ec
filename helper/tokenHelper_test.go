package helper

import (
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, refresh, err := m.GenerateAllTokens("chef1", "user_1")
	if err != nil {
		t.Fatalf("GenerateAllTokens: %v", err)
	}
	if token == "" || refresh == "" {
		t.Fatal("empty tokens")
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Username != "chef1" || claims.Uid != "user_1" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a")
	verifier := NewTokenManager("secret-b")

	token, _, err := issuer.GenerateAllTokens("chef1", "user_1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret")
	if _, err := m.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token validated")
	}
}
