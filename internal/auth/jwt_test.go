package auth_test

import (
	"testing"
	"time"

	"github.com/aitoolhub/aitoolhub/internal/auth"
	"github.com/aitoolhub/aitoolhub/internal/store"
)

func testUser() *store.User {
	return &store.User{
		ID:    "u1",
		Name:  "Root",
		Email: "root@example.com",
		Role:  store.RoleAdmin,
	}
}

func TestToken_RoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(testUser(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := auth.ParseToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", claims.UserID)
	}
	if claims.Email != "root@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != store.RoleAdmin {
		t.Errorf("Role = %q, want admin", claims.Role)
	}
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken(testUser(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := auth.ParseToken(token, "other-secret"); err == nil {
		t.Error("ParseToken accepted a token signed with a different secret")
	}
}

func TestToken_Expired(t *testing.T) {
	token, err := auth.GenerateToken(testUser(), "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := auth.ParseToken(token, "secret"); err == nil {
		t.Error("ParseToken accepted an expired token")
	}
}

func TestToken_Garbage(t *testing.T) {
	if _, err := auth.ParseToken("not.a.jwt", "secret"); err == nil {
		t.Error("ParseToken accepted garbage")
	}
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := auth.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash equals plaintext")
	}
	if !auth.CheckPassword(hash, "hunter22") {
		t.Error("CheckPassword rejected the right password")
	}
	if auth.CheckPassword(hash, "hunter23") {
		t.Error("CheckPassword accepted the wrong password")
	}
}
