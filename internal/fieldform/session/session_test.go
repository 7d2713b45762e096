package session

import (
	"strings"
	"testing"
)

func TestRegistryCreateGetDelete(t *testing.T) {
	r := NewRegistry()

	token := r.Create("user-1", "alice@example.com", "Alice")
	if !strings.HasPrefix(token, "session-") {
		t.Errorf("expected token with session- prefix, got %q", token)
	}

	s, ok := r.Get(token)
	if !ok {
		t.Fatal("expected session to exist")
	}
	if s.UserID != "user-1" || s.Email != "alice@example.com" || s.Name != "Alice" {
		t.Errorf("unexpected session identity: %+v", s)
	}

	r.Delete(token)
	if _, ok := r.Get(token); ok {
		t.Error("expected session gone after delete")
	}

	// 删除不存在的token无副作用
	r.Delete("session-0-nope")
}

func TestRegistryTokensUnique(t *testing.T) {
	r := NewRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token := r.Create("user-1", "a@b.c", "A")
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestPasswordStoreVerify(t *testing.T) {
	p := NewPasswordStore()

	hash := HashPassword("secret123")
	if !strings.HasPrefix(hash, "hashed_secret123_") {
		t.Errorf("unexpected hash format: %q", hash)
	}

	p.Set("user-1", hash)
	if !p.Has("user-1") {
		t.Error("expected user-1 to have a password")
	}
	if p.Has("user-2") {
		t.Error("expected user-2 to have no password")
	}

	if !p.Verify("user-1", "secret123") {
		t.Error("expected correct password to verify")
	}
	if p.Verify("user-1", "wrong") {
		t.Error("expected wrong password to fail")
	}
	if p.Verify("user-2", "secret123") {
		t.Error("expected unknown user to fail")
	}
}
