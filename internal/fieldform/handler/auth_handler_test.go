package handler_test

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
	"github.com/bitfantasy/fieldform/internal/fieldform/session"
	"github.com/bitfantasy/fieldform/internal/fieldform/testutil"
)

func TestRegisterLoginMeLogout(t *testing.T) {
	env := testutil.Setup(t)

	// 注册
	w := env.DoRequest("POST", "/api/auth/register", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
		"name":     "Alice",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var token string
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("register: expected session cookie to be set")
	}

	user := testutil.Data(testutil.ParseResponse(w))["user"].(map[string]interface{})
	if user["role"] != "field-worker" {
		t.Errorf("expected default role field-worker, got %v", user["role"])
	}

	// 当前用户
	w = env.DoRequest("GET", "/api/auth/me", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", w.Code)
	}
	me := testutil.Data(testutil.ParseResponse(w))["user"].(map[string]interface{})
	if me["email"] != "alice@example.com" {
		t.Errorf("expected alice@example.com, got %v", me["email"])
	}

	// 登录
	w = env.DoRequest("POST", "/api/auth/login", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// 登出后会话失效
	w = env.DoRequest("POST", "/api/auth/logout", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", w.Code)
	}
	w = env.DoRequest("GET", "/api/auth/me", nil, token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("me after logout: expected 401, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := testutil.Setup(t)
	body := map[string]interface{}{
		"email":    "dup@example.com",
		"password": "pw",
		"name":     "Dup",
	}

	if w := env.DoRequest("POST", "/api/auth/register", body, ""); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if w := env.DoRequest("POST", "/api/auth/register", body, ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for duplicate email, got %d", w.Code)
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	env := testutil.Setup(t)
	w := env.DoRequest("POST", "/api/auth/register", map[string]interface{}{
		"email":    "x@example.com",
		"password": "pw",
		"name":     "X",
		"role":     "superuser",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid role, got %d", w.Code)
	}
}

func TestLoginFailures(t *testing.T) {
	env := testutil.Setup(t)

	// 未注册的邮箱
	w := env.DoRequest("POST", "/api/auth/login", map[string]interface{}{
		"email": "ghost@example.com", "password": "pw",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown email, got %d", w.Code)
	}

	// 用户存在但从未注册过密码（直接种入存储）
	env.Stores.Users.Create(&entity.User{Email: "seeded@example.com", Name: "S"})
	w = env.DoRequest("POST", "/api/auth/login", map[string]interface{}{
		"email": "seeded@example.com", "password": "pw",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for user without password, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "Please register first" {
		t.Errorf("expected register-first message, got %v", resp["message"])
	}

	// 密码错误
	env.DoRequest("POST", "/api/auth/register", map[string]interface{}{
		"email": "bob@example.com", "password": "right", "name": "Bob",
	}, "")
	w = env.DoRequest("POST", "/api/auth/login", map[string]interface{}{
		"email": "bob@example.com", "password": "wrong",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", w.Code)
	}
}

func TestLogoutWithoutCookie(t *testing.T) {
	env := testutil.Setup(t)
	w := env.DoRequest("POST", "/api/auth/logout", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("expected logout without cookie to succeed, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	env := testutil.Setup(t)

	w := env.DoRequest("GET", "/api/forms", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without cookie, got %d", w.Code)
	}

	w = env.DoRequest("GET", "/api/forms", nil, "session-0-bogus")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 with unknown token, got %d", w.Code)
	}
}
