package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bitfantasy/fieldform/internal/config"
	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
	"github.com/bitfantasy/fieldform/internal/fieldform/handler"
	"github.com/bitfantasy/fieldform/internal/fieldform/session"
	"github.com/bitfantasy/fieldform/internal/fieldform/store"
	"github.com/bitfantasy/fieldform/internal/shared/mailer"
)

// TestEnv holds test environment resources
type TestEnv struct {
	Stores    *store.Stores
	Sessions  *session.Registry
	Passwords *session.PasswordStore
	Router    *gin.Engine
	T         *testing.T
}

// Setup creates a full in-memory test environment with routes registered.
// The mailer runs in no-op mode so no SMTP connection is attempted.
func Setup(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.SMTP.AdminEmail = "admin@test.com"

	stores := store.NewStores()
	sessions := session.NewRegistry()
	passwords := session.NewPasswordStore()
	mail := mailer.New(mailer.Config{}, zap.NewNop())

	handlers := handler.NewHandlers(stores, sessions, passwords, mail, cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	handler.RegisterRoutes(r, handlers, stores.Users, sessions)

	return &TestEnv{
		Stores:    stores,
		Sessions:  sessions,
		Passwords: passwords,
		Router:    r,
		T:         t,
	}
}

// Login creates a user with the given role and an active session,
// returning the user and a session token usable as a cookie value.
func (e *TestEnv) Login(name, email string, role entity.UserRole) (*entity.User, string) {
	e.T.Helper()
	user := e.Stores.Users.Create(&entity.User{
		Email: email,
		Name:  name,
		Role:  role,
	})
	e.Passwords.Set(user.ID, session.HashPassword("password123"))
	token := e.Sessions.Create(user.ID, user.Email, user.Name)
	return user, token
}

// DoRequest executes an HTTP request against the test router.
// A non-empty token is sent as the session cookie.
func (e *TestEnv) DoRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// Data extracts the data envelope from a parsed response
func Data(resp map[string]interface{}) map[string]interface{} {
	data, _ := resp["data"].(map[string]interface{})
	return data
}
