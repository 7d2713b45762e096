package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/fieldform/internal/config"
	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
	"github.com/bitfantasy/fieldform/internal/fieldform/session"
	"github.com/bitfantasy/fieldform/internal/fieldform/store"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	users     *store.UserStore
	sessions  *session.Registry
	passwords *session.PasswordStore
	cfg       *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(users *store.UserStore, sessions *session.Registry, passwords *session.PasswordStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		users:     users,
		sessions:  sessions,
		passwords: passwords,
		cfg:       cfg,
	}
}

// Register 注册并直接登录
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		BadRequest(c, "Email, password and name are required")
		return
	}
	if h.users.GetByEmail(req.Email) != nil {
		BadRequest(c, "Email already registered")
		return
	}

	role := entity.UserRole(req.Role)
	if req.Role != "" && !role.Valid() {
		BadRequest(c, "Invalid role: "+req.Role)
		return
	}

	user := h.users.Create(&entity.User{
		Email: req.Email,
		Name:  req.Name,
		Role:  role,
	})
	h.passwords.Set(user.ID, session.HashPassword(req.Password))

	token := h.sessions.Create(user.ID, user.Email, user.Name)
	h.setSessionCookie(c, token)

	Created(c, gin.H{"user": user})
}

// Login 登录
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		BadRequest(c, "Email and password are required")
		return
	}

	user := h.users.GetByEmail(req.Email)
	if user == nil {
		Unauthorized(c, "Invalid credentials")
		return
	}
	if !h.passwords.Has(user.ID) {
		Unauthorized(c, "Please register first")
		return
	}
	if !h.passwords.Verify(user.ID, req.Password) {
		Unauthorized(c, "Invalid credentials")
		return
	}

	token := h.sessions.Create(user.ID, user.Email, user.Name)
	h.setSessionCookie(c, token)

	Success(c, gin.H{"user": user})
}

// Logout 登出
// POST /api/auth/logout
// 无cookie时也返回成功，保证幂等
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err == nil && token != "" {
		h.sessions.Delete(token)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", h.cfg.Server.CookieSecure, true)
	Success(c, gin.H{"message": "Logged out"})
}

// Me 当前登录用户
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.users.Get(GetUserID(c))
	if user == nil {
		Unauthorized(c, "Not authenticated")
		return
	}
	Success(c, gin.H{"user": user})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(session.CookieName, token, session.CookieMaxAge, "/", "", h.cfg.Server.CookieSecure, true)
}
