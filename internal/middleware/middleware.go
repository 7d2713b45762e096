package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bitfantasy/fieldform/internal/fieldform/permission"
	"github.com/bitfantasy/fieldform/internal/fieldform/session"
	"github.com/bitfantasy/fieldform/internal/fieldform/store"
)

// Logger 日志中间件，每个请求记一条访问日志
func Logger(logger *zap.Logger) gin.HandlerFunc {
	logger = logger.Named("fieldform.http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Duration("latency", latency),
			zap.String("request_id", c.GetString("request_id")),
		}

		if userID, exists := c.Get("user_id"); exists {
			fields = append(fields, zap.String("user_id", userID.(string)))
		}

		if status >= 500 {
			logger.Error("Server error", fields...)
		} else if status >= 400 {
			logger.Warn("Client error", fields...)
		} else {
			logger.Info("Request handled", fields...)
		}
	}
}

// CORS 跨域中间件
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Cookie, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestID 请求ID中间件
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// SessionAuth 会话认证中间件
// 从cookie取token查会话注册表，命中后把用户身份写入context
func SessionAuth(sessions *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    40100,
				"message": "Not authenticated",
			})
			c.Abort()
			return
		}

		s, ok := sessions.Get(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    40102,
				"message": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set("user_id", s.UserID)
		c.Set("user_email", s.Email)
		c.Set("user_name", s.Name)
		c.Set("session_token", token)
		c.Next()
	}
}

// RequirePermission 权限检查中间件
// 按user_id查用户，以用户角色在权限表中检查资源操作
func RequirePermission(users *store.UserStore, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		user := users.Get(userID)
		if user == nil {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    40300,
				"message": "User not found",
			})
			c.Abort()
			return
		}

		if !permission.HasPermission(user.Role, resource, action) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    40302,
				"message": "Permission denied: " + resource + ":" + action,
			})
			c.Abort()
			return
		}

		c.Set("user_role", string(user.Role))
		c.Next()
	}
}
