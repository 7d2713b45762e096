// Package session 内存会话注册表
// token → 用户身份的进程内映射，登录/注册时创建，登出时删除。
// 服务端不做过期清理，只依赖客户端cookie的max-age提示
package session

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// CookieName 会话cookie名
const CookieName = "fieldform-session"

// CookieMaxAge 客户端cookie有效期（7天）
const CookieMaxAge = 7 * 24 * 60 * 60

// Session 会话身份
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Registry 会话注册表
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewRegistry 创建会话注册表
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]Session),
	}
}

// Create 生成token并记录会话，返回token由调用方写入cookie
// token由当前时间加随机后缀拼成，非加密安全
func (r *Registry) Create(userID, email, name string) string {
	token := fmt.Sprintf("session-%d-%s", time.Now().UnixMilli(), randomSuffix())
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = Session{UserID: userID, Email: email, Name: name}
	return token
}

// Get 按token查找会话
func (r *Registry) Get(token string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	return s, ok
}

// Delete 删除会话，token不存在时无副作用
func (r *Registry) Delete(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

func randomSuffix() string {
	return strconv.FormatInt(rand.Int63n(1<<40), 36)
}
