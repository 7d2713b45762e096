package session

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// PasswordStore 演示用的密码存储
// 沿用原型的散列格式 hashed_{password}_{timestamp} 与子串校验，
// 不提供真实的安全保证，仅支撑登录流程
type PasswordStore struct {
	mu     sync.RWMutex
	hashes map[string]string // userID → hash
}

// NewPasswordStore 创建密码存储
func NewPasswordStore() *PasswordStore {
	return &PasswordStore{
		hashes: make(map[string]string),
	}
}

// HashPassword 生成演示散列
func HashPassword(password string) string {
	return fmt.Sprintf("hashed_%s_%d", password, time.Now().UnixMilli())
}

// Set 记录用户的密码散列
func (p *PasswordStore) Set(userID, hash string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hashes[userID] = hash
}

// Has 用户是否已注册过密码
func (p *PasswordStore) Has(userID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.hashes[userID]
	return ok
}

// Verify 校验密码，散列中包含 hashed_{password}_ 即视为匹配
func (p *PasswordStore) Verify(userID, password string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	hash, ok := p.hashes[userID]
	if !ok {
		return false
	}
	return strings.Contains(hash, fmt.Sprintf("hashed_%s_", password))
}
