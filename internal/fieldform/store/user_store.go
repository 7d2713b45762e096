package store

import (
	"sync"
	"time"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

// UserStore 用户存储
type UserStore struct {
	mu    sync.RWMutex
	seq   *Sequence
	users map[string]*entity.User
}

// NewUserStore 创建用户存储
func NewUserStore(seq *Sequence) *UserStore {
	return &UserStore{
		seq:   seq,
		users: make(map[string]*entity.User),
	}
}

// Create 分配ID、打创建时间戳并保存，角色为空时默认外勤人员
func (s *UserStore) Create(user *entity.User) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.seq.Next()
	if user.Role == "" {
		user.Role = entity.RoleFieldWorker
	}
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = user
	return user
}

// Get 按ID读取，不存在返回nil
func (s *UserStore) Get(id string) *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[id]
}

// GetByEmail 按邮箱查找，不存在返回nil
func (s *UserStore) GetByEmail(email string) *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}
