package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

// SubmissionStore 提交记录存储，记录创建后不再修改
type SubmissionStore struct {
	mu   sync.RWMutex
	seq  *Sequence
	subs map[string]*entity.Submission
}

// NewSubmissionStore 创建提交记录存储
func NewSubmissionStore(seq *Sequence) *SubmissionStore {
	return &SubmissionStore{
		seq:  seq,
		subs: make(map[string]*entity.Submission),
	}
}

// Create 分配ID并保存，其余字段（含SubmittedAt与Status）由调用方填好
func (s *SubmissionStore) Create(sub *entity.Submission) *entity.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub.ID = s.seq.Next()
	s.subs[sub.ID] = sub
	return sub
}

// Get 按ID读取，不存在返回nil
func (s *SubmissionStore) Get(id string) *entity.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subs[id]
}

// Search 在 formName / submittedBy / location 上做大小写不敏感的子串匹配
func (s *SubmissionStore) Search(query string) []*entity.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []*entity.Submission
	for _, sub := range s.subs {
		if strings.Contains(strings.ToLower(sub.FormName), q) ||
			strings.Contains(strings.ToLower(sub.SubmittedBy), q) ||
			strings.Contains(strings.ToLower(sub.Location), q) {
			out = append(out, sub)
		}
	}
	sortBySubmittedAtDesc(out)
	return out
}

// Filter 按状态和表单ID做等值过滤，空串表示不过滤，按提交时间倒序返回
func (s *SubmissionStore) Filter(status entity.SubmissionStatus, formID string) []*entity.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Submission
	for _, sub := range s.subs {
		if status != "" && sub.Status != status {
			continue
		}
		if formID != "" && sub.FormID != formID {
			continue
		}
		out = append(out, sub)
	}
	sortBySubmittedAtDesc(out)
	return out
}

func sortBySubmittedAtDesc(subs []*entity.Submission) {
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
	})
}
