package store

import (
	"sync"
	"time"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

// FormStore 表单存储
// 记录写入后视为不可变，Update 以副本替换，读取方拿到的指针不会被后续写入修改
type FormStore struct {
	mu    sync.RWMutex
	seq   *Sequence
	forms map[string]*entity.Form
	ids   []string // 插入顺序，GetAll 按此返回
}

// NewFormStore 创建表单存储
func NewFormStore(seq *Sequence) *FormStore {
	return &FormStore{
		seq:   seq,
		forms: make(map[string]*entity.Form),
	}
}

// Create 分配ID、打创建/更新时间戳并保存，总是成功
func (s *FormStore) Create(form *entity.Form) *entity.Form {
	s.mu.Lock()
	defer s.mu.Unlock()

	form.ID = s.seq.Next()
	now := time.Now().UTC()
	form.CreatedAt = now
	form.UpdatedAt = now

	s.forms[form.ID] = form
	s.ids = append(s.ids, form.ID)
	return form
}

// Get 按ID读取，不存在返回nil
func (s *FormStore) Get(id string) *entity.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forms[id]
}

// GetAll 按插入顺序返回全部表单，userID 非空时按归属过滤
func (s *FormStore) GetAll(userID string) []*entity.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Form, 0, len(s.ids))
	for _, id := range s.ids {
		f := s.forms[id]
		if userID != "" && f.UserID != userID {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Templates 返回模板标记为真的表单
func (s *FormStore) Templates() []*entity.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.Form
	for _, id := range s.ids {
		if f := s.forms[id]; f.IsTemplate {
			out = append(out, f)
		}
	}
	return out
}

// FormPatch 表单局部更新，nil字段保持原值，Fields 非nil时整体替换
type FormPatch struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Fields      []entity.FormField `json:"fields"`
	UserID      *string            `json:"userId"`
	TemplateID  *string            `json:"templateId"`
	IsTemplate  *bool              `json:"isTemplate"`
	Category    *string            `json:"category"`
}

// Update 浅合并局部字段并刷新 UpdatedAt，不存在返回nil
func (s *FormStore) Update(id string, patch FormPatch) *entity.Form {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.forms[id]
	if !ok {
		return nil
	}

	updated := *old
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Fields != nil {
		updated.Fields = patch.Fields
	}
	if patch.UserID != nil {
		updated.UserID = *patch.UserID
	}
	if patch.TemplateID != nil {
		updated.TemplateID = *patch.TemplateID
	}
	if patch.IsTemplate != nil {
		updated.IsTemplate = *patch.IsTemplate
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	updated.UpdatedAt = time.Now().UTC()

	s.forms[id] = &updated
	return &updated
}

// Delete 删除表单，返回是否存在
// 不级联清理该表单的提交或工单
func (s *FormStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.forms[id]; !ok {
		return false
	}
	delete(s.forms, id)
	for i, fid := range s.ids {
		if fid == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return true
}
