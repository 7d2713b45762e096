package store

import (
	"sort"
	"sync"
	"time"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

// TaskStore 调度任务存储
type TaskStore struct {
	mu    sync.RWMutex
	seq   *Sequence
	tasks map[string]*entity.Task
}

// NewTaskStore 创建调度任务存储
func NewTaskStore(seq *Sequence) *TaskStore {
	return &TaskStore{
		seq:   seq,
		tasks: make(map[string]*entity.Task),
	}
}

// Create 分配ID、打创建时间戳并保存
func (s *TaskStore) Create(task *entity.Task) *entity.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.seq.Next()
	task.CreatedAt = time.Now().UTC()
	s.tasks[task.ID] = task
	return task
}

// Get 按ID读取，不存在返回nil
func (s *TaskStore) Get(id string) *entity.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks[id]
}

// GetAll 按创建时间倒序返回全部任务
func (s *TaskStore) GetAll() []*entity.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// TaskPatch 任务局部更新，nil字段保持原值
// 状态切换不做约束，任意状态可以改为任意状态
type TaskPatch struct {
	FormID     *string              `json:"formId"`
	FormName   *string              `json:"formName"`
	AssignedTo *string              `json:"assignedTo"`
	DueDate    *string              `json:"dueDate"`
	Status     *entity.TaskStatus   `json:"status"`
	Location   *string              `json:"location"`
	Priority   *entity.TaskPriority `json:"priority"`
}

// Update 浅合并局部字段，不存在返回nil
func (s *TaskStore) Update(id string, patch TaskPatch) *entity.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.tasks[id]
	if !ok {
		return nil
	}

	updated := *old
	if patch.FormID != nil {
		updated.FormID = *patch.FormID
	}
	if patch.FormName != nil {
		updated.FormName = *patch.FormName
	}
	if patch.AssignedTo != nil {
		updated.AssignedTo = *patch.AssignedTo
	}
	if patch.DueDate != nil {
		updated.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.Location != nil {
		updated.Location = *patch.Location
	}
	if patch.Priority != nil {
		updated.Priority = *patch.Priority
	}

	s.tasks[id] = &updated
	return &updated
}

// Delete 删除任务，返回是否存在
func (s *TaskStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}
