package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

// WorkOrderStore 工单存储
type WorkOrderStore struct {
	mu     sync.RWMutex
	seq    *Sequence
	orders map[string]*entity.WorkOrder
}

// NewWorkOrderStore 创建工单存储
func NewWorkOrderStore(seq *Sequence) *WorkOrderStore {
	return &WorkOrderStore{
		seq:    seq,
		orders: make(map[string]*entity.WorkOrder),
	}
}

// Create 分配ID、打创建/更新时间戳并保存
func (s *WorkOrderStore) Create(order *entity.WorkOrder) *entity.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.seq.Next()
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	s.orders[order.ID] = order
	return order
}

// Get 按ID读取，不存在返回nil
func (s *WorkOrderStore) Get(id string) *entity.WorkOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders[id]
}

// GetAll 按状态/指派人等值过滤，按创建时间倒序返回
func (s *WorkOrderStore) GetAll(status entity.WorkOrderStatus, assignedTo string) []*entity.WorkOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entity.WorkOrder
	for _, o := range s.orders {
		if status != "" && o.Status != status {
			continue
		}
		if assignedTo != "" && o.AssignedTo != assignedTo {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// WorkOrderPatch 工单局部更新，nil字段保持原值，Notes 非nil时整体替换
type WorkOrderPatch struct {
	FormID       *string                   `json:"formId"`
	FormName     *string                   `json:"formName"`
	Title        *string                   `json:"title"`
	Description  *string                   `json:"description"`
	AssignedTo   *string                   `json:"assignedTo"`
	Status       *entity.WorkOrderStatus   `json:"status"`
	Priority     *entity.WorkOrderPriority `json:"priority"`
	DueDate      *string                   `json:"dueDate"`
	Location     *string                   `json:"location"`
	SubmissionID *string                   `json:"submissionId"`
	Notes        []string                  `json:"notes"`
}

// Update 浅合并局部字段并刷新 UpdatedAt，不存在返回nil
// 状态变为 completed 的那次更新打点 CompletedAt，已有的打点不会被清除或覆盖
func (s *WorkOrderStore) Update(id string, patch WorkOrderPatch) *entity.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(id, patch)
}

func (s *WorkOrderStore) update(id string, patch WorkOrderPatch) *entity.WorkOrder {
	old, ok := s.orders[id]
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
	if patch.Title != nil {
		updated.Title = *patch.Title
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.AssignedTo != nil {
		updated.AssignedTo = *patch.AssignedTo
	}
	if patch.Status != nil {
		updated.Status = *patch.Status
	}
	if patch.Priority != nil {
		updated.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		updated.DueDate = *patch.DueDate
	}
	if patch.Location != nil {
		updated.Location = *patch.Location
	}
	if patch.SubmissionID != nil {
		updated.SubmissionID = *patch.SubmissionID
	}
	if patch.Notes != nil {
		updated.Notes = patch.Notes
	}

	now := time.Now().UTC()
	updated.UpdatedAt = now
	if updated.Status == entity.WorkOrderCompleted && old.CompletedAt == nil {
		updated.CompletedAt = &now
	}

	s.orders[id] = &updated
	return &updated
}

// AddNote 追加一条带RFC3339时间戳前缀的备注，不存在返回nil
func (s *WorkOrderStore) AddNote(id string, note string) *entity.WorkOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.orders[id]
	if !ok {
		return nil
	}

	notes := make([]string, 0, len(old.Notes)+1)
	notes = append(notes, old.Notes...)
	notes = append(notes, fmt.Sprintf("%s: %s", time.Now().UTC().Format(time.RFC3339), note))
	return s.update(id, WorkOrderPatch{Notes: notes})
}

// Delete 删除工单，返回是否存在
func (s *WorkOrderStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return false
	}
	delete(s.orders, id)
	return true
}
