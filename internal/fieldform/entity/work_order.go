package entity

import (
	"time"
)

// WorkOrderStatus 工单状态
type WorkOrderStatus string

const (
	WorkOrderDraft      WorkOrderStatus = "draft"
	WorkOrderAssigned   WorkOrderStatus = "assigned"
	WorkOrderInProgress WorkOrderStatus = "in-progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderCancelled  WorkOrderStatus = "cancelled"
)

// WorkOrderPriority 工单优先级
type WorkOrderPriority string

const (
	WorkOrderPriorityLow    WorkOrderPriority = "low"
	WorkOrderPriorityMedium WorkOrderPriority = "medium"
	WorkOrderPriorityHigh   WorkOrderPriority = "high"
	WorkOrderPriorityUrgent WorkOrderPriority = "urgent"
)

// WorkOrder 工单
// CompletedAt 在状态首次变为 completed 时打点，之后状态再变化也不清除
type WorkOrder struct {
	ID           string            `json:"id"`
	FormID       string            `json:"formId"`
	FormName     string            `json:"formName"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	AssignedTo   string            `json:"assignedTo"`
	CreatedBy    string            `json:"createdBy"`
	Status       WorkOrderStatus   `json:"status"`
	Priority     WorkOrderPriority `json:"priority"`
	DueDate      string            `json:"dueDate"`
	Location     string            `json:"location,omitempty"`
	SubmissionID string            `json:"submissionId,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	CompletedAt  *time.Time        `json:"completedAt,omitempty"`
	Notes        []string          `json:"notes,omitempty"`
}
