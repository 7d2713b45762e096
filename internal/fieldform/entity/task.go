package entity

import (
	"time"
)

// TaskStatus 调度任务状态，状态之间可任意切换
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// TaskPriority 任务优先级
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Task 调度任务，把某个表单指派给外勤人员
type Task struct {
	ID         string       `json:"id"`
	FormID     string       `json:"formId"`
	FormName   string       `json:"formName"`
	AssignedTo string       `json:"assignedTo"`
	DueDate    string       `json:"dueDate"`
	Status     TaskStatus   `json:"status"`
	Location   string       `json:"location,omitempty"`
	Priority   TaskPriority `json:"priority"`
	CreatedAt  time.Time    `json:"createdAt"`
}
