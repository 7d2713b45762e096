package entity

import (
	"time"
)

// JSONB 提交数据，字段ID → 值
type JSONB map[string]interface{}

// SubmissionStatus 提交状态
type SubmissionStatus string

const (
	SubmissionCompleted SubmissionStatus = "completed"
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionFlagged   SubmissionStatus = "flagged"
)

// Submission 表单提交记录，创建后不再修改
type Submission struct {
	ID          string           `json:"id"`
	FormID      string           `json:"formId"`
	FormName    string           `json:"formName"`
	SubmittedBy string           `json:"submittedBy"`
	SubmittedAt time.Time        `json:"submittedAt"`
	Status      SubmissionStatus `json:"status"`
	Location    string           `json:"location,omitempty"`
	Data        JSONB            `json:"data"`
	Images      []string         `json:"images,omitempty"`
	Signature   string           `json:"signature,omitempty"`
}
