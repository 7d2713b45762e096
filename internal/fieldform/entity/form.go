package entity

import (
	"time"
)

// FieldType 表单字段类型
type FieldType string

const (
	FieldText      FieldType = "text"
	FieldEmail     FieldType = "email"
	FieldPhone     FieldType = "phone"
	FieldDate      FieldType = "date"
	FieldTextarea  FieldType = "textarea"
	FieldCheckbox  FieldType = "checkbox"
	FieldRadio     FieldType = "radio"
	FieldSelect    FieldType = "select"
	FieldImage     FieldType = "image"
	FieldSignature FieldType = "signature"
)

// Valid 校验字段类型是否属于支持的枚举
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldEmail, FieldPhone, FieldDate, FieldTextarea,
		FieldCheckbox, FieldRadio, FieldSelect, FieldImage, FieldSignature:
		return true
	}
	return false
}

// Operator 条件规则运算符
type Operator string

const (
	OpEquals      Operator = "equals"
	OpNotEquals   Operator = "not-equals"
	OpContains    Operator = "contains"
	OpGreaterThan Operator = "greater-than"
	OpLessThan    Operator = "less-than"
)

// ConditionalRule 条件显示规则
// FieldID 指向同一表单内的另一个字段（约定不允许自引用）
type ConditionalRule struct {
	FieldID  string      `json:"fieldId"`
	Operator Operator    `json:"operator"`
	Value    interface{} `json:"value"`
}

// FormField 表单字段定义
type FormField struct {
	ID               string            `json:"id"`
	Type             FieldType         `json:"type"`
	Label            string            `json:"label"`
	Placeholder      string            `json:"placeholder,omitempty"`
	Required         bool              `json:"required"`
	Options          []string          `json:"options,omitempty"`
	Order            int               `json:"order"`
	ConditionalRules []ConditionalRule `json:"conditionalRules,omitempty"`
	Calculation      string            `json:"calculation,omitempty"`
}

// Form 表单定义
// 字段的 order 值在任何写入后保持 0..n-1 连续唯一（由handler层重排保证）
type Form struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Fields      []FormField `json:"fields"`
	UserID      string      `json:"userId,omitempty"`
	TemplateID  string      `json:"templateId,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	IsTemplate  bool        `json:"isTemplate"`
	Category    string      `json:"category,omitempty"`
}
