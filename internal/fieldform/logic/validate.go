package logic

import (
	"fmt"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

// ValidateSubmission 在提交时按表单定义校验数据
// 值类型按字段类型约束：checkbox与image是字符串列表，其余字段是字符串；
// 未在表单中定义的字段ID拒绝；必填校验只作用于当前可见的字段，
// 被条件规则隐藏的字段不要求填写
func ValidateSubmission(fields []entity.FormField, data entity.JSONB) error {
	byID := make(map[string]entity.FormField, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}

	for id, value := range data {
		field, ok := byID[id]
		if !ok {
			return fmt.Errorf("unknown field %q", id)
		}
		if value == nil {
			continue
		}
		if err := validateValue(field, value); err != nil {
			return err
		}
	}

	for _, field := range fields {
		if !field.Required || !ShouldShowField(field, data) {
			continue
		}
		value, ok := data[field.ID]
		if !ok || value == nil || isEmpty(value) {
			return fmt.Errorf("field %q is required", field.ID)
		}
	}
	return nil
}

func validateValue(field entity.FormField, value interface{}) error {
	switch field.Type {
	case entity.FieldCheckbox, entity.FieldImage:
		return validateStringList(field.ID, value)
	default:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field %q expects a string value", field.ID)
		}
	}
	return nil
}

// validateStringList 接受 []string 或JSON反序列化得到的 []interface{}
func validateStringList(id string, value interface{}) error {
	switch list := value.(type) {
	case []string:
		return nil
	case []interface{}:
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("field %q expects a list of strings", id)
			}
		}
		return nil
	default:
		return fmt.Errorf("field %q expects a list of strings", id)
	}
}

func isEmpty(value interface{}) bool {
	switch t := value.(type) {
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case []interface{}:
		return len(t) == 0
	}
	return false
}
