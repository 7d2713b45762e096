// Package logic 表单条件显示与计算引擎
// 纯函数实现，渲染期间随填写数据变化反复调用
package logic

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

// EvaluateCondition 判断单条规则是否满足
// 被引用字段未填写（缺失或null）时条件不成立，即默认隐藏
func EvaluateCondition(rule entity.ConditionalRule, data entity.JSONB) bool {
	value, ok := data[rule.FieldID]
	if !ok || value == nil {
		return false
	}

	switch rule.Operator {
	case entity.OpEquals:
		return coerceString(value) == coerceString(rule.Value)
	case entity.OpNotEquals:
		return coerceString(value) != coerceString(rule.Value)
	case entity.OpContains:
		return strings.Contains(
			strings.ToLower(coerceString(value)),
			strings.ToLower(coerceString(rule.Value)),
		)
	case entity.OpGreaterThan:
		return coerceNumber(value) > coerceNumber(rule.Value)
	case entity.OpLessThan:
		return coerceNumber(value) < coerceNumber(rule.Value)
	default:
		return false
	}
}

// ShouldShowField 判断字段是否可见
// 没有规则时总是可见，有规则时必须全部满足（仅支持AND，不支持OR或分组）
func ShouldShowField(field entity.FormField, data entity.JSONB) bool {
	if len(field.ConditionalRules) == 0 {
		return true
	}
	for _, rule := range field.ConditionalRules {
		if !EvaluateCondition(rule, data) {
			return false
		}
	}
	return true
}

// VisibleFields 过滤出当前可见的字段，调用方负责预先按 order 排序
func VisibleFields(fields []entity.FormField, data entity.JSONB) []entity.FormField {
	var out []entity.FormField
	for _, f := range fields {
		if ShouldShowField(f, data) {
			out = append(out, f)
		}
	}
	return out
}

// coerceString 把任意JSON值转成字符串做比较
// JSON数字反序列化为float64，整数值不带小数点输出
func coerceString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// coerceNumber 把任意JSON值转成数字
// 无法转换时返回NaN，任何与NaN的大小比较都为假
func coerceNumber(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return math.NaN()
		}
		return n
	case bool:
		if t {
			return 1
		}
		return 0
	default:
		return math.NaN()
	}
}
