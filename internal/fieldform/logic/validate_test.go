package logic

import (
	"testing"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

func inspectionFields() []entity.FormField {
	return []entity.FormField{
		{ID: "inspector", Type: entity.FieldText, Required: true},
		{ID: "checklist", Type: entity.FieldCheckbox, Options: []string{"A", "B"}},
		{ID: "photo", Type: entity.FieldImage},
		{ID: "hazards", Type: entity.FieldTextarea, Required: true, ConditionalRules: []entity.ConditionalRule{
			{FieldID: "inspector", Operator: entity.OpEquals, Value: "show-hazards"},
		}},
	}
}

func TestValidateSubmissionOK(t *testing.T) {
	data := entity.JSONB{
		"inspector": "Alice",
		"checklist": []interface{}{"A", "B"},
		"photo":     []string{"img-1.png"},
	}
	if err := ValidateSubmission(inspectionFields(), data); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateSubmissionUnknownField(t *testing.T) {
	data := entity.JSONB{"inspector": "Alice", "bogus": "x"}
	if err := ValidateSubmission(inspectionFields(), data); err == nil {
		t.Error("expected error for unknown field id")
	}
}

func TestValidateSubmissionTypeMismatch(t *testing.T) {
	cases := []struct {
		name string
		data entity.JSONB
	}{
		{"checkbox takes list not string", entity.JSONB{"inspector": "A", "checklist": "A"}},
		{"checkbox list must be strings", entity.JSONB{"inspector": "A", "checklist": []interface{}{1, 2}}},
		{"text takes string not number", entity.JSONB{"inspector": float64(42)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateSubmission(inspectionFields(), tc.data); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateSubmissionRequiredMissing(t *testing.T) {
	if err := ValidateSubmission(inspectionFields(), entity.JSONB{}); err == nil {
		t.Error("expected error for missing required field")
	}
	if err := ValidateSubmission(inspectionFields(), entity.JSONB{"inspector": ""}); err == nil {
		t.Error("expected error for empty required field")
	}
}

func TestValidateSubmissionHiddenRequiredSkipped(t *testing.T) {
	// hazards 必填但被条件规则隐藏，不要求填写
	data := entity.JSONB{"inspector": "Alice"}
	if err := ValidateSubmission(inspectionFields(), data); err != nil {
		t.Errorf("expected hidden required field to be skipped, got %v", err)
	}

	// 条件满足后变为可见，必填生效
	data = entity.JSONB{"inspector": "show-hazards"}
	if err := ValidateSubmission(inspectionFields(), data); err == nil {
		t.Error("expected error when visible required field is missing")
	}

	data = entity.JSONB{"inspector": "show-hazards", "hazards": "open trench"}
	if err := ValidateSubmission(inspectionFields(), data); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
