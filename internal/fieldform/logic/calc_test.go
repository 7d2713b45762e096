package logic

import (
	"errors"
	"testing"

	"github.com/bitfantasy/fieldform/internal/fieldform/entity"
)

func TestEvalFormulaFieldReferences(t *testing.T) {
	data := entity.JSONB{"a": "2", "b": float64(3)}

	got, err := EvalFormula(`field['a'] + field["b"]`, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestEvalFormulaMissingFieldIsZero(t *testing.T) {
	got, err := EvalFormula(`field['a'] + field['missing']`, entity.JSONB{"a": "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
}

func TestEvalFormulaPrecedenceAndParens(t *testing.T) {
	cases := []struct {
		formula string
		want    float64
	}{
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 4 - 3", 3},
		{"8 / 2 / 2", 2},
		{"-3 + 5", 2},
		{"2 * (1 + field['x'])", 8},
	}
	data := entity.JSONB{"x": "3"}
	for _, tc := range cases {
		got, err := EvalFormula(tc.formula, data)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.formula, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.formula, tc.want, got)
		}
	}
}

func TestEvalFormulaErrors(t *testing.T) {
	cases := []struct {
		name    string
		formula string
		data    entity.JSONB
	}{
		{"non-numeric field value", `field['a'] + 1`, entity.JSONB{"a": "not a number"}},
		{"stray identifier", "2 + foo", entity.JSONB{}},
		{"unbalanced parens", "(2 + 3", entity.JSONB{}},
		{"trailing tokens", "2 + 3 )", entity.JSONB{}},
		{"division by zero", "1 / 0", entity.JSONB{}},
		{"empty formula", "", entity.JSONB{}},
		{"bad number", "1..2 + 3", entity.JSONB{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EvalFormula(tc.formula, tc.data)
			if err == nil {
				t.Fatalf("expected error for %q", tc.formula)
			}
			if !errors.Is(err, ErrInvalidFormula) {
				t.Errorf("expected ErrInvalidFormula, got %v", err)
			}
		})
	}
}

func TestEvaluateCalculationSwallowsErrors(t *testing.T) {
	if got := EvaluateCalculation("2 + bad", entity.JSONB{}); got != 0 {
		t.Errorf("expected 0 on malformed formula, got %v", got)
	}
	if got := EvaluateCalculation(`field['a'] * 2`, entity.JSONB{"a": "4"}); got != 8 {
		t.Errorf("expected 8, got %v", got)
	}
}
