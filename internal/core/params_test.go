package core

import (
	"math"
	"testing"
)

func TestParameterControlAdjustClampsToBounds(t *testing.T) {
	ctrl := ParameterControl{Key: "damping", Type: ParamTypeFloat, Step: 0.02, Min: 0.01, Max: 0.1, HasMin: true, HasMax: true}

	v, ok := ctrl.Adjust(0.05, 1)
	if !ok || math.Abs(v-0.07) > 1e-12 {
		t.Fatalf("expected 0.07, got %f ok=%t", v, ok)
	}
	if v, ok = ctrl.Adjust(0.09, 1); !ok || v != 0.1 {
		t.Fatalf("a step past the maximum should land on it, got %f ok=%t", v, ok)
	}
	if _, ok = ctrl.Adjust(0.1, 1); ok {
		t.Fatal("no change is possible at the maximum")
	}
	if v, ok = ctrl.Adjust(0.02, -1); !ok || v != 0.01 {
		t.Fatalf("a step past the minimum should land on it, got %f ok=%t", v, ok)
	}
	if _, ok = ctrl.Adjust(0.05, 0); ok {
		t.Fatal("a zero direction must not adjust")
	}
}

func TestParameterControlIntSteps(t *testing.T) {
	ctrl := ParameterControl{Key: "interval", Type: ParamTypeInt, Step: 0.4}
	if got := ctrl.StepSize(); got != 1 {
		t.Fatalf("int controls step by at least one, got %f", got)
	}
	ctrl.Step = 10
	if v, ok := ctrl.Adjust(49.6, -1); !ok || v != 40 {
		t.Fatalf("int adjust should start from the rounded value, got %f", v)
	}

	text := ParameterControl{Key: "status", Type: ParamTypeText}
	if _, ok := text.Adjust(1, 1); ok {
		t.Fatal("text controls are not adjustable")
	}
}

func TestParameterControlInRange(t *testing.T) {
	open := ParameterControl{Type: ParamTypeFloat}
	if !open.InRange(-1e9) || !open.InRange(1e9) {
		t.Fatal("a control without bounds accepts everything")
	}
	lower := ParameterControl{Type: ParamTypeFloat, Min: 1, HasMin: true}
	if lower.InRange(0.5) || !lower.InRange(1) || !lower.InRange(50) {
		t.Fatal("only the minimum should bind")
	}
}
