package metrics

import (
	"testing"

	"healieve/health-app/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestBMI(t *testing.T) {
	got := BMI(70, 175)
	if got == nil || *got != 22.9 {
		t.Fatalf("BMI(70,175) = %v, want 22.9", got)
	}
	if BMI(0, 175) != nil {
		t.Fatalf("BMI with zero weight should be nil")
	}
	if BMI(70, 0) != nil {
		t.Fatalf("BMI with zero height should be nil")
	}
	if BMI(-70, 175) != nil {
		t.Fatalf("BMI with negative weight should be nil")
	}
}

func TestBMI_Deterministic(t *testing.T) {
	a := BMI(82.4, 181)
	b := BMI(82.4, 181)
	if a == nil || b == nil || *a != *b {
		t.Fatalf("BMI not deterministic: %v vs %v", a, b)
	}
}

func TestBMR(t *testing.T) {
	got := BMR("female", 30, 165, 60)
	if got == nil || *got != 1320 {
		t.Fatalf("BMR(female,30,165,60) = %v, want 1320", got)
	}
	// +5 offset for anyone not matching "female"
	got = BMR("Male", 30, 165, 60)
	if got == nil || *got != 1486 {
		t.Fatalf("BMR(Male,30,165,60) = %v, want 1486", got)
	}
	// case-insensitive
	got = BMR("FEMALE", 30, 165, 60)
	if got == nil || *got != 1320 {
		t.Fatalf("BMR(FEMALE,...) = %v, want 1320", got)
	}
	if BMR("female", 0, 165, 60) != nil {
		t.Fatalf("BMR with missing age should be nil")
	}
	if BMR("female", 30, 0, 60) != nil {
		t.Fatalf("BMR with missing height should be nil")
	}
	if BMR("female", 30, 165, 0) != nil {
		t.Fatalf("BMR with missing weight should be nil")
	}
}

func TestTDEE(t *testing.T) {
	got := TDEE(intPtr(1320), "Moderate")
	if got == nil || *got != 2046 {
		t.Fatalf("TDEE(1320, Moderate) = %v, want 2046", got)
	}
	got = TDEE(intPtr(1320), "unknown")
	if got == nil || *got != 1815 {
		t.Fatalf("TDEE(1320, unknown) = %v, want 1815 (default factor)", got)
	}
	got = TDEE(intPtr(1320), "very active")
	if got == nil || *got != 2508 {
		t.Fatalf("TDEE(1320, very active) = %v, want 2508", got)
	}
	if TDEE(nil, "moderate") != nil {
		t.Fatalf("TDEE with nil bmr should be nil")
	}
}

func TestCalorieTarget(t *testing.T) {
	tdee := intPtr(2046)
	got := CalorieTarget(tdee, "Fat Loss")
	if got == nil || *got != 1546 {
		t.Fatalf("target for Fat Loss = %v, want 1546", got)
	}
	got = CalorieTarget(tdee, "Muscle Gain")
	if got == nil || *got != 2346 {
		t.Fatalf("target for Muscle Gain = %v, want 2346", got)
	}
	got = CalorieTarget(tdee, "")
	if got == nil || *got != 2046 {
		t.Fatalf("target for empty goal = %v, want 2046", got)
	}
	// floor at 1200
	got = CalorieTarget(intPtr(1500), "weight loss")
	if got == nil || *got != 1200 {
		t.Fatalf("target should floor at 1200, got %v", got)
	}
	if CalorieTarget(nil, "loss") != nil {
		t.Fatalf("target with nil tdee should be nil")
	}
}

func TestMacros(t *testing.T) {
	got := Macros(intPtr(2000), domain.MacroSplit{Protein: 30, Carbs: 45, Fats: 25})
	if got == nil {
		t.Fatalf("Macros returned nil for valid target")
	}
	if got.Grams.Protein != 150 || got.Grams.Carbs != 225 || got.Grams.Fats != 56 {
		t.Fatalf("grams = %+v, want 150/225/56", got.Grams)
	}
	if got.Percent != (domain.MacroSplit{Protein: 30, Carbs: 45, Fats: 25}) {
		t.Fatalf("percent split not echoed: %+v", got.Percent)
	}
	if Macros(nil, DefaultSplit) != nil {
		t.Fatalf("Macros with nil target should be nil")
	}
	if Macros(intPtr(0), DefaultSplit) != nil {
		t.Fatalf("Macros with zero target should be nil")
	}
}

func TestCompute(t *testing.T) {
	p := domain.UserProfile{
		Gender:        "female",
		Age:           30,
		HeightCm:      165,
		WeightKg:      60,
		ActivityLevel: "moderate",
	}
	m := Compute(p, "Fat Loss", domain.MacroSplit{})
	if m.BMI == nil || *m.BMI != 22.0 {
		t.Fatalf("BMI = %v, want 22.0", m.BMI)
	}
	if m.BMR == nil || *m.BMR != 1320 {
		t.Fatalf("BMR = %v, want 1320", m.BMR)
	}
	if m.TDEE == nil || *m.TDEE != 2046 {
		t.Fatalf("TDEE = %v, want 2046", m.TDEE)
	}
	if m.CalorieTarget == nil || *m.CalorieTarget != 1546 {
		t.Fatalf("target = %v, want 1546", m.CalorieTarget)
	}
	if m.Macros == nil || m.Macros.Percent != DefaultSplit {
		t.Fatalf("macros should use the default split, got %+v", m.Macros)
	}
}

func TestCompute_MissingInputsDegrade(t *testing.T) {
	m := Compute(domain.UserProfile{Name: "x"}, "", domain.MacroSplit{})
	if m.BMI != nil || m.BMR != nil || m.TDEE != nil || m.CalorieTarget != nil || m.Macros != nil {
		t.Fatalf("all metrics should be nil for an empty profile: %+v", m)
	}
}
