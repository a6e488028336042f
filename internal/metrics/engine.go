// Package metrics derives health metrics (BMI, BMR, TDEE, calorie target,
// macro split) from user intake data. All functions are pure and fail closed:
// missing or non-positive inputs yield nil results, never fabricated numbers.
package metrics

import (
	"math"
	"strings"

	"healieve/health-app/internal/domain"
)

// DefaultSplit is the macro split used when the caller supplies none.
var DefaultSplit = domain.MacroSplit{Protein: 30, Carbs: 45, Fats: 25}

// activityFactors maps activity level (lowercased) to its TDEE multiplier.
var activityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very active": 1.9,
}

const defaultActivityFactor = 1.375

// BMI returns weight/(height in m)^2 rounded to one decimal, or nil when
// either input is non-positive.
func BMI(weightKg, heightCm float64) *float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return nil
	}
	m := heightCm / 100
	v := math.Round(weightKg/(m*m)*10) / 10
	return &v
}

// BMR computes basal metabolic rate via Mifflin-St Jeor. Gender
// "female" (case-insensitive) uses the -161 offset, anything else +5.
func BMR(gender string, age int, heightCm, weightKg float64) *int {
	if age <= 0 || heightCm <= 0 || weightKg <= 0 {
		return nil
	}
	s := 5.0
	if strings.EqualFold(gender, "female") {
		s = -161
	}
	v := int(math.Round(10*weightKg + 6.25*heightCm - 5*float64(age) + s))
	return &v
}

// ActivityFactor returns the multiplier for an activity level. Unrecognized
// or empty levels fall back to the "light" factor.
func ActivityFactor(level string) float64 {
	if f, ok := activityFactors[strings.ToLower(level)]; ok {
		return f
	}
	return defaultActivityFactor
}

// TDEE is bmr scaled by the activity factor, rounded. Nil in, nil out.
func TDEE(bmr *int, level string) *int {
	if bmr == nil {
		return nil
	}
	v := int(math.Round(float64(*bmr) * ActivityFactor(level)))
	return &v
}

// CalorieTarget adjusts TDEE for the stated goal: "loss" anywhere in the
// goal text cuts 500 kcal (floored at 1200), "gain" adds 300.
func CalorieTarget(tdee *int, goal string) *int {
	if tdee == nil {
		return nil
	}
	g := strings.ToLower(goal)
	v := *tdee
	switch {
	case strings.Contains(g, "loss"):
		v = *tdee - 500
		if v < 1200 {
			v = 1200
		}
	case strings.Contains(g, "gain"):
		v = *tdee + 300
	}
	return &v
}

// Macros turns a calorie target into gram amounts (protein and carbs at
// 4 kcal/g, fat at 9 kcal/g), echoing the percent split back.
func Macros(targetCalories *int, split domain.MacroSplit) *domain.MacroPlan {
	if targetCalories == nil || *targetCalories == 0 {
		return nil
	}
	t := float64(*targetCalories)
	return &domain.MacroPlan{
		Percent: split,
		Grams: domain.MacroGrams{
			Protein: int(math.Round(float64(split.Protein) / 100 * t / 4)),
			Carbs:   int(math.Round(float64(split.Carbs) / 100 * t / 4)),
			Fats:    int(math.Round(float64(split.Fats) / 100 * t / 9)),
		},
	}
}

// Compute derives the full metrics set for one profile snapshot.
func Compute(profile domain.UserProfile, goal string, split domain.MacroSplit) domain.HealthMetrics {
	if split == (domain.MacroSplit{}) {
		split = DefaultSplit
	}
	bmr := BMR(profile.Gender, profile.Age, profile.HeightCm, profile.WeightKg)
	tdee := TDEE(bmr, profile.ActivityLevel)
	target := CalorieTarget(tdee, goal)
	return domain.HealthMetrics{
		BMI:           BMI(profile.WeightKg, profile.HeightCm),
		BMR:           bmr,
		TDEE:          tdee,
		CalorieTarget: target,
		Macros:        Macros(target, split),
	}
}
