package domain

// UserProfile holds the health intake data supplied with a report request.
// Height and weight must be positive for any metric to compute; missing or
// zero values produce absent metrics rather than fabricated ones.
type UserProfile struct {
	Name          string             `json:"name"`
	Age           int                `json:"age"`
	Gender        string             `json:"gender"`
	HeightCm      float64            `json:"height"`
	WeightKg      float64            `json:"weight"`
	BodyType      string             `json:"bodyType,omitempty"`
	DietType      string             `json:"dietType,omitempty"`
	ActivityLevel string             `json:"activityLevel,omitempty"`
	Medical       string             `json:"medical,omitempty"`
	Habits        string             `json:"habits,omitempty"`
	Goal          string             `json:"goal,omitempty"`
	Measurements  map[string]float64 `json:"measurements,omitempty"` // body part -> cm
}

// MacroSplit is a percent triple. The three values are expected to sum to 100.
type MacroSplit struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// MacroGrams holds per-macro daily gram targets derived from a calorie target.
type MacroGrams struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

// MacroPlan echoes the percent split alongside the gram amounts.
type MacroPlan struct {
	Percent MacroSplit `json:"percent"`
	Grams   MacroGrams `json:"grams"`
}

// HealthMetrics is derived from a UserProfile snapshot and is never cached
// across different inputs. Nil pointers mean "could not be computed".
type HealthMetrics struct {
	BMI           *float64   `json:"bmi,omitempty"`           // 1 decimal
	BMR           *int       `json:"bmr,omitempty"`           // kcal/day
	TDEE          *int       `json:"tdee,omitempty"`          // kcal/day
	CalorieTarget *int       `json:"calorieTarget,omitempty"` // kcal/day
	Macros        *MacroPlan `json:"macros,omitempty"`
}
