package domain

import "time"

// ChartSeries is a labeled ordered sequence of (label, value) pairs.
// Labels and Values are parallel slices.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// IsZero reports whether the series carries no data points.
func (s ChartSeries) IsZero() bool {
	return len(s.Labels) == 0 && len(s.Values) == 0
}

// ReportCharts groups the three series the report requires.
type ReportCharts struct {
	Macros      ChartSeries `json:"macros"`
	Weekly      ChartSeries `json:"weekly"`
	WeightTrend ChartSeries `json:"weightTrend"`
}

// ReportModel is the fully-resolved input to the document renderer. Every
// asset is already embedded; the renderer never fetches anything mid-render.
type ReportModel struct {
	Profile     UserProfile
	Metrics     HealthMetrics
	PlanHTML    string // markdown plan, already converted
	Exercises   []ResolvedExercise
	Macros      ChartSeries
	Weekly      ChartSeries
	WeightTrend ChartSeries
	Logo        *string // data URI, nil when the asset is unavailable
	Hero        *string
	GeneratedAt time.Time
}
