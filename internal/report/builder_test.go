package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"healieve/health-app/internal/assets"
	"healieve/health-app/internal/config"
	"healieve/health-app/internal/domain"
	"healieve/health-app/internal/logger"
)

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"healieve-logo.png", "fitness-hero.jpg", "step1.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	resolver := assets.NewResolver(dir, nil, logger.Nop())
	return NewBuilder(resolver, config.AssetsConfig{
		Root: dir,
		Logo: "healieve-logo.png",
		Hero: "fitness-hero.jpg",
	})
}

func validProfile() domain.UserProfile {
	return domain.UserProfile{
		Name: "Dana", Gender: "female", Age: 30,
		HeightCm: 165, WeightKg: 60, ActivityLevel: "moderate",
	}
}

func TestBuild_EmptyRequestStillProducesModel(t *testing.T) {
	b := testBuilder(t)
	model, err := b.Build(context.Background(), Request{Profile: validProfile()})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if model.PlanHTML != "" {
		t.Fatalf("empty plan should produce an empty section, got %q", model.PlanHTML)
	}
	if len(model.Exercises) != 0 {
		t.Fatalf("expected no exercises")
	}
	if model.Metrics.BMI == nil {
		t.Fatalf("metrics should compute for a valid profile")
	}
	if model.Logo == nil || model.Hero == nil {
		t.Fatalf("branding assets should resolve")
	}
	if model.GeneratedAt.IsZero() {
		t.Fatalf("generation timestamp missing")
	}
}

func TestBuild_ChartFallbacks(t *testing.T) {
	b := testBuilder(t)
	model, err := b.Build(context.Background(), Request{Profile: validProfile()})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(model.Weekly.Values) != 7 || model.Weekly.Values[0] != 500 || model.Weekly.Values[6] != 720 {
		t.Fatalf("weekly fallback wrong: %+v", model.Weekly)
	}
	if len(model.WeightTrend.Values) != 4 || model.WeightTrend.Values[3] != 68.8 {
		t.Fatalf("weight trend fallback wrong: %+v", model.WeightTrend)
	}
	// macro fallback echoes the computed split (default 30/45/25 here)
	if len(model.Macros.Values) != 3 || model.Macros.Values[0] != 30 {
		t.Fatalf("macro fallback wrong: %+v", model.Macros)
	}
}

func TestBuild_CallerChartsWin(t *testing.T) {
	b := testBuilder(t)
	charts := domain.ReportCharts{
		Weekly: domain.ChartSeries{Labels: []string{"D1"}, Values: []float64{123}},
	}
	model, err := b.Build(context.Background(), Request{Profile: validProfile(), Charts: charts})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(model.Weekly.Values) != 1 || model.Weekly.Values[0] != 123 {
		t.Fatalf("caller-supplied weekly series should win: %+v", model.Weekly)
	}
}

func TestBuild_PlanMarkdownConverted(t *testing.T) {
	b := testBuilder(t)
	model, err := b.Build(context.Background(), Request{
		Profile:      validProfile(),
		PlanMarkdown: "# Day 1\n\nSquats and **rest**.",
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.Contains(model.PlanHTML, "<h1") || !strings.Contains(model.PlanHTML, "<strong>rest</strong>") {
		t.Fatalf("plan markdown not converted: %q", model.PlanHTML)
	}
}

func TestBuild_ResolvesAllStepsBeforeReturning(t *testing.T) {
	b := testBuilder(t)
	ex := domain.Exercise{
		Name:      "Push Up",
		MainImage: "step1.png",
		DemoVideo: "https://youtu.be/demo",
		Steps: []domain.ExerciseStep{
			{Caption: "Start", Image: "step1.png"},
			{Caption: "Lower", Image: "missing.png"},
			{Caption: "Press"},
		},
	}
	model, err := b.Build(context.Background(), Request{Profile: validProfile(), Exercises: []domain.Exercise{ex}})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(model.Exercises) != 1 {
		t.Fatalf("expected one exercise")
	}
	got := model.Exercises[0]
	if got.MainImageData == nil {
		t.Fatalf("main image should resolve")
	}
	if got.DemoQR == nil || !strings.HasPrefix(*got.DemoQR, "data:image/png") {
		t.Fatalf("demo QR should resolve, got %v", got.DemoQR)
	}
	if len(got.ResolvedSteps) != 3 {
		t.Fatalf("every step must be present after the join, got %d", len(got.ResolvedSteps))
	}
	if got.ResolvedSteps[0].Image == nil {
		t.Fatalf("existing step image should resolve")
	}
	if got.ResolvedSteps[1].Image != nil {
		t.Fatalf("missing step image should be omitted, not fail the build")
	}
	if got.ResolvedSteps[2].Caption != "Press" {
		t.Fatalf("step order must be preserved")
	}
}
