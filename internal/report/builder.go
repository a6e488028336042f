// Package report assembles the fully-resolved document model for one report
// request: computed metrics, converted plan markdown, embedded exercise media,
// and the three chart series.
package report

import (
	"bytes"
	"context"
	"time"

	"github.com/yuin/goldmark"
	"golang.org/x/sync/errgroup"

	"healieve/health-app/internal/assets"
	"healieve/health-app/internal/config"
	"healieve/health-app/internal/domain"
	"healieve/health-app/internal/metrics"
)

// Request carries everything a caller supplies for one report.
type Request struct {
	Profile      domain.UserProfile
	PlanMarkdown string
	Exercises    []domain.Exercise
	Charts       domain.ReportCharts
	Goal         string
	Split        domain.MacroSplit
}

// Fallback chart data used when the caller supplies no series.
var (
	fallbackWeekLabels  = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	fallbackWeekValues  = []float64{500, 620, 700, 550, 640, 780, 720}
	fallbackTrendLabels = []string{"W1", "W2", "W3", "W4"}
	fallbackTrendValues = []float64{70, 69.5, 69.1, 68.8}
)

// Builder produces ReportModels. It owns no per-request state; one Builder
// serves concurrent requests.
type Builder struct {
	resolver *assets.Resolver
	md       goldmark.Markdown
	logoRef  string
	heroRef  string
}

// NewBuilder wires a builder to its asset resolver and branding assets.
func NewBuilder(resolver *assets.Resolver, assetCfg config.AssetsConfig) *Builder {
	return &Builder{
		resolver: resolver,
		md:       goldmark.New(),
		logoRef:  assetCfg.Logo,
		heroRef:  assetCfg.Hero,
	}
}

// Build assembles one ReportModel. All asset resolutions are joined before
// the model is returned; the renderer never waits on a fetch. Individual
// asset failures degrade to omission and never fail the build.
func (b *Builder) Build(ctx context.Context, req Request) (*domain.ReportModel, error) {
	m := metrics.Compute(req.Profile, req.Goal, req.Split)

	planHTML, err := b.renderMarkdown(req.PlanMarkdown)
	if err != nil {
		return nil, err
	}

	resolved, err := b.resolveExercises(ctx, req.Exercises)
	if err != nil {
		return nil, err
	}

	model := &domain.ReportModel{
		Profile:     req.Profile,
		Metrics:     m,
		PlanHTML:    planHTML,
		Exercises:   resolved,
		Macros:      b.macroSeries(req.Charts.Macros, m),
		Weekly:      orFallback(req.Charts.Weekly, fallbackWeekLabels, fallbackWeekValues),
		WeightTrend: orFallback(req.Charts.WeightTrend, fallbackTrendLabels, fallbackTrendValues),
		Logo:        b.resolver.Resolve(ctx, b.logoRef),
		Hero:        b.resolver.Resolve(ctx, b.heroRef),
		GeneratedAt: time.Now(),
	}
	return model, nil
}

// renderMarkdown converts the plan text. An empty plan renders to an empty
// section, not an error.
func (b *Builder) renderMarkdown(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := b.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// resolveExercises embeds every exercise's media. Step images resolve
// concurrently; the group wait is the single synchronization barrier before
// the model is handed to the renderer.
func (b *Builder) resolveExercises(ctx context.Context, exercises []domain.Exercise) ([]domain.ResolvedExercise, error) {
	out := make([]domain.ResolvedExercise, len(exercises))
	g, gctx := errgroup.WithContext(ctx)

	for i, ex := range exercises {
		i, ex := i, ex
		out[i].Exercise = ex
		out[i].ResolvedSteps = make([]domain.ResolvedStep, len(ex.Steps))

		g.Go(func() error {
			if ex.MainImage != "" {
				out[i].MainImageData = b.resolver.Resolve(gctx, ex.MainImage)
			}
			if ex.DemoVideo != "" {
				out[i].DemoQR = b.resolver.QRCode(ex.DemoVideo)
			}
			return nil
		})

		for j, step := range ex.Steps {
			j, step := j, step
			out[i].ResolvedSteps[j].Caption = step.Caption
			g.Go(func() error {
				if step.Image != "" {
					out[i].ResolvedSteps[j].Image = b.resolver.Resolve(gctx, step.Image)
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// macroSeries uses caller data when present, else echoes the computed split,
// else the default 30/45/25.
func (b *Builder) macroSeries(supplied domain.ChartSeries, m domain.HealthMetrics) domain.ChartSeries {
	if !supplied.IsZero() {
		return supplied
	}
	split := metrics.DefaultSplit
	if m.Macros != nil {
		split = m.Macros.Percent
	}
	return domain.ChartSeries{
		Labels: []string{"Protein", "Carbs", "Fats"},
		Values: []float64{float64(split.Protein), float64(split.Carbs), float64(split.Fats)},
	}
}

func orFallback(supplied domain.ChartSeries, labels []string, values []float64) domain.ChartSeries {
	if !supplied.IsZero() {
		return supplied
	}
	return domain.ChartSeries{Labels: labels, Values: values}
}
