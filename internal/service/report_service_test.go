package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"healieve/health-app/internal/assets"
	"healieve/health-app/internal/config"
	"healieve/health-app/internal/domain"
	"healieve/health-app/internal/logger"
	"healieve/health-app/internal/render"
	"healieve/health-app/internal/report"
)

type fakeRenderer struct {
	err  error
	html string
}

func (f *fakeRenderer) Render(_ context.Context, html string) ([]byte, error) {
	f.html = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func newTestReportService(r render.Renderer) ReportService {
	resolver := assets.NewResolver("", nil, logger.Nop())
	builder := report.NewBuilder(resolver, config.AssetsConfig{})
	return NewReportService(builder, r, logger.Nop())
}

func TestGenerateReturnsPDFBytes(t *testing.T) {
	fake := &fakeRenderer{}
	svc := newTestReportService(fake)

	pdf, err := svc.Generate(context.Background(), report.Request{
		Profile: domain.UserProfile{Name: "Ada", Age: 30, Gender: "female", HeightCm: 170, WeightKg: 65},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("Generate() returned empty PDF")
	}
	if !strings.Contains(fake.html, "Ada") {
		t.Error("rendered document does not contain the profile name")
	}
}

func TestGenerateMapsRenderFailureToReportFailed(t *testing.T) {
	fake := &fakeRenderer{err: render.ErrChartsNotReady}
	svc := newTestReportService(fake)

	pdf, err := svc.Generate(context.Background(), report.Request{})
	if !errors.Is(err, ErrReportFailed) {
		t.Fatalf("Generate() error = %v, want ErrReportFailed", err)
	}
	if pdf != nil {
		t.Error("Generate() returned bytes alongside an error")
	}
}
