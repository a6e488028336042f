package service

import (
	"context"
	"errors"

	"healieve/health-app/internal/logger"
	"healieve/health-app/internal/render"
	"healieve/health-app/internal/report"

	"github.com/google/uuid"
)

// --- Error Definitions ---
var (
	// ErrReportFailed is the generic failure surfaced to callers. The real
	// cause stays in the logs; clients never see partial output.
	ErrReportFailed = errors.New("failed to generate report")
)

// ReportService turns a report request into the final PDF bytes.
type ReportService interface {
	Generate(ctx context.Context, req report.Request) ([]byte, error)
}

type reportService struct {
	builder  *report.Builder
	renderer render.Renderer
	log      *logger.Logger
}

// NewReportService creates a new instance of reportService.
func NewReportService(builder *report.Builder, renderer render.Renderer, log *logger.Logger) ReportService {
	return &reportService{builder: builder, renderer: renderer, log: log}
}

// Generate builds the fully-resolved model, serializes it, and renders the
// PDF. Any failure past model assembly aborts the whole request; there is no
// partial document.
func (s *reportService) Generate(ctx context.Context, req report.Request) ([]byte, error) {
	reqID := uuid.NewString()
	log := s.log.With("reportId", reqID)

	model, err := s.builder.Build(ctx, req)
	if err != nil {
		log.Error("report model assembly failed", "error", err)
		return nil, ErrReportFailed
	}

	html, err := render.BuildHTML(model)
	if err != nil {
		log.Error("report document serialization failed", "error", err)
		return nil, ErrReportFailed
	}

	pdf, err := s.renderer.Render(ctx, html)
	if err != nil {
		log.Error("report render failed", "error", err, "chartsTimeout", errors.Is(err, render.ErrChartsNotReady))
		return nil, ErrReportFailed
	}

	log.Info("report generated", "exercises", len(req.Exercises), "bytes", len(pdf))
	return pdf, nil
}
