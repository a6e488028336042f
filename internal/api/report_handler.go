package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"healieve/health-app/internal/domain"
	"healieve/health-app/internal/report"
	"healieve/health-app/internal/service"
)

const reportFilename = "healieve-health-report.pdf"

// ReportHandler holds the report service dependency.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// --- DTOs for API ---

type ReportGoalsDTO struct {
	MainGoal string `json:"mainGoal"`
}

type ReportSettingsDTO struct {
	MacroSplit *domain.MacroSplit `json:"macroSplit"`
}

// GenerateReportRequest is the full payload for a report run. Every field is
// optional; a missing profile still renders, with the metrics shown as dashes.
type GenerateReportRequest struct {
	User         domain.UserProfile  `json:"user"`
	PlanMarkdown string              `json:"planMarkdown"`
	Exercises    []domain.Exercise   `json:"exercises"`
	Charts       domain.ReportCharts `json:"charts"`
	Goals        ReportGoalsDTO      `json:"goals"`
	Settings     ReportSettingsDTO   `json:"settings"`
}

// --- Handler Methods ---

// GenerateReport renders the multi-section health report as a PDF and
// streams it back as an attachment. Any upstream or render failure maps to
// a single opaque 500; a truncated document is never returned.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	buildReq := report.Request{
		Profile:      req.User,
		PlanMarkdown: req.PlanMarkdown,
		Exercises:    req.Exercises,
		Charts:       req.Charts,
		Goal:         req.Goals.MainGoal,
	}
	if req.Settings.MacroSplit != nil {
		buildReq.Split = *req.Settings.MacroSplit
	}

	pdf, err := h.reportService.Generate(c.Request.Context(), buildReq)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(pdf)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
