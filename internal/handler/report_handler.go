package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riyaziyyat/exam-backend/internal/response"
	"github.com/riyaziyyat/exam-backend/internal/service"
)

// ReportHandler serves the cheating report.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ListCheating godoc
// GET /api/cheating-reports
func (h *ReportHandler) ListCheating(c *gin.Context) {
	reports, err := h.reportService.ListCheating(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reports": reports})
}

// ClearFlag godoc
// DELETE /api/cheating-reports/:submissionId
// Clears the flag; the submission itself is kept.
func (h *ReportHandler) ClearFlag(c *gin.Context) {
	if err := h.reportService.ClearFlag(c.Request.Context(), c.Param("submissionId")); err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "cheating flag cleared"})
}
