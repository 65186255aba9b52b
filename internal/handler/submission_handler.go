package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/response"
	"github.com/riyaziyyat/exam-backend/internal/service"
	"github.com/riyaziyyat/exam-backend/internal/validator"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// List godoc
// GET /api/submissions
func (h *SubmissionHandler) List(c *gin.Context) {
	subs, err := h.submissionService.List(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"submissions": subs})
}

// ListByExam godoc
// GET /api/submissions/exam/:examId
func (h *SubmissionHandler) ListByExam(c *gin.Context) {
	subs, err := h.submissionService.ListByExam(c.Request.Context(), c.Param("examId"))
	if err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"submissions": subs})
}

// Get godoc
// GET /api/submissions/:id
func (h *SubmissionHandler) Get(c *gin.Context) {
	sub, err := h.submissionService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"submission": sub})
}

// Create godoc
// POST /api/submissions
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req model.SubmissionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	sub := req.ToSubmission()
	if err := h.submissionService.Create(c.Request.Context(), sub); err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"submission": sub})
}

// Delete godoc
// DELETE /api/submissions/:id
func (h *SubmissionHandler) Delete(c *gin.Context) {
	if err := h.submissionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "submission deleted successfully"})
}
