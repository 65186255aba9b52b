package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/response"
	"github.com/riyaziyyat/exam-backend/internal/service"
	"github.com/riyaziyyat/exam-backend/internal/validator"
)

// ExamHandler handles exam CRUD.
type ExamHandler struct {
	examService *service.ExamService
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(examService *service.ExamService) *ExamHandler {
	return &ExamHandler{examService: examService}
}

// List godoc
// GET /api/exams
func (h *ExamHandler) List(c *gin.Context) {
	exams, err := h.examService.List(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exams": exams})
}

// Get godoc
// GET /api/exams/:id
func (h *ExamHandler) Get(c *gin.Context) {
	exam, err := h.examService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exam": exam})
}

// Create godoc
// POST /api/exams
func (h *ExamHandler) Create(c *gin.Context) {
	var req model.ExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	exam := req.ToExam()
	if err := h.examService.Create(c.Request.Context(), exam); err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"exam": exam})
}

// Update godoc
// PUT /api/exams/:id
func (h *ExamHandler) Update(c *gin.Context) {
	var req model.ExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	exam := req.ToExam()
	if err := h.examService.Update(c.Request.Context(), c.Param("id"), exam); err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"exam": exam})
}

// Delete godoc
// DELETE /api/exams/:id
// Also removes every submission for the exam.
func (h *ExamHandler) Delete(c *gin.Context) {
	if err := h.examService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "exam deleted successfully"})
}
