package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/response"
	"github.com/riyaziyyat/exam-backend/internal/service"
	"github.com/riyaziyyat/exam-backend/internal/validator"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /api/auth/login
// Checks the credentials against the teacher account first, then students.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failService(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{
		Success:  true,
		UserType: res.UserType,
		User:     res.Profile,
		Message:  "Login successful",
	})
}
