package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/response"
	"github.com/riyaziyyat/exam-backend/internal/service"
	"github.com/riyaziyyat/exam-backend/internal/validator"
)

// GroupHandler serves groups. Groups are addressed by name, not ID.
type GroupHandler struct {
	groupService *service.GroupService
}

func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// List godoc
// GET /api/groups
// Returns group names only.
func (h *GroupHandler) List(c *gin.Context) {
	names, err := h.groupService.ListNames(c.Request.Context())
	if err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"groups": names})
}

// Get godoc
// GET /api/groups/:name
func (h *GroupHandler) Get(c *gin.Context) {
	group, err := h.groupService.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"group": group})
}

// Create godoc
// POST /api/groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req model.GroupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	group := &model.Group{ID: req.ID, Name: req.Name}
	if err := h.groupService.Create(c.Request.Context(), group); err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"group": group})
}

// Update godoc
// PUT /api/groups/:name
// Renames a group; refused while students still belong to it.
func (h *GroupHandler) Update(c *gin.Context) {
	var req model.GroupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		bindFailed(c, fields)
		return
	}

	group := &model.Group{Name: req.Name}
	if err := h.groupService.Rename(c.Request.Context(), c.Param("name"), group); err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"group": group})
}

// Delete godoc
// DELETE /api/groups/:name
func (h *GroupHandler) Delete(c *gin.Context) {
	if err := h.groupService.Delete(c.Request.Context(), c.Param("name")); err != nil {
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "group deleted successfully"})
}
