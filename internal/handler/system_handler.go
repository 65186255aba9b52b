package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riyaziyyat/exam-backend/internal/logger"
	"github.com/riyaziyyat/exam-backend/internal/response"
	"github.com/riyaziyyat/exam-backend/internal/service"
	"github.com/rs/zerolog"
)

// SystemHandler serves the health probe and the sample data loader.
type SystemHandler struct {
	seedService *service.SeedService
	storeDriver string
	startTime   time.Time
	log         zerolog.Logger
}

func NewSystemHandler(seedService *service.SeedService, storeDriver string, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		seedService: seedService,
		storeDriver: storeDriver,
		startTime:   time.Now(),
		log:         logger.Component(log, "system_handler"),
	}
}

// Health godoc
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"status":     "ok",
		"store":      h.storeDriver,
		"uptime":     time.Since(h.startTime).Round(time.Second).String(),
		"go_version": runtime.Version(),
	})
}

// InitData godoc
// POST /api/init-data
// Loads the sample data set when no students exist yet.
func (h *SystemHandler) InitData(c *gin.Context) {
	res, err := h.seedService.Seed(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Sample data initialization failed")
		failService(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
