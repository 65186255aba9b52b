package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/riyaziyyat/exam-backend/internal/config"
	"github.com/riyaziyyat/exam-backend/internal/handler"
	"github.com/riyaziyyat/exam-backend/internal/logger"
	"github.com/riyaziyyat/exam-backend/internal/middleware"
	"github.com/riyaziyyat/exam-backend/internal/response"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Student    *handler.StudentHandler
	Group      *handler.GroupHandler
	Exam       *handler.ExamHandler
	Submission *handler.SubmissionHandler
	Report     *handler.ReportHandler
	System     *handler.SystemHandler
}

// SetupRouter configures the Gin engine and all routes. ctx bounds the
// lifetime of background middleware state.
func SetupRouter(ctx context.Context, handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", response.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID first so the request log can carry it.
	router.Use(response.RequestIDMiddleware())
	router.Use(logger.GinMiddleware(log))
	router.Use(middleware.Brotli())

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	router.GET("/health", handlers.System.Health)

	api := router.Group(cfg.APIPrefix)

	// ─── Auth (rate limited per IP) ────────────────────────────────────
	auth := api.Group("/auth")
	if cfg.LoginRateLimit > 0 {
		auth.Use(middleware.NewRateLimiter(ctx, cfg.LoginRateLimit, time.Minute).Middleware())
	}
	{
		auth.POST("/login", handlers.Auth.Login)
	}

	// ─── Students ──────────────────────────────────────────────────────
	students := api.Group("/students")
	{
		students.GET("", handlers.Student.List)
		students.POST("", handlers.Student.Create)
		students.GET("/:id", handlers.Student.Get)
		students.PUT("/:id", handlers.Student.Update)
		students.DELETE("/:id", handlers.Student.Delete)
	}

	// ─── Groups (addressed by name) ────────────────────────────────────
	groups := api.Group("/groups")
	{
		groups.GET("", handlers.Group.List)
		groups.POST("", handlers.Group.Create)
		groups.GET("/:name", handlers.Group.Get)
		groups.PUT("/:name", handlers.Group.Update)
		groups.DELETE("/:name", handlers.Group.Delete)
	}

	// ─── Exams ─────────────────────────────────────────────────────────
	exams := api.Group("/exams")
	{
		exams.GET("", handlers.Exam.List)
		exams.POST("", handlers.Exam.Create)
		exams.GET("/:id", handlers.Exam.Get)
		exams.PUT("/:id", handlers.Exam.Update)
		exams.DELETE("/:id", handlers.Exam.Delete)
	}

	// ─── Submissions ───────────────────────────────────────────────────
	submissions := api.Group("/submissions")
	{
		submissions.GET("", handlers.Submission.List)
		submissions.POST("", handlers.Submission.Create)
		submissions.GET("/exam/:examId", handlers.Submission.ListByExam)
		submissions.GET("/:id", handlers.Submission.Get)
		submissions.DELETE("/:id", handlers.Submission.Delete)
	}

	// ─── Cheating reports ──────────────────────────────────────────────
	reports := api.Group("/cheating-reports")
	{
		reports.GET("", handlers.Report.ListCheating)
		reports.DELETE("/:submissionId", handlers.Report.ClearFlag)
	}

	api.POST("/init-data", handlers.System.InitData)

	return router
}
