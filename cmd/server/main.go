package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riyaziyyat/exam-backend/internal/config"
	"github.com/riyaziyyat/exam-backend/internal/database"
	"github.com/riyaziyyat/exam-backend/internal/handler"
	"github.com/riyaziyyat/exam-backend/internal/logger"
	"github.com/riyaziyyat/exam-backend/internal/repository"
	"github.com/riyaziyyat/exam-backend/internal/router"
	"github.com/riyaziyyat/exam-backend/internal/service"
	"github.com/riyaziyyat/exam-backend/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("store", cfg.StoreDriver).
		Str("password_hashing", cfg.PasswordHashing).
		Msg("Starting exam backend")

	if cfg.PasswordHashing == config.HashingPlain {
		log.Warn().Msg("Student passwords are stored in plain text; set PASSWORD_HASHING=bcrypt")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Open Record Store ─────────────────────────────────────────────
	st, err := database.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open record store")
	}

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(st)
	groupRepo := repository.NewGroupRepository(st)
	examRepo := repository.NewExamRepository(st)
	submissionRepo := repository.NewSubmissionRepository(st)

	// ─── Initialize Services ──────────────────────────────────────────
	passwords := service.NewPasswordMatcher(cfg)
	authService := service.NewAuthService(cfg, studentRepo, passwords)
	studentService := service.NewStudentService(studentRepo, passwords)
	groupService := service.NewGroupService(groupRepo, studentRepo)
	examService := service.NewExamService(examRepo, submissionRepo, log)
	submissionService := service.NewSubmissionService(submissionRepo)
	reportService := service.NewReportService(submissionRepo, studentRepo, examRepo)
	seedLock := service.NewRedisSeedLock(rdb, cfg.SeedLockTTL)
	seedService := service.NewSeedService(studentRepo, groupRepo, examRepo, submissionRepo, passwords, seedLock, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Student:    handler.NewStudentHandler(studentService),
		Group:      handler.NewGroupHandler(groupService),
		Exam:       handler.NewExamHandler(examService),
		Submission: handler.NewSubmissionHandler(submissionService),
		Report:     handler.NewReportHandler(reportService),
		System:     handler.NewSystemHandler(seedService, cfg.StoreDriver, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(ctx, handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop middleware background work, then release connections.
	cancel()
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("Redis close error")
		}
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Record store close error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
