package main

import (
	"context"
	"fmt"
	"time"

	"github.com/riyaziyyat/exam-backend/internal/config"
	"github.com/riyaziyyat/exam-backend/internal/database"
	"github.com/riyaziyyat/exam-backend/internal/logger"
	"github.com/riyaziyyat/exam-backend/internal/repository"
	"github.com/riyaziyyat/exam-backend/internal/service"
)

// seed loads the sample data set, like POST /api/init-data, without a
// running server.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	st, err := database.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open record store")
	}
	defer st.Close(context.Background())

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	studentRepo := repository.NewStudentRepository(st)
	seedService := service.NewSeedService(
		studentRepo,
		repository.NewGroupRepository(st),
		repository.NewExamRepository(st),
		repository.NewSubmissionRepository(st),
		service.NewPasswordMatcher(cfg),
		service.NewRedisSeedLock(rdb, cfg.SeedLockTTL),
		log,
	)

	res, err := seedService.Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	count, err := studentRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count students")
	}
	fmt.Printf("%s (students in store: %d)\n", res.Message, count)
}
