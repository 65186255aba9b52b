package service

import (
	"testing"

	"github.com/riyaziyyat/exam-backend/internal/config"
	"github.com/riyaziyyat/exam-backend/internal/repository"
	"github.com/riyaziyyat/exam-backend/internal/store"
	"github.com/rs/zerolog"
)

type testEnv struct {
	cfg         *config.Config
	st          *store.MemoryStore
	students    *StudentService
	groups      *GroupService
	exams       *ExamService
	submissions *SubmissionService
	auth        *AuthService
	reports     *ReportService
	seed        *SeedService
}

func testConfig() *config.Config {
	return &config.Config{
		PasswordHashing: config.HashingPlain,
		BcryptCost:      4,
		TeacherLogin:    "Anar",
		TeacherPassword: "Anar2025",
		TeacherName:     "Dr. Anar Hüseynov",
		TeacherUsername: "anar.huseynov",
	}
}

func newTestEnv(t *testing.T, cfg *config.Config, lock SeedLock) *testEnv {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}

	st := store.NewMemoryStore()
	studentRepo := repository.NewStudentRepository(st)
	groupRepo := repository.NewGroupRepository(st)
	examRepo := repository.NewExamRepository(st)
	submissionRepo := repository.NewSubmissionRepository(st)
	passwords := NewPasswordMatcher(cfg)
	log := zerolog.Nop()

	return &testEnv{
		cfg:         cfg,
		st:          st,
		students:    NewStudentService(studentRepo, passwords),
		groups:      NewGroupService(groupRepo, studentRepo),
		exams:       NewExamService(examRepo, submissionRepo, log),
		submissions: NewSubmissionService(submissionRepo),
		auth:        NewAuthService(cfg, studentRepo, passwords),
		reports:     NewReportService(submissionRepo, studentRepo, examRepo),
		seed:        NewSeedService(studentRepo, groupRepo, examRepo, submissionRepo, passwords, lock, log),
	}
}
