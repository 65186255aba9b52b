package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/riyaziyyat/exam-backend/internal/logger"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/repository"
	"github.com/rs/zerolog"
)

// ExamService handles exam business logic.
type ExamService struct {
	examRepo       *repository.ExamRepository
	submissionRepo *repository.SubmissionRepository
	log            zerolog.Logger
}

// NewExamService creates a new ExamService.
func NewExamService(
	examRepo *repository.ExamRepository,
	submissionRepo *repository.SubmissionRepository,
	log zerolog.Logger,
) *ExamService {
	return &ExamService{
		examRepo:       examRepo,
		submissionRepo: submissionRepo,
		log:            logger.Component(log, "exam_service"),
	}
}

// List retrieves all exams.
func (s *ExamService) List(ctx context.Context) ([]model.Exam, error) {
	return s.examRepo.List(ctx)
}

// GetByID retrieves an exam by ID.
func (s *ExamService) GetByID(ctx context.Context, id string) (*model.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	return exam, translate(err)
}

// Create stores a new exam, generating an ID when none was given.
func (s *ExamService) Create(ctx context.Context, exam *model.Exam) error {
	if exam.ID == "" {
		exam.ID = uuid.NewString()
	}
	return translate(s.examRepo.Create(ctx, exam))
}

// Update replaces the exam with the given ID, status included.
func (s *ExamService) Update(ctx context.Context, id string, exam *model.Exam) error {
	exam.ID = id
	return translate(s.examRepo.Update(ctx, exam))
}

// Delete removes an exam and then every submission made for it. The two steps
// are not atomic: if the second fails the exam is already gone and the error
// is returned so the caller sees the partial failure.
func (s *ExamService) Delete(ctx context.Context, id string) error {
	if err := s.examRepo.Delete(ctx, id); err != nil {
		return translate(err)
	}

	removed, err := s.submissionRepo.DeleteByExam(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("exam_id", id).Msg("Exam deleted but submissions were not")
		return fmt.Errorf("delete submissions of exam %s: %w", id, err)
	}

	s.log.Info().
		Str("exam_id", id).
		Int64("submissions_removed", removed).
		Msg("Exam deleted")
	return nil
}
