package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/repository"
)

// SubmissionService handles submission business logic.
type SubmissionService struct {
	submissionRepo *repository.SubmissionRepository
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(submissionRepo *repository.SubmissionRepository) *SubmissionService {
	return &SubmissionService{submissionRepo: submissionRepo}
}

// List retrieves all submissions.
func (s *SubmissionService) List(ctx context.Context) ([]model.Submission, error) {
	return s.submissionRepo.List(ctx)
}

// ListByExam retrieves the submissions made for one exam.
func (s *SubmissionService) ListByExam(ctx context.Context, examID string) ([]model.Submission, error) {
	return s.submissionRepo.ListByExam(ctx, examID)
}

// GetByID retrieves a submission by ID.
func (s *SubmissionService) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	sub, err := s.submissionRepo.GetByID(ctx, id)
	return sub, translate(err)
}

// Create stores a submission as sent. The referenced exam and student are not
// required to exist.
func (s *SubmissionService) Create(ctx context.Context, sub *model.Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.Answers == nil {
		sub.Answers = map[string]string{}
	}
	return translate(s.submissionRepo.Create(ctx, sub))
}

// Delete removes a submission.
func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	return translate(s.submissionRepo.Delete(ctx, id))
}
