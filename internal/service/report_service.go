package service

import (
	"context"
	"errors"

	"github.com/riyaziyyat/exam-backend/internal/model"
	"github.com/riyaziyyat/exam-backend/internal/repository"
	"github.com/riyaziyyat/exam-backend/internal/store"
)

// ReportService builds the cheating report from flagged submissions.
type ReportService struct {
	submissionRepo *repository.SubmissionRepository
	studentRepo    *repository.StudentRepository
	examRepo       *repository.ExamRepository
}

// NewReportService creates a new ReportService.
func NewReportService(
	submissionRepo *repository.SubmissionRepository,
	studentRepo *repository.StudentRepository,
	examRepo *repository.ExamRepository,
) *ReportService {
	return &ReportService{
		submissionRepo: submissionRepo,
		studentRepo:    studentRepo,
		examRepo:       examRepo,
	}
}

// ListCheating returns one row per flagged submission whose student and exam
// both still exist. Rows with a dangling reference are left out.
func (s *ReportService) ListCheating(ctx context.Context) ([]model.CheatingReport, error) {
	flagged, err := s.submissionRepo.ListFlagged(ctx)
	if err != nil {
		return nil, err
	}

	students := make(map[string]*model.Student)
	exams := make(map[string]*model.Exam)
	reports := make([]model.CheatingReport, 0, len(flagged))

	for _, sub := range flagged {
		student, ok := students[sub.StudentID]
		if !ok {
			student, err = s.studentRepo.GetByID(ctx, sub.StudentID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return nil, err
			}
			students[sub.StudentID] = student
		}

		exam, ok := exams[sub.ExamID]
		if !ok {
			exam, err = s.examRepo.GetByID(ctx, sub.ExamID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return nil, err
			}
			exams[sub.ExamID] = exam
		}

		if student == nil || exam == nil {
			continue
		}

		reports = append(reports, model.CheatingReport{
			ID:          sub.ID,
			StudentName: student.FullName(),
			Group:       student.Group,
			ExamTitle:   exam.Title,
			SubmittedAt: sub.SubmittedAt,
		})
	}

	return reports, nil
}

// ClearFlag marks a submission as not cheating. Clearing an already clear
// flag succeeds; an unknown submission yields ErrNotFound.
func (s *ReportService) ClearFlag(ctx context.Context, submissionID string) error {
	return translate(s.submissionRepo.SetCheatingDetected(ctx, submissionID, false))
}
